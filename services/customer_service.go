package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"
)

type CustomerService struct {
	Repo      *repository.CustomerRepository
	TableRepo *repository.TableRepository
}

func NewCustomerService(repo *repository.CustomerRepository, tableRepo *repository.TableRepository) *CustomerService {
	return &CustomerService{Repo: repo, TableRepo: tableRepo}
}

// List is the owner-side view of everyone who has ordered here.
func (s *CustomerService) List(ownerID uint) ([]entity.Customer, error) {
	return s.Repo.ListByOwner(ownerID)
}

type CustomerLoginIn struct {
	OwnerID uint   `json:"ownerId" binding:"required"`
	TableID uint   `json:"tableId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
}

// LoginOrCreate resolves a returning customer by phone within the
// restaurant, or creates one on first visit. The table must belong to
// the same restaurant, otherwise the QR was tampered with.
func (s *CustomerService) LoginOrCreate(in *CustomerLoginIn) (*entity.Customer, error) {
	phone := strings.TrimSpace(in.Phone)
	name := strings.TrimSpace(in.Name)
	if phone == "" || name == "" {
		return nil, errors.New("name and phone are required")
	}

	if _, err := s.TableRepo.GetTableForOwner(in.OwnerID, in.TableID); err != nil {
		return nil, errors.New("table not found in this restaurant")
	}

	customer, err := s.Repo.FindByPhone(in.OwnerID, phone)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		if customer.Name != name {
			customer.Name = name
			if err := s.Repo.Save(customer); err != nil {
				return nil, err
			}
		}
		return customer, nil
	}

	customer = &entity.Customer{
		OwnerID:  in.OwnerID,
		Name:     name,
		Phone:    phone,
		IsActive: true,
	}
	if err := s.Repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
