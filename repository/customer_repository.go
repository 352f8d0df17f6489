package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct{ DB *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{DB: db} }

// FindByPhone resolves a customer within one restaurant; phone numbers
// are only unique per owner.
func (r *CustomerRepository) FindByPhone(ownerID uint, phone string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.DB.Where("owner_id = ? AND phone = ? AND is_active = ?", ownerID, phone, true).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(c *entity.Customer) error { return r.DB.Create(c).Error }
func (r *CustomerRepository) Save(c *entity.Customer) error   { return r.DB.Save(c).Error }

func (r *CustomerRepository) ListByOwner(ownerID uint) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.DB.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("name").
		Find(&customers).Error
	return customers, err
}
