package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles owner/staff login and account provisioning.
type AuthService struct {
	DB        *gorm.DB
	Repo      *repository.AccountRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.AccountRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterOwnerIn struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	RestaurantName string `json:"restaurantName" binding:"required"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
}

type LoginOut struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	OwnerID uint   `json:"ownerId"`
}

func (s *AuthService) RegisterOwner(in *RegisterOwnerIn) (*entity.Owner, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.Repo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var owner entity.Owner
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		account := entity.Account{Email: email, Password: string(hashed), Role: "owner"}
		if err := s.Repo.Create(tx, &account); err != nil {
			return err
		}
		owner = entity.Owner{
			RestaurantName: in.RestaurantName,
			Address:        in.Address,
			Phone:          in.Phone,
			AccountID:      account.ID,
		}
		return s.Repo.CreateOwner(tx, &owner)
	})
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (s *AuthService) Login(email, password string) (*LoginOut, error) {
	account, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	ownerID, err := s.Repo.OwnerIDForAccount(account.ID, account.Role)
	if err != nil {
		return nil, errors.New("account has no restaurant")
	}

	token, err := utils.GenerateStaffToken(account.ID, ownerID, account.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginOut{Token: token, Role: account.Role, OwnerID: ownerID}, nil
}

type CreateStaffIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

func (s *AuthService) CreateStaff(ownerID uint, in *CreateStaffIn) (*entity.Staff, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.Repo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var staff entity.Staff
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		account := entity.Account{Email: email, Password: string(hashed), Role: "staff"}
		if err := s.Repo.Create(tx, &account); err != nil {
			return err
		}
		staff = entity.Staff{
			Name:      in.Name,
			Phone:     in.Phone,
			AccountID: account.ID,
			OwnerID:   ownerID,
			IsActive:  true,
		}
		return s.Repo.CreateStaff(tx, &staff)
	})
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (s *AuthService) OwnerProfile(ownerID uint) (*entity.Owner, error) {
	return s.Repo.GetOwner(ownerID)
}

func (s *AuthService) ListStaff(ownerID uint) ([]entity.Staff, error) {
	return s.Repo.ListStaffByOwner(ownerID)
}

func (s *AuthService) SetStaffActive(ownerID, staffID uint, active bool) error {
	affected, err := s.Repo.SetStaffActive(ownerID, staffID, active)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrForbidden
	}
	return nil
}
