package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type AccountRepository struct{ DB *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{DB: db} }

func (r *AccountRepository) FindByEmail(email string) (*entity.Account, error) {
	var a entity.Account
	if err := r.DB.Where("email = ?", strings.ToLower(email)).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Account{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error
	return count, err
}

func (r *AccountRepository) Create(tx *gorm.DB, a *entity.Account) error {
	return tx.Create(a).Error
}

// OwnerIDForAccount maps a login identity to its restaurant scope:
// owners through their own row, staff through their employer.
func (r *AccountRepository) OwnerIDForAccount(accountID uint, role string) (uint, error) {
	switch role {
	case "owner":
		var row struct{ ID uint }
		err := r.DB.Model(&entity.Owner{}).
			Select("id").Where("account_id = ?", accountID).First(&row).Error
		return row.ID, err
	default:
		var row struct{ OwnerID uint }
		err := r.DB.Model(&entity.Staff{}).
			Select("owner_id").Where("account_id = ? AND is_active = ?", accountID, true).
			First(&row).Error
		return row.OwnerID, err
	}
}

func (r *AccountRepository) CreateOwner(tx *gorm.DB, o *entity.Owner) error {
	return tx.Create(o).Error
}

func (r *AccountRepository) CreateStaff(tx *gorm.DB, s *entity.Staff) error {
	return tx.Create(s).Error
}

func (r *AccountRepository) ListStaffByOwner(ownerID uint) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := r.DB.Where("owner_id = ?", ownerID).
		Preload("Account").
		Order("name").
		Find(&staff).Error
	return staff, err
}

func (r *AccountRepository) SetStaffActive(ownerID, staffID uint, active bool) (int64, error) {
	res := r.DB.Model(&entity.Staff{}).
		Where("id = ? AND owner_id = ?", staffID, ownerID).
		Update("is_active", active)
	return res.RowsAffected, res.Error
}

func (r *AccountRepository) GetOwner(ownerID uint) (*entity.Owner, error) {
	var o entity.Owner
	if err := r.DB.First(&o, ownerID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}
