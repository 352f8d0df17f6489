package entity

import (
	"gorm.io/gorm"
)

// Account is the login identity for owners and staff. Customers never
// get an account; they authenticate per table visit (see Customer).
type Account struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:staff" json:"role"` // owner | staff

	Owner *Owner `gorm:"foreignKey:AccountID" json:"-"`
	Staff *Staff `gorm:"foreignKey:AccountID" json:"-"`
}
