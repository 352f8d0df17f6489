package entity

import (
	"gorm.io/gorm"
)

type Staff struct {
	gorm.Model
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	AccountID uint    `gorm:"uniqueIndex" json:"accountId"`
	Account   Account `json:"-"`

	OwnerID uint  `json:"ownerId"`
	Owner   Owner `json:"-"`
}
