package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `json:"name"`

	OwnerID uint  `json:"ownerId"`
	Owner   Owner `json:"-"`

	Dishes []Dish `json:"-"`
}
