package entity

import (
	"gorm.io/gorm"
)

// Owner is a restaurant tenant. Every menu, table, staff, customer and
// order row is scoped by OwnerID.
type Owner struct {
	gorm.Model
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Avatar         string `json:"avatar"`

	AccountID uint    `gorm:"uniqueIndex" json:"accountId"`
	Account   Account `json:"-"`

	Staffs    []Staff    `json:"-"`
	Tables    []Table    `json:"-"`
	Dishes    []Dish     `json:"-"`
	Customers []Customer `json:"-"`
	Orders    []Order    `json:"-"`
}
