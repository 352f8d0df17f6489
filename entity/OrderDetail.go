package entity

import (
	"gorm.io/gorm"
)

// OrderDetail snapshots the dish price at checkout so historical orders
// stay stable when the menu price changes later.
type OrderDetail struct {
	gorm.Model
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
	IsActive bool  `gorm:"default:true" json:"isActive"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`
}
