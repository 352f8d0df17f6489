package entity

import (
	"gorm.io/gorm"
)

// Order is never deleted; finished or abandoned orders are
// soft-deactivated via IsActive.
type Order struct {
	gorm.Model
	IsActive bool `gorm:"default:true" json:"isActive"`

	OwnerID uint  `gorm:"index" json:"ownerId"`
	Owner   Owner `json:"-"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`

	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	OrderDetails []OrderDetail `json:"-"`
}
