package entity

import (
	"gorm.io/gorm"
)

// Seeded status names. The legal transitions between them live in
// services/order_transitions.go.
const (
	StatusPlaced    = "Placed"
	StatusConfirmed = "Confirmed"
	StatusPreparing = "Preparing"
	StatusReady     = "Ready"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

type OrderStatus struct {
	gorm.Model
	StatusName string `gorm:"uniqueIndex" json:"statusName"`

	Orders []Order `json:"-"`
}
