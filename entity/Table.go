package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableNumber int    `json:"tableNumber"`
	Qrcode      string `json:"qrcode"` // path of the generated QR PNG under /uploads

	OwnerID uint  `json:"ownerId"`
	Owner   Owner `json:"-"`

	TableStatusID uint        `json:"tableStatusId"`
	TableStatus   TableStatus `json:"tableStatus"`

	Orders []Order `json:"-"`
}
