package entity

import (
	"gorm.io/gorm"
)

type TableStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`

	Tables []Table `json:"-"`
}
