package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Account{}, &entity.Owner{}, &entity.Staff{}, &entity.Customer{},
		&entity.TableStatus{}, &entity.Table{},
		&entity.Category{}, &entity.Dish{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderDetail{},
	)
}
