package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Account{}, &entity.Owner{}, &entity.Staff{}, &entity.Customer{},
		&entity.TableStatus{}, &entity.Table{},
		&entity.Category{}, &entity.Dish{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderDetail{},
	))

	for _, name := range []string{"Available", "Occupied", "Reserved"} {
		db.Create(&entity.TableStatus{StatusName: name})
	}
	for _, name := range []string{
		entity.StatusPlaced, entity.StatusConfirmed, entity.StatusPreparing,
		entity.StatusReady, entity.StatusDelivered, entity.StatusCancelled,
	} {
		db.Create(&entity.OrderStatus{StatusName: name})
	}

	return db
}

type testFixture struct {
	DB       *gorm.DB
	OrderSvc *OrderService
	CartSvc  *CartService

	Owner    entity.Owner
	Table    entity.Table
	Customer entity.Customer
	Pho      entity.Dish
	Tea      entity.Dish
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	db := newTestDB(t)

	f := &testFixture{DB: db}

	account := entity.Account{Email: "owner@example.com", Password: "x", Role: "owner"}
	require.NoError(t, db.Create(&account).Error)
	f.Owner = entity.Owner{RestaurantName: "Pho Corner", AccountID: account.ID}
	require.NoError(t, db.Create(&f.Owner).Error)

	var available entity.TableStatus
	require.NoError(t, db.Where("status_name = ?", "Available").First(&available).Error)
	f.Table = entity.Table{TableNumber: 4, OwnerID: f.Owner.ID, TableStatusID: available.ID}
	require.NoError(t, db.Create(&f.Table).Error)

	f.Customer = entity.Customer{Name: "Linh", Phone: "0900000001", OwnerID: f.Owner.ID, IsActive: true}
	require.NoError(t, db.Create(&f.Customer).Error)

	cat := entity.Category{Name: "Mains", OwnerID: f.Owner.ID}
	require.NoError(t, db.Create(&cat).Error)
	f.Pho = entity.Dish{Name: "Pho", Price: 50000, CategoryID: cat.ID, OwnerID: f.Owner.ID, IsAvailable: true}
	f.Tea = entity.Dish{Name: "Tea", Price: 10000, CategoryID: cat.ID, OwnerID: f.Owner.ID, IsAvailable: true}
	require.NoError(t, db.Create(&f.Pho).Error)
	require.NoError(t, db.Create(&f.Tea).Error)

	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	f.CartSvc = NewCartService(dishRepo)

	var err error
	f.OrderSvc, err = NewOrderService(db, orderRepo, dishRepo, f.CartSvc)
	require.NoError(t, err)

	return f
}

// createOwner registers a second tenant and returns its owner id.
func createOwner(t *testing.T, f *testFixture, email string) uint {
	t.Helper()

	account := entity.Account{Email: email, Password: "x", Role: "owner"}
	require.NoError(t, f.DB.Create(&account).Error)
	owner := entity.Owner{RestaurantName: "Elsewhere", AccountID: account.ID}
	require.NoError(t, f.DB.Create(&owner).Error)
	return owner.ID
}

func (f *testFixture) cart() *Cart {
	return &Cart{
		OwnerID: f.Owner.ID,
		TableID: f.Table.ID,
		Items: []CartLine{
			{DishID: f.Pho.ID, DishName: "Pho", Qty: 2, UnitPrice: 50000},
			{DishID: f.Tea.ID, DishName: "Tea", Qty: 1, UnitPrice: 10000},
		},
	}
}
