package services

import (
	"errors"
	"fmt"
	"time"

	"backend/entity"
	"backend/pkg/metrics"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrLoginRequired = errors.New("please log in to place an order")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("invalid state or already updated")
)

type StatusIDs struct {
	Placed    uint
	Confirmed uint
	Preparing uint
	Ready     uint
	Delivered uint
	Cancelled uint
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	DishRepo *repository.DishRepository
	Cart     *CartService

	Status StatusIDs
	names  map[uint]string // status id -> seeded name
}

// NewOrderService resolves the seeded status ids up front; an unseeded
// database is a deployment error, not something to limp along with.
func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	dishRepo *repository.DishRepository,
	cart *CartService,
) (*OrderService, error) {
	s := &OrderService{DB: db, Repo: repo, DishRepo: dishRepo, Cart: cart, names: map[uint]string{}}

	resolve := func(name string, dst *uint) error {
		id, err := repo.GetStatusIDByName(name)
		if err != nil {
			return fmt.Errorf("order status %q not seeded: %w", name, err)
		}
		*dst = id
		s.names[id] = name
		return nil
	}
	for _, r := range []struct {
		name string
		dst  *uint
	}{
		{entity.StatusPlaced, &s.Status.Placed},
		{entity.StatusConfirmed, &s.Status.Confirmed},
		{entity.StatusPreparing, &s.Status.Preparing},
		{entity.StatusReady, &s.Status.Ready},
		{entity.StatusDelivered, &s.Status.Delivered},
		{entity.StatusCancelled, &s.Status.Cancelled},
	} {
		if err := resolve(r.name, r.dst); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ----- Checkout (Order Writer) -----

type CheckoutResult struct {
	OrderID uint   `json:"orderId"`
	Total   int64  `json:"total"`
	Message string `json:"message"`
}

// Checkout turns a validated cart into one Order plus its details in a
// single transaction: either all rows commit or none do. The identity
// check happens before any write.
func (s *OrderService) Checkout(customerID uint, cart *Cart) (*CheckoutResult, error) {
	if customerID == 0 {
		return nil, ErrLoginRequired
	}
	if err := s.Cart.Validate(cart); err != nil {
		return nil, err
	}

	var out CheckoutResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			OwnerID:       cart.OwnerID,
			TableID:       cart.TableID,
			CustomerID:    customerID,
			OrderStatusID: s.Status.Placed,
			IsActive:      true,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		var total int64
		for _, line := range cart.Items {
			od := entity.OrderDetail{
				OrderID:  order.ID,
				DishID:   line.DishID,
				Quantity: line.Qty,
				Price:    line.UnitPrice, // snapshot, not a live dish reference
				IsActive: true,
			}
			if err := s.Repo.CreateOrderDetail(tx, &od); err != nil {
				return err
			}
			total += int64(line.Qty) * line.UnitPrice
		}

		out = CheckoutResult{
			OrderID: order.ID,
			Total:   total,
			Message: "Order placed. Thank you!",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	return &out, nil
}

// ----- Aggregate order view (Request Aggregator) -----

type OrderDetailView struct {
	ID       uint   `json:"id"`
	DishID   uint   `json:"dishId"`
	DishName string `json:"dishName"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type OrderView struct {
	ID            uint              `json:"id"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	TableNumber   int               `json:"tableNumber"`
	Status        string            `json:"status"`
	Time          time.Time         `json:"time"`
	IsActive      bool              `json:"isActive"`
	Details       []OrderDetailView `json:"details"`
	Total         int64             `json:"total"`
}

// ActiveOrders is the staff-facing read: every active order of the
// restaurant, newest first, with its active details and computed total.
// Voided lines are omitted entirely. Read-only and safe to call after
// every mutation to build the broadcast payload.
func (s *OrderService) ActiveOrders(ownerID uint) ([]OrderView, error) {
	orders, err := s.Repo.ListActiveOrdersForOwner(ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view := OrderView{
			ID:            o.ID,
			CustomerName:  o.Customer.Name,
			CustomerPhone: o.Customer.Phone,
			TableNumber:   o.Table.TableNumber,
			Status:        o.OrderStatus.StatusName,
			Time:          o.CreatedAt,
			IsActive:      o.IsActive,
		}
		for _, od := range o.OrderDetails {
			if !od.IsActive {
				continue
			}
			view.Details = append(view.Details, OrderDetailView{
				ID:       od.ID,
				DishID:   od.DishID,
				DishName: od.Dish.Name,
				Quantity: od.Quantity,
				Price:    od.Price,
			})
			view.Total += int64(od.Quantity) * od.Price
		}
		views = append(views, view)
	}
	return views, nil
}

// ----- Customer order history -----

type HistoryEntry struct {
	OrderID uint       `json:"orderId"`
	Time    time.Time  `json:"time"`
	Status  string     `json:"status"`
	Items   []CartLine `json:"items"`
	Total   int64      `json:"total"`
}

func (s *OrderService) HistoryForCustomer(ownerID, customerID uint) ([]HistoryEntry, error) {
	if customerID == 0 {
		return nil, ErrLoginRequired
	}
	orders, err := s.Repo.ListOrdersForCustomer(ownerID, customerID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(orders))
	for _, o := range orders {
		e := HistoryEntry{
			OrderID: o.ID,
			Time:    o.CreatedAt,
			Status:  s.names[o.OrderStatusID],
		}
		for _, od := range o.OrderDetails {
			if !od.IsActive {
				continue
			}
			e.Items = append(e.Items, CartLine{
				DishID:    od.DishID,
				DishName:  od.Dish.Name,
				Qty:       od.Quantity,
				UnitPrice: od.Price,
			})
			e.Total += int64(od.Quantity) * od.Price
		}
		entries = append(entries, e)
	}
	return entries, nil
}
