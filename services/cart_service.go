package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"backend/repository"
)

// CartLine is one dish selection held by the client until checkout.
type CartLine struct {
	DishID    uint   `json:"dishId"`
	DishName  string `json:"dishName"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
}

// Cart is the client-held payload. It has no server-side identity;
// rows only exist after Checkout.
type Cart struct {
	OwnerID uint       `json:"ownerId"`
	TableID uint       `json:"tableId"`
	Items   []CartLine `json:"items"`
}

var (
	ErrMalformedCart = errors.New("cart payload is malformed")
	ErrEmptyCart     = errors.New("cart is empty")
)

type CartService struct {
	DishRepo *repository.DishRepository
}

func NewCartService(dishRepo *repository.DishRepository) *CartService {
	return &CartService{DishRepo: dishRepo}
}

// ParseCart decodes a serialized cart. Unknown fields or wrong shapes
// fail outright; a payload we cannot fully understand is never coerced
// into an order.
func (s *CartService) ParseCart(raw []byte) (*Cart, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var cart Cart
	if err := dec.Decode(&cart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCart, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedCart)
	}
	return &cart, nil
}

// Validate checks structure first and storage facts second. Read-only.
func (s *CartService) Validate(cart *Cart) error {
	if cart.OwnerID == 0 || cart.TableID == 0 {
		return errors.New("cart has no restaurant or table")
	}
	if len(cart.Items) == 0 {
		return ErrEmptyCart
	}

	seen := make(map[uint]bool, len(cart.Items))
	dishIDs := make([]uint, 0, len(cart.Items))
	for _, line := range cart.Items {
		if line.Qty <= 0 {
			return fmt.Errorf("quantity must be positive for dish %d", line.DishID)
		}
		if line.UnitPrice < 0 {
			return fmt.Errorf("price must not be negative for dish %d", line.DishID)
		}
		if seen[line.DishID] {
			return fmt.Errorf("duplicate dish %d in cart", line.DishID)
		}
		seen[line.DishID] = true
		dishIDs = append(dishIDs, line.DishID)
	}

	ok, err := s.DishRepo.ValidateDishesBelongToOwner(dishIDs, cart.OwnerID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("dish not available in this restaurant")
	}
	return nil
}
