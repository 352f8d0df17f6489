package controllers

import (
	"errors"
	"io"
	"log"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"
	"backend/ws"

	"github.com/gin-gonic/gin"
)

// CartController owns the checkout path: parse the client-held cart,
// write the order, then refresh and broadcast the staff view.
type CartController struct {
	CartSvc  *services.CartService
	OrderSvc *services.OrderService
	Hub      *ws.StaffHub
}

func NewCartController(cartSvc *services.CartService, orderSvc *services.OrderService, hub *ws.StaffHub) *CartController {
	return &CartController{CartSvc: cartSvc, OrderSvc: orderSvc, Hub: hub}
}

// POST /orders/checkout
func (h *CartController) Checkout(c *gin.Context) {
	customerID := utils.CurrentCustomerID(c)
	if customerID == 0 {
		resp.Unauthorized(c, services.ErrLoginRequired.Error())
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.BadRequest(c, "cannot read request body")
		return
	}

	cart, err := h.CartSvc.ParseCart(raw)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// The token, not the payload, decides which restaurant and table
	// this order belongs to.
	cart.OwnerID = utils.CurrentOwnerID(c)
	cart.TableID = utils.CurrentTableID(c)

	out, err := h.OrderSvc.Checkout(customerID, cart)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoginRequired):
			resp.Unauthorized(c, err.Error())
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrMalformedCart):
			resp.BadRequest(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}

	h.refreshStaffBoard(cart.OwnerID)

	resp.Created(c, out)
}

// refreshStaffBoard re-aggregates and pushes; any failure here is
// logged and swallowed because the write already succeeded.
func (h *CartController) refreshStaffBoard(ownerID uint) {
	orders, err := h.OrderSvc.ActiveOrders(ownerID)
	if err != nil {
		log.Printf("refresh staff board: %v", err)
		return
	}
	h.Hub.BroadcastOrders(ownerID, orders)
}
