package controllers

import (
	"errors"
	"log"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StaffOrderController is the staff/owner side of the order flow: the
// aggregate board, status transitions and line-item voiding. Every
// successful mutation rebroadcasts the board.
type StaffOrderController struct {
	Svc *services.OrderService
	Hub *ws.StaffHub
}

func NewStaffOrderController(svc *services.OrderService, hub *ws.StaffHub) *StaffOrderController {
	return &StaffOrderController{Svc: svc, Hub: hub}
}

// GET /staff/orders
func (h *StaffOrderController) List(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)

	orders, err := h.Svc.ActiveOrders(ownerID)
	if err != nil {
		log.Printf("list staff orders: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PATCH /staff/orders/:id/status
func (h *StaffOrderController) UpdateStatus(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	orderID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Transition(ownerID, uint(orderID), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrConflict):
			resp.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			log.Printf("order transition: %v", err)
			resp.ServerError(c)
		}
		return
	}

	h.rebroadcast(ownerID)
	resp.OK(c, gin.H{"id": orderID, "status": req.Status})
}

// PATCH /staff/order-details/:id
func (h *StaffOrderController) UpdateDetailStatus(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	detailID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateDetailStatus(ownerID, uint(detailID), *req.IsActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order detail not found")
			return
		}
		log.Printf("update detail status: %v", err)
		resp.ServerError(c)
		return
	}

	h.rebroadcast(ownerID)
	resp.OK(c, gin.H{"id": detailID, "isActive": *req.IsActive})
}

func (h *StaffOrderController) rebroadcast(ownerID uint) {
	orders, err := h.Svc.ActiveOrders(ownerID)
	if err != nil {
		log.Printf("rebroadcast: %v", err)
		return
	}
	h.Hub.BroadcastOrders(ownerID, orders)
}
