package controllers

import (
	"log"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /orders/history
// A customer's own past orders at this restaurant, newest first.
func (h *OrderController) History(c *gin.Context) {
	customerID := utils.CurrentCustomerID(c)
	ownerID := utils.CurrentOwnerID(c)

	entries, err := h.Svc.HistoryForCustomer(ownerID, customerID)
	if err != nil {
		if err == services.ErrLoginRequired {
			resp.Unauthorized(c, err.Error())
			return
		}
		log.Printf("order history: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": entries})
}
