package controllers

import (
	"log"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct{ Svc *services.CustomerService }

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{Svc: svc}
}

// GET /owner/customers
func (h *CustomerController) List(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	customers, err := h.Svc.List(ownerID)
	if err != nil {
		log.Printf("list customers: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": customers})
}
