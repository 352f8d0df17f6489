package controllers

import (
	"log"
	"time"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct{ Svc *services.DashboardService }

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /owner/dashboard
func (h *DashboardController) Summary(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)

	out, err := h.Svc.Summary(ownerID, time.Now())
	if err != nil {
		log.Printf("dashboard summary: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, out)
}
