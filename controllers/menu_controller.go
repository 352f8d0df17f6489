package controllers

import (
	"log"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menu/:ownerId
// Public: what the table QR code lands on.
func (h *MenuController) PublicMenu(c *gin.Context) {
	ownerID, err := strconv.Atoi(c.Param("ownerId"))
	if err != nil || ownerID <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	sections, err := h.Svc.PublicMenu(uint(ownerID))
	if err != nil {
		log.Printf("public menu: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"sections": sections})
}
