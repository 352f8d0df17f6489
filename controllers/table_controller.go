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
)

type TableController struct {
	Svc *services.TableService
	Hub *ws.StaffHub
}

func NewTableController(svc *services.TableService, hub *ws.StaffHub) *TableController {
	return &TableController{Svc: svc, Hub: hub}
}

// GET /staff/tables
func (h *TableController) List(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	tables, err := h.Svc.List(ownerID)
	if err != nil {
		log.Printf("list tables: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

// POST /owner/tables
func (h *TableController) Create(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)

	var req struct {
		TableNumber int `json:"tableNumber" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table, err := h.Svc.Create(ownerID, req.TableNumber)
	if err != nil {
		log.Printf("create table: %v", err)
		resp.ServerError(c)
		return
	}
	resp.Created(c, table)
}

// DELETE /owner/tables/:id
func (h *TableController) Delete(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	tableID, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Delete(ownerID, uint(tableID)); err != nil {
		log.Printf("delete table: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"id": tableID})
}

// PATCH /staff/tables/:id/status
func (h *TableController) UpdateStatus(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	tableID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	tables, err := h.Svc.UpdateStatus(ownerID, uint(tableID), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	h.Hub.BroadcastTableStatus(ownerID, tables)
	resp.OK(c, gin.H{"id": tableID, "status": req.Status})
}
