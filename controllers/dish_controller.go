package controllers

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DishController struct {
	Svc       *services.MenuService
	UploadDir string
}

func NewDishController(svc *services.MenuService, uploadDir string) *DishController {
	return &DishController{Svc: svc, UploadDir: uploadDir}
}

// GET /owner/dishes
func (h *DishController) List(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	dishes, err := h.Svc.ListDishes(ownerID)
	if err != nil {
		log.Printf("list dishes: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// POST /owner/dishes
func (h *DishController) Create(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)

	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := h.Svc.CreateDish(ownerID, &req)
	if err != nil {
		log.Printf("create dish: %v", err)
		resp.ServerError(c)
		return
	}
	resp.Created(c, dish)
}

// PATCH /owner/dishes/:id
func (h *DishController) Update(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	dishID, _ := strconv.Atoi(c.Param("id"))

	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := h.Svc.UpdateDish(ownerID, uint(dishID), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		log.Printf("update dish: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, dish)
}

// POST /owner/dishes/:id/picture  (multipart form, field "picture")
func (h *DishController) UploadPicture(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	dishID, _ := strconv.Atoi(c.Param("id"))

	file, err := c.FormFile("picture")
	if err != nil {
		resp.BadRequest(c, "picture file is required")
		return
	}

	filename := fmt.Sprintf("dish_%d_%d%s", dishID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	path := filepath.Join(h.UploadDir, "dishes", filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		log.Printf("save dish picture: %v", err)
		resp.ServerError(c)
		return
	}

	if err := h.Svc.SetDishPicture(ownerID, uint(dishID), path); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		log.Printf("set dish picture: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"id": dishID, "picture": path})
}

// GET /owner/categories
func (h *DishController) ListCategories(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	cats, err := h.Svc.ListCategories(ownerID)
	if err != nil {
		log.Printf("list categories: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /owner/categories
func (h *DishController) CreateCategory(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := h.Svc.CreateCategory(ownerID, req.Name)
	if err != nil {
		log.Printf("create category: %v", err)
		resp.ServerError(c)
		return
	}
	resp.Created(c, cat)
}
