package controllers

import (
	"log"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterOwnerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	owner, err := a.Svc.RegisterOwner(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"ownerId": owner.ID, "restaurantName": owner.RestaurantName})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, out)
}

// GET /owner/profile
func (a *AuthController) Profile(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	owner, err := a.Svc.OwnerProfile(ownerID)
	if err != nil {
		log.Printf("owner profile: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, owner)
}

// ----- staff management (owner only) -----

// GET /owner/staff
func (a *AuthController) ListStaff(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	staff, err := a.Svc.ListStaff(ownerID)
	if err != nil {
		log.Printf("list staff: %v", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": staff})
}

// POST /owner/staff
func (a *AuthController) CreateStaff(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)

	var req services.CreateStaffIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	staff, err := a.Svc.CreateStaff(ownerID, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, staff)
}

// PATCH /owner/staff/:id
func (a *AuthController) SetStaffActive(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	staffID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Svc.SetStaffActive(ownerID, uint(staffID), *req.IsActive); err != nil {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, gin.H{"id": staffID, "isActive": *req.IsActive})
}
