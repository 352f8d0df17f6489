package controllers

import (
	"time"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerAuthController struct {
	Svc       *services.CustomerService
	JWTSecret string
	JWTTTL    time.Duration
}

func NewCustomerAuthController(svc *services.CustomerService, secret string, ttl time.Duration) *CustomerAuthController {
	return &CustomerAuthController{Svc: svc, JWTSecret: secret, JWTTTL: ttl}
}

// POST /customer/login
// Table-visit login: name + phone against the restaurant the QR code
// pointed at. Returns the session token checkout requires.
func (h *CustomerAuthController) Login(c *gin.Context) {
	var req services.CustomerLoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customer, err := h.Svc.LoginOrCreate(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := utils.GenerateCustomerToken(customer.ID, req.OwnerID, req.TableID, h.JWTSecret, h.JWTTTL)
	if err != nil {
		resp.ServerError(c)
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"customer": gin.H{
			"id":    customer.ID,
			"name":  customer.Name,
			"phone": customer.Phone,
			"point": customer.Point,
		},
	})
}
