package utils

import "github.com/gin-gonic/gin"

func currentUint(c *gin.Context, key string) uint {
	v, _ := c.Get(key)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentAccountID(c *gin.Context) uint  { return currentUint(c, "accountId") }
func CurrentOwnerID(c *gin.Context) uint    { return currentUint(c, "ownerId") }
func CurrentCustomerID(c *gin.Context) uint { return currentUint(c, "customerId") }
func CurrentTableID(c *gin.Context) uint    { return currentUint(c, "tableId") }

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
