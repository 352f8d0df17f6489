package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries everything a request-scoped identity needs. Staff and
// owner tokens fill AccountID + OwnerID; customer tokens fill
// CustomerID + OwnerID + TableID. Nothing identity-related is ever read
// from ambient state.
type Claims struct {
	AccountID  uint   `json:"accountId,omitempty"`
	CustomerID uint   `json:"customerId,omitempty"`
	OwnerID    uint   `json:"ownerId"`
	TableID    uint   `json:"tableId,omitempty"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateStaffToken(accountID, ownerID uint, role, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		AccountID: accountID,
		OwnerID:   ownerID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateCustomerToken(customerID, ownerID, tableID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		CustomerID: customerID,
		OwnerID:    ownerID,
		TableID:    tableID,
		Role:       "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
