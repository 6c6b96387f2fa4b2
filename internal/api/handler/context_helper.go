package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dioadam27-sketch/SIMPDB/pkg/jwt"
	"github.com/dioadam27-sketch/SIMPDB/pkg/response"
)

// MustGetUserID extracts user_id from the gin context. On failure it
// writes 401 and returns ok=false; the caller should return.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return "", false
	}
	return s, true
}

// MustGetRole extracts role from the gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return "", false
	}
	return s, true
}

// MustGetClaims extracts the parsed JWT claims from the gin context.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return nil, false
	}
	return claims, true
}
