package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin gates admin-only routes. It accepts a bearer token issued at
// admin login and rejects everything else before any storage is touched.
// Websocket upgrades cannot set headers from a browser, so a "token" query
// parameter is accepted as a fallback.
func RequireAdmin(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing"})
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	role, _ := claims["role"].(string)
	if role != "admin" && role != "superadmin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}

	c.Set("admin_email", claims["email"])
	c.Set("admin_role", role)

	c.Next()
}

// RequireSuperAdmin layers on top of RequireAdmin for the approval workflow.
func RequireSuperAdmin(c *gin.Context) {
	role, _ := c.Get("admin_role")
	if role != "superadmin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Super admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
