package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/apperr"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/services"

	"github.com/gin-gonic/gin"
)

// UserEmailKey is the context key under which the authenticated
// caller's email is stored.
const UserEmailKey = "userEmail"

func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokenService.Validate(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, apperr.ErrTokenExpired) {
				message = "Token has expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": message})
			c.Abort()
			return
		}

		email, _ := claims["user_email"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(UserEmailKey, email)
		c.Next()
	}
}
