package handlers

import (
	"net/http"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/models"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/services"
	"github.com/EsmaelAwad/fastapi-social-media-app/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db           *gorm.DB
	tokenService *services.TokenService
}

func NewAuthHandler(db *gorm.DB, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		db:           db,
		tokenService: tokenService,
	}
}

// Login exchanges email + password for a bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).Where("email = ?", req.Email).First(&user).Error
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"Message": "Authentication Failed, Credentials Do Not Match"})
		return
	}

	accessToken, err := h.tokenService.Issue(map[string]any{"user_email": user.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}
