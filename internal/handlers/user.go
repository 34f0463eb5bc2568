package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/apperr"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/models"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/services"
	"github.com/EsmaelAwad/fastapi-social-media-app/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	db           *gorm.DB
	emailService *services.EmailService
}

func NewUserHandler(db *gorm.DB, emailService *services.EmailService) *UserHandler {
	return &UserHandler{db: db, emailService: emailService}
}

// CreateUser registers a new account. The password must satisfy the
// format rules before it is hashed; the email must be unused.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user payload: " + err.Error()})
		return
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"Message": verr.Msg})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"Message": err.Error()})
		return
	}

	var existing models.User
	if err := h.db.WithContext(c.Request.Context()).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"Message": "User was not created because the email passed is already used. Please try another email address."})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "User was not created due to: password hashing failure"})
		return
	}

	newUser := models.User{
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    hashedPassword,
		City:        utils.Capitalize(req.City),
		Country:     utils.Capitalize(req.Country),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&newUser).Error; err != nil {
		// Store detail stays in the log, not the response.
		log.Printf("user creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "User was not created due to an internal error."})
		return
	}

	// Best effort, off the request path.
	go h.emailService.SendWelcome(newUser.Email)

	c.JSON(http.StatusCreated, gin.H{"Message": "The user has been successfully created"})
}
