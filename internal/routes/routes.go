package routes

import (
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/config"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/handlers"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/middleware"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	tokenService := services.NewTokenService(cfg)
	emailService := services.NewEmailService(cfg)
	ownershipGuard := services.NewOwnershipGuard(db)
	voteEngine := services.NewVoteEngine(db)

	authHandler := handlers.NewAuthHandler(db, tokenService)
	userHandler := handlers.NewUserHandler(db, emailService)
	postHandler := handlers.NewPostHandler(db, ownershipGuard, voteEngine)

	// Public routes.
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Hello World from the social media app!"})
	})
	r.POST("/login", authHandler.Login)
	r.POST("/users/create-user", userHandler.CreateUser)

	// Everything under posts requires a bearer token.
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(tokenService))
	{
		auth.POST("/posts/create", postHandler.CreatePost)
		auth.GET("/posts/get-user-posts", postHandler.GetPosts)
		auth.GET("/posts/find-post/:id", postHandler.GetPost)
		auth.PUT("/posts/update-post/:id", postHandler.UpdatePost)
		auth.DELETE("/posts/delete-post/:id", postHandler.DeletePost)
		auth.POST("/posts/like-post/:id", postHandler.LikePost)
	}

	return r
}
