package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/morisawa/ideapool/internal/config"
	"github.com/morisawa/ideapool/internal/database"
	"github.com/morisawa/ideapool/internal/handlers"
	"github.com/morisawa/ideapool/internal/middleware"
	"github.com/morisawa/ideapool/internal/repository"
	"github.com/morisawa/ideapool/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	userRepo := repository.NewUserRepository(database.GetDB())
	ideaRepo := repository.NewIdeaRepository(database.GetDB())
	authService := services.NewAuthService(userRepo, services.BcryptHasher{})
	ideaService := services.NewIdeaService(ideaRepo)
	tokenService := services.NewTokenService(
		[]byte(cfg.JWTSecret),
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
		services.NewBlacklist(),
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)

	// Initialize Gin router
	r := gin.Default()

	// Permissive CORS: the API is consumed from arbitrary origins.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Idea Pool API is running",
		})
	})

	// Auth routes (public)
	r.POST("/users", authHandler.Signup)
	r.POST("/access-tokens", authHandler.Login)
	r.DELETE("/access-tokens", authHandler.Logout)
	r.POST("/access-tokens/refresh", authHandler.Refresh)

	// Routes requiring an access token
	r.GET("/me", middleware.RequireAuth(tokenService), authHandler.Me)

	ideas := r.Group("/ideas")
	ideas.Use(middleware.RequireAuth(tokenService))
	{
		ideas.GET("", ideaHandler.List)
		ideas.POST("", ideaHandler.Create)
		ideas.PUT("/:id", ideaHandler.Update)
		ideas.DELETE("/:id", ideaHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
