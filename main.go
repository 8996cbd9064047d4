package main

import (
	"fmt"
	"log"
	"time"

	"blogql-be/internal/cache"
	"blogql-be/internal/config"
	"blogql-be/internal/controllers"
	"blogql-be/internal/database"
	"blogql-be/internal/graph"
	"blogql-be/internal/jwt"
	"blogql-be/internal/middleware"
	"blogql-be/internal/repository"
	"blogql-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Initialize JWT service with the process-wide signing secret
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	postService := service.NewPostService(postRepo, cacheClient)

	// Build the GraphQL schema
	schema, err := graph.NewSchema(&graph.Resolver{
		Auth:  authService,
		Posts: postService,
		Users: userRepo,
	})
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	// Initialize controllers
	graphqlController := controllers.NewGraphQLController(schema)
	qrcodeController := controllers.NewQRCodeController(postService, cfg.FrontendURL)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// GraphQL endpoint: identity is derived per request before resolver
	// dispatch; anonymous requests proceed and are rejected per-resolver
	graphqlGroup := router.Group("/graphql")
	graphqlGroup.Use(
		rateLimiter.LimitMiddleware(),
		middleware.IdentityMiddleware(jwtService, cfg.RejectInvalidToken),
	)
	{
		graphqlGroup.GET("", graphqlController.Playground)
		graphqlGroup.POST("", graphqlController.Execute)
	}

	// REST extras
	api := router.Group("/api/v1")
	api.Use(rateLimiter.LimitMiddleware())
	{
		api.GET("/posts/:id/qrcode", qrcodeController.GeneratePostQRCode)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Server starting on http://localhost%s", addr)
	router.Run(addr)
}
