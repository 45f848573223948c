package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"journal-scribe/editorial-portal/editorial-portal-backend/internal/auth"
	"journal-scribe/editorial-portal/editorial-portal-backend/internal/config"
	"journal-scribe/editorial-portal/editorial-portal-backend/internal/manuscripts"
	"journal-scribe/editorial-portal/editorial-portal-backend/internal/people"
	"journal-scribe/editorial-portal/editorial-portal-backend/internal/text"
	"journal-scribe/editorial-portal/editorial-portal-backend/pkg/mongodb"
	"journal-scribe/editorial-portal/editorial-portal-backend/pkg/roles"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// .env is optional, env vars win either way
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	// Load configuration
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Connect to Mongo
	logger.Info("Connecting to database", zap.String("db", cfg.Database.DBName))
	client, db, err := mongodb.Connect(context.Background(), cfg.Database.URI, cfg.Database.DBName, cfg.Database.ConnectTimeout)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	// People module
	peopleRepo := people.NewRepository(db)
	peopleService := people.NewService(peopleRepo, logger)
	peopleHandler := people.NewHandler(peopleService, logger)

	// Manuscript workflow module
	manuscriptRepo := manuscripts.NewRepository(db)
	manuscriptService := manuscripts.NewService(manuscriptRepo, peopleService, logger)
	manuscriptHandler := manuscripts.NewHandler(manuscriptService, logger)

	// Journal text module
	textRepo := text.NewRepository(db)
	textService := text.NewService(textRepo, peopleService, logger)
	textHandler := text.NewHandler(textService, logger)

	// Accounts
	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo, cfg.Security.JWTSecret, cfg.Security.TokenTTL, logger)
	authHandler := auth.NewHandler(authService, logger)

	gin.SetMode(gin.DebugMode)
	router := gin.Default()

	// CORS Middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Register Routes
	api := router.Group("/api/v1")
	{
		peopleHandler.RegisterRoutes(api)
		manuscriptHandler.RegisterRoutes(api)
		textHandler.RegisterRoutes(api)

		api.GET("/roles", func(c *gin.Context) {
			c.JSON(200, roles.GetRoles())
		})
		api.GET("/roles/masthead", func(c *gin.Context) {
			c.JSON(200, roles.GetMastheadRoles())
		})
		api.GET("/title", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"Title":     cfg.Journal.Title,
				"Editor":    cfg.Journal.Editor,
				"Publisher": cfg.Journal.Publisher,
				"Date":      time.Now().Format("2006-01-02"),
			})
		})
	}
	auth.RegisterRoutes(router, authHandler)

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// Start Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen: %s\n", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.Int("port", cfg.Server.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", zap.Error(err))
	}

	logger.Info("Server exiting")
}
