// @title Shipdesk API
// @version 1.0
// @description Backend API for the shipyard email/calendar dashboard
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api

package main

import (
	"context"
	"log"

	"shipdesk-be/config"
	"shipdesk-be/internal/database"
	"shipdesk-be/internal/engine"
	"shipdesk-be/internal/handlers"
	"shipdesk-be/internal/middleware"
	"shipdesk-be/internal/repository"
	"shipdesk-be/internal/services"

	"github.com/gin-gonic/gin"

	_ "shipdesk-be/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Disconnect()

	// Initialize repositories
	emailRepo := repository.NewEmailRepository(mongodb.Database)
	eventRepo := repository.NewEventRepository(mongodb.Database)
	profileRepo := repository.NewProfileRepository(mongodb.Database)

	// The category table is fixed configuration; build it once and share
	// the classifier.
	classifier := engine.NewClassifier(engine.DefaultCategories())

	// Initialize handlers
	emailHandler := handlers.NewEmailHandler(emailRepo, profileRepo)
	eventHandler := handlers.NewEventHandler(eventRepo, profileRepo, classifier)
	searchHandler := handlers.NewSearchHandler(emailRepo, eventRepo)
	settingsHandler := handlers.NewSettingsHandler(profileRepo)

	// Background mail sync (optional: needs Google credentials)
	if cfg.GoogleRefreshToken != "" {
		syncService := services.NewMailSyncService(cfg, emailRepo)
		if _, err := services.StartSyncWorker(context.Background(), cfg.SyncSchedule, syncService); err != nil {
			log.Fatal("Failed to start sync worker:", err)
		}
	} else {
		log.Println("No Google refresh token configured, mail sync disabled")
	}

	// Initialize Gin
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":   "ok",
				"message":  "Shipdesk API is running",
				"database": "MongoDB connected",
			})
		})

		// Email routes
		api.GET("/emails", emailHandler.GetEmails)
		api.GET("/emails/:emailId", emailHandler.GetEmailDetail)
		api.GET("/stats/classification", emailHandler.GetClassificationStats)

		// Event / calendar routes
		api.GET("/events", eventHandler.GetEvents)
		api.POST("/events", eventHandler.CreateEvent)
		api.DELETE("/events", eventHandler.ClearEvents)
		api.GET("/events/ships", eventHandler.GetShips)
		api.GET("/events/categories", eventHandler.GetCategories)
		api.GET("/events/calendar", eventHandler.GetCalendar)
		api.GET("/events/export.ics", eventHandler.ExportICS)

		// Search routes
		api.POST("/search", searchHandler.Search)
		api.GET("/search/suggestions", searchHandler.GetSuggestions)

		// Settings routes
		api.GET("/settings/profile", settingsHandler.GetProfile)
		api.PUT("/settings/profile", settingsHandler.SaveProfile)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Connected to MongoDB: %s", cfg.MongoDBDatabase)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
