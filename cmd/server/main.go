package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"translation-admin-backend/internal/cms"
	"translation-admin-backend/internal/config"
	"translation-admin-backend/internal/handlers"
	"translation-admin-backend/internal/middleware"
	"translation-admin-backend/internal/store"
	"translation-admin-backend/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cmsClient := cms.NewClient(cfg.CMSBaseURL, cms.NewTokenAuth(cfg.CMSAPIToken))
	orderStore := store.New()
	controller := workflow.NewController(cmsClient, orderStore)

	// Warm the cache; the handlers refresh on every load anyway, so a failed
	// first fetch only delays the data, it doesn't block startup.
	if err := controller.Refresh(); err != nil {
		log.Printf("Warning: initial order fetch failed: %v", err)
	}

	ordersHandler := handlers.NewOrdersHandler(controller, orderStore)
	clientsHandler := handlers.NewClientsHandler(controller, orderStore)
	statusHandler := handlers.NewStatusHandler(controller)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	api.GET("/orders", ordersHandler.ListOrders)
	api.POST("/orders", ordersHandler.CreateOrder)
	api.POST("/orders/refresh", ordersHandler.RefreshOrders)
	api.GET("/orders/:order_id", ordersHandler.GetOrder)
	api.PUT("/orders/:order_id/fields", ordersHandler.UpdateOrderField)
	api.POST("/orders/:order_id/status", statusHandler.Transition)
	api.DELETE("/orders/:order_id", ordersHandler.DeleteOrder)

	api.GET("/clients", clientsHandler.ListClients)
	api.GET("/clients/archived", clientsHandler.ListArchivedClients)
	api.GET("/clients/profile", clientsHandler.GetClientProfile)
	api.PUT("/clients/:client_id/fields", clientsHandler.UpdateClientInfo)
	api.DELETE("/clients/:client_id", clientsHandler.DeleteClient)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
