package main

import (
	"log"
	"os"
	"strings"

	_ "procurement/api/swagger" // swagger docs
	"procurement/internal/handler"
	"procurement/internal/service"
	"procurement/internal/store"
	"procurement/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Procurement Workflow API
// @version         1.0
// @description     Purchase request, order and payment workflows with a per-category budget ledger.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	snapshotPath := os.Getenv("SNAPSHOT_PATH")
	if snapshotPath == "" {
		snapshotPath = "data/snapshot.json"
	}

	snapshotStore, err := store.OpenFileStore(snapshotPath)
	if err != nil {
		log.Fatalf("Snapshot store failed to open: %v", err)
	}
	log.Printf("Snapshot loaded from %s", snapshotPath)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Store -> Service -> Handler)
	auditService := service.NewAuditService()
	requestService := service.NewRequestService(snapshotStore, auditService, wsHub)
	orderService := service.NewOrderService(snapshotStore, auditService, wsHub)
	paymentService := service.NewPaymentService(snapshotStore, auditService, wsHub)
	catalogService := service.NewCatalogService(snapshotStore, auditService, wsHub)
	statisticsService := service.NewStatisticsService(snapshotStore)

	// Initialize Handlers
	requestHandler := handler.NewRequestHandler(requestService)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	auditHandler := handler.NewAuditHandler(auditService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173,http://127.0.0.1:5173"
	}
	corsConfig.AllowOrigins = strings.Split(origins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	requestHandler.RegisterRoutes(router.Group(""))
	orderHandler.RegisterRoutes(router.Group(""))
	paymentHandler.RegisterRoutes(router.Group(""))
	catalogHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))
	statisticsHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
