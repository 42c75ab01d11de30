// @title Didieffe Storefront API
// @version 1.0
// @description Didieffe B2C storefront catalog search, faceting and product API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/config"
	_ "github.com/Didieffe-Ecommerce/didieffe-storefront-backend/docs"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/middleware"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/routes/ecommerce_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Load the catalog and filter declarations, start the file watcher
	config.InitCatalog()

	// Redis connection (rate limiting only, optional)
	config.ConnectRedis()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(300, time.Minute))

	ecommerce_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
