package main

import (
	"log"
	"net/http"
	"os"

	"studio/config"
	"studio/jobs"
	"studio/middleware"
	"studio/routes"
	"studio/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	router.Use(middleware.SessionMiddleware())
	router.Use(middleware.ErrorHandler())

	packageService := services.NewPackageService(config.DB, config.RedisClient)
	jobs.SetPopularCacheRefresher(services.NewPackageServiceAdapter(packageService))

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
