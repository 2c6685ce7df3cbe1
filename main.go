package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/routes"
	"salonbook-backend/services"
	"salonbook-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	var store storage.Store
	if os.Getenv("DB_URL") != "" {
		config.ConnectDB()
		config.DB.AutoMigrate(
			&models.Stylist{},
			&models.Appointment{},
			&models.Service{},
		)
		store = storage.NewGormStore(config.DB)
	} else {
		log.Println("DB_URL not set, running with in-memory store")
		store = storage.NewMemoryStore()
	}

	scheduler := services.NewSchedulerService(store)
	ctx := context.Background()
	if err := scheduler.Load(ctx); err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	if err := scheduler.EnsureSeedData(ctx); err != nil {
		log.Fatalf("Failed to seed dataset: %v", err)
	}

	sweeper := services.NewSweepService(scheduler)
	sweeper.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(scheduler)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
