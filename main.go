package main

import (
	"fmt"
	"log"
	"os"

	"gymnet-backend/config"
	"gymnet-backend/models"
	"gymnet-backend/routes"
	"gymnet-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.TraineeLink{},
		&models.Gym{},
		&models.Location{},
		&models.Picture{},
		&models.Schedule{},
		&models.Poster{},
		&models.ClassReminderLog{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewReminderService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
