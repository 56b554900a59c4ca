package main

import (
	"fmt"
	"log"
	"os"

	"solarops-backend/config"
	"solarops-backend/models"
	"solarops-backend/routes"
	"solarops-backend/services"

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
		&models.Client{},
		&models.Scheduling{},
		&models.InverterConfig{},
		&models.Installation{},
		&models.Refund{},
		&models.Reminder{},
		&models.Task{},
		&models.AppSetting{},
		&models.AlarmLog{},
	)

	seedAdmin()
}

// seedAdmin creates the bootstrap admin account the first time the
// server starts against an empty users table. Credentials come from the
// environment; there is no built-in fallback login.
func seedAdmin() {
	var count int64
	if err := config.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("No users exist and ADMIN_USERNAME/ADMIN_PASSWORD are unset; nobody can log in")
		return
	}

	admin := models.User{
		Username: username,
		Password: password,
		Role:     models.RoleAdmin,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("Created admin user %q", username)
}

func main() {

	alarms := services.NewAlarmService(config.DB)
	alarms.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
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
