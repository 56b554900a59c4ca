package routes

import (
	"os"
	"strings"

	"solarops-backend/config"
	"solarops-backend/controllers"
	"solarops-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.PUT("/password", controllers.ChangePassword)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Scheduling routes
		schedulings := api.Group("/schedulings")
		{
			schedulings.POST("", controllers.CreateScheduling)
			schedulings.GET("", controllers.GetSchedulings)
			schedulings.GET("/:id", controllers.GetScheduling)
			schedulings.PUT("/:id", controllers.UpdateScheduling)
			schedulings.DELETE("/:id", controllers.DeleteScheduling)
			schedulings.PATCH("/:id/status", controllers.AdvanceSchedulingStatus)
			schedulings.PATCH("/:id/priority", controllers.AdvanceSchedulingPriority)
		}

		// Inverter configuration routes
		inverters := api.Group("/inverters")
		{
			inverters.POST("", controllers.CreateInverterConfig)
			inverters.GET("", controllers.GetInverterConfigs)
			inverters.GET("/:id", controllers.GetInverterConfig)
			inverters.PUT("/:id", controllers.UpdateInverterConfig)
			inverters.DELETE("/:id", controllers.DeleteInverterConfig)
			inverters.PATCH("/:id/status", controllers.AdvanceInverterStatus)
			inverters.PATCH("/:id/priority", controllers.AdvanceInverterPriority)
		}

		// Installation project routes
		installations := api.Group("/installations")
		{
			installations.POST("", controllers.CreateInstallation)
			installations.GET("", controllers.GetInstallations)
			installations.GET("/:id", controllers.GetInstallation)
			installations.PUT("/:id", controllers.UpdateInstallation)
			installations.DELETE("/:id", controllers.DeleteInstallation)
			installations.PATCH("/:id/status", controllers.AdvanceInstallationStatus)
			installations.PATCH("/:id/priority", controllers.AdvanceInstallationPriority)
		}

		// Client registry routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Refund routes
		refunds := api.Group("/refunds")
		{
			refunds.POST("", controllers.CreateRefund)
			refunds.GET("", controllers.GetRefunds)
			refunds.GET("/:id", controllers.GetRefund)
			refunds.PUT("/:id", controllers.UpdateRefund)
			refunds.DELETE("/:id", controllers.DeleteRefund)
		}

		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("", controllers.CreateReminder)
			reminders.GET("", controllers.GetReminders)
			reminders.GET("/:id", controllers.GetReminder)
			reminders.PUT("/:id", controllers.UpdateReminder)
			reminders.DELETE("/:id", controllers.DeleteReminder)
			reminders.PATCH("/:id/complete", controllers.ToggleReminderComplete)
			reminders.PATCH("/:id/archive", controllers.ToggleReminderArchive)
		}

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.POST("", controllers.CreateTask)
			tasks.GET("", controllers.GetTasks)
			tasks.GET("/:id", controllers.GetTask)
			tasks.PUT("/:id", controllers.UpdateTask)
			tasks.DELETE("/:id", controllers.DeleteTask)
		}

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("", controllers.GetSettings)
			settings.GET("/:key", controllers.GetSetting)
			settings.PUT("/:key", controllers.UpdateSetting)
			settings.POST("/:key/items", controllers.AddSettingItem)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Alarm history
		api.GET("/alarms/logs", controllers.GetAlarmLogs)

		// Backup and reporting routes
		api.GET("/backup/export", controllers.ExportBackup)
		api.POST("/backup/restore", utils.RequireAdmin(), controllers.RestoreBackup)
		api.POST("/backup/import/csv", controllers.ImportSchedulingsCSV)
		api.GET("/export/csv", controllers.ExportSchedulingsCSV)
		api.GET("/export/xlsx", controllers.ExportSchedulingsExcel)
		api.GET("/export/pdf", controllers.ExportSchedulingsPDF)

		// User management routes (admin only)
		users := api.Group("/users", utils.RequireAdmin())
		{
			users.GET("", controllers.GetUsers)
			users.POST("", controllers.CreateUser)
			users.PUT("/:id/password", controllers.ResetUserPassword)
			users.DELETE("/:id", controllers.DeleteUser)
		}
	}

	return r
}
