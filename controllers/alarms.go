// controllers/alarms.go
package controllers

import (
	"net/http"

	"solarops-backend/config"
	"solarops-backend/models"
	"solarops-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetAlarmLogs returns the most recent alarm deliveries, newest first
func GetAlarmLogs(c *gin.Context) {
	var logs []models.AlarmLog
	if err := config.DB.Order("sent_at desc").Limit(50).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve alarm logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
