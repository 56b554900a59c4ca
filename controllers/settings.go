// controllers/settings.go
package controllers

import (
	"errors"
	"net/http"

	"solarops-backend/config"
	"solarops-backend/models"
	"solarops-backend/services"
	"solarops-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateSettingInput struct {
	Value []string `json:"value" binding:"required"`
}

type AddSettingItemInput struct {
	Name string `json:"name" binding:"required"`
}

func validSettingKey(key string) bool {
	switch key {
	case models.SettingServices, models.SettingSalespeople, models.SettingTeams:
		return true
	}
	return false
}

// GetSetting returns one reference list. A list that was never saved
// falls back to its seed defaults.
func GetSetting(c *gin.Context) {
	key := c.Param("key")
	if !validSettingKey(key) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown setting key")
		return
	}

	var setting models.AppSetting
	if err := config.DB.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, models.AppSetting{Key: key, Value: services.DefaultList(key)})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, setting)
}

// GetSettings returns all three reference lists at once
func GetSettings(c *gin.Context) {
	keys := []string{models.SettingServices, models.SettingSalespeople, models.SettingTeams}

	var stored []models.AppSetting
	if err := config.DB.Where("key IN ?", keys).Find(&stored).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	byKey := make(map[string]models.StringList, len(stored))
	for _, s := range stored {
		byKey[s.Key] = s.Value
	}

	result := make(map[string]models.StringList, len(keys))
	for _, key := range keys {
		if value, ok := byKey[key]; ok {
			result[key] = value
		} else {
			result[key] = services.DefaultList(key)
		}
	}

	c.JSON(http.StatusOK, result)
}

// UpdateSetting replaces a reference list wholesale
func UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	if !validSettingKey(key) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown setting key")
		return
	}

	var input UpdateSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	setting := models.AppSetting{Key: key, Value: models.StringList(input.Value)}
	if err := config.DB.Save(&setting).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update setting")
		return
	}

	c.JSON(http.StatusOK, setting)
}

// AddSettingItem appends one item to a reference list if it is not
// already present
func AddSettingItem(c *gin.Context) {
	key := c.Param("key")
	if !validSettingKey(key) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown setting key")
		return
	}

	var input AddSettingItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := services.EnsureListItem(config.DB, key, input.Name); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update setting")
		return
	}

	var setting models.AppSetting
	if err := config.DB.First(&setting, "key = ?", key).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, setting)
}
