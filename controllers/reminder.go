// controllers/reminder.go
package controllers

import (
	"errors"
	"net/http"

	"solarops-backend/config"
	"solarops-backend/models"
	"solarops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateReminderInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Color       string `json:"color"`
}

type UpdateReminderInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Color       *string `json:"color"`
	IsCompleted *bool   `json:"isCompleted"`
	IsArchived  *bool   `json:"isArchived"`
}

// CreateReminder creates a new reminder note
func CreateReminder(c *gin.Context) {
	var input CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reminder := models.Reminder{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Color:       input.Color,
	}

	if err := config.DB.Create(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reminder")
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// GetReminders retrieves all reminders. Pass ?archived=true to list the
// archive instead of the active board.
func GetReminders(c *gin.Context) {
	archived := c.Query("archived") == "true"

	var reminders []models.Reminder
	if err := config.DB.Where("is_archived = ?", archived).Order("date, time").Find(&reminders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminders")
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// GetReminder retrieves a specific reminder by ID
func GetReminder(c *gin.Context) {
	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var reminder models.Reminder
	if err := config.DB.First(&reminder, "id = ?", reminderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// UpdateReminder updates an existing reminder. Marking it completed
// stamps the completion date; clearing the flag clears the stamp.
func UpdateReminder(c *gin.Context) {
	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var input UpdateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var reminder models.Reminder
	if err := config.DB.First(&reminder, "id = ?", reminderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		reminder.Title = *input.Title
	}
	if input.Description != nil {
		reminder.Description = *input.Description
	}
	if input.Date != nil {
		reminder.Date = *input.Date
	}
	if input.Time != nil {
		reminder.Time = *input.Time
	}
	if input.Color != nil {
		reminder.Color = *input.Color
	}
	if input.IsCompleted != nil {
		reminder.IsCompleted = *input.IsCompleted
		if reminder.IsCompleted && reminder.CompletionDate == "" {
			reminder.CompletionDate = utils.Today()
		} else if !reminder.IsCompleted {
			reminder.CompletionDate = ""
		}
	}
	if input.IsArchived != nil {
		reminder.IsArchived = *input.IsArchived
	}

	if err := config.DB.Save(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reminder")
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// DeleteReminder removes a reminder
func DeleteReminder(c *gin.Context) {
	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	result := config.DB.Delete(&models.Reminder{}, "id = ?", reminderUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete reminder")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}

// ToggleReminderComplete flips the completed flag and keeps the
// completion date in sync
func ToggleReminderComplete(c *gin.Context) {
	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var reminder models.Reminder
	if err := config.DB.First(&reminder, "id = ?", reminderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	reminder.IsCompleted = !reminder.IsCompleted
	if reminder.IsCompleted {
		reminder.CompletionDate = utils.Today()
	} else {
		reminder.CompletionDate = ""
	}

	if err := config.DB.Save(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reminder")
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// ToggleReminderArchive moves the reminder in or out of the archive
func ToggleReminderArchive(c *gin.Context) {
	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var reminder models.Reminder
	if err := config.DB.First(&reminder, "id = ?", reminderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	reminder.IsArchived = !reminder.IsArchived

	if err := config.DB.Save(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reminder")
		return
	}

	c.JSON(http.StatusOK, reminder)
}
