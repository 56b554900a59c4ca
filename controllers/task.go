// controllers/task.go
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

type CreateTaskInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"omitempty,oneof=work personal team"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      string   `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	DueDate     string   `json:"dueDate"`
	AlarmTime   string   `json:"alarmTime"`
	Assignee    string   `json:"assignee"`
	Tags        []string `json:"tags"`
}

type UpdateTaskInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category" binding:"omitempty,oneof=work personal team"`
	Priority    *string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      *string   `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	DueDate     *string   `json:"dueDate"`
	AlarmTime   *string   `json:"alarmTime"`
	Assignee    *string   `json:"assignee"`
	Tags        *[]string `json:"tags"`
}

// CreateTask creates a new to-do task
func CreateTask(c *gin.Context) {
	var input CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      input.Status,
		DueDate:     input.DueDate,
		AlarmTime:   input.AlarmTime,
		Assignee:    input.Assignee,
		Tags:        models.StringList(input.Tags),
	}
	if task.Category == "" {
		task.Category = models.TaskCategoryWork
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}

	if err := config.DB.Create(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks retrieves all tasks, newest first. Optional ?category= and
// ?status= filters narrow the list.
func GetTasks(c *gin.Context) {
	query := config.DB.Order("created_at desc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask retrieves a specific task by ID
func GetTask(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var task models.Task
	if err := config.DB.First(&task, "id = ?", taskUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask updates an existing task
func UpdateTask(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var input UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var task models.Task
	if err := config.DB.First(&task, "id = ?", taskUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Category != nil {
		task.Category = *input.Category
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.AlarmTime != nil {
		task.AlarmTime = *input.AlarmTime
	}
	if input.Assignee != nil {
		task.Assignee = *input.Assignee
	}
	if input.Tags != nil {
		task.Tags = models.StringList(*input.Tags)
	}

	if err := config.DB.Save(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task
func DeleteTask(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	result := config.DB.Delete(&models.Task{}, "id = ?", taskUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete task")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
