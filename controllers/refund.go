// controllers/refund.go
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

type CreateRefundInput struct {
	Team        string  `json:"team" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
	Value       float64 `json:"value" binding:"required,min=0"`
}

type UpdateRefundInput struct {
	Team        *string  `json:"team"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
	Value       *float64 `json:"value"`
}

// CreateRefund creates a new expense refund entry
func CreateRefund(c *gin.Context) {
	var input CreateRefundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	refund := models.Refund{
		Team:        input.Team,
		Date:        input.Date,
		Description: input.Description,
		Value:       input.Value,
	}

	if err := config.DB.Create(&refund).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create refund")
		return
	}

	c.JSON(http.StatusCreated, refund)
}

// GetRefunds retrieves all refunds, most recent date first
func GetRefunds(c *gin.Context) {
	var refunds []models.Refund
	if err := config.DB.Order("date desc").Find(&refunds).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve refunds")
		return
	}

	c.JSON(http.StatusOK, refunds)
}

// GetRefund retrieves a specific refund by ID
func GetRefund(c *gin.Context) {
	refundUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid refund ID format")
		return
	}

	var refund models.Refund
	if err := config.DB.First(&refund, "id = ?", refundUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Refund not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, refund)
}

// UpdateRefund updates an existing refund
func UpdateRefund(c *gin.Context) {
	refundUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid refund ID format")
		return
	}

	var input UpdateRefundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var refund models.Refund
	if err := config.DB.First(&refund, "id = ?", refundUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Refund not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Team != nil {
		refund.Team = *input.Team
	}
	if input.Date != nil {
		refund.Date = *input.Date
	}
	if input.Description != nil {
		refund.Description = *input.Description
	}
	if input.Value != nil {
		refund.Value = *input.Value
	}

	if err := config.DB.Save(&refund).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update refund")
		return
	}

	c.JSON(http.StatusOK, refund)
}

// DeleteRefund removes a refund
func DeleteRefund(c *gin.Context) {
	refundUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid refund ID format")
		return
	}

	result := config.DB.Delete(&models.Refund{}, "id = ?", refundUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete refund")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Refund not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Refund deleted successfully"})
}
