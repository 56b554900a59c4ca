// controllers/inverter.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"solarops-backend/config"
	"solarops-backend/models"
	"solarops-backend/services"
	"solarops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateInverterConfigInput struct {
	Client        string  `json:"client" binding:"required"`
	Phone         string  `json:"phone"`
	Salesperson   string  `json:"salesperson"`
	Location      string  `json:"location"`
	InverterModel string  `json:"inverterModel"`
	Team          string  `json:"team"`
	Observation   string  `json:"observation"`
	ScheduledDate string  `json:"scheduledDate"`
	ScheduledTime string  `json:"scheduledTime"`
	Value         float64 `json:"value" binding:"min=0"`
	Priority      string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

type UpdateInverterConfigInput struct {
	Client        *string  `json:"client"`
	Phone         *string  `json:"phone"`
	Salesperson   *string  `json:"salesperson"`
	Location      *string  `json:"location"`
	InverterModel *string  `json:"inverterModel"`
	Team          *string  `json:"team"`
	Observation   *string  `json:"observation"`
	ScheduledDate *string  `json:"scheduledDate"`
	ScheduledTime *string  `json:"scheduledTime"`
	Value         *float64 `json:"value"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status        *string  `json:"status" binding:"omitempty,oneof=pending in_progress resolved"`
}

// CreateInverterConfig creates a new inverter configuration work order
func CreateInverterConfig(c *gin.Context) {
	var input CreateInverterConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	inverter := models.InverterConfig{
		RegistrationDate: time.Now(),
		Client:           input.Client,
		Phone:            input.Phone,
		Salesperson:      input.Salesperson,
		Location:         input.Location,
		InverterModel:    input.InverterModel,
		Team:             input.Team,
		Observation:      input.Observation,
		ScheduledDate:    input.ScheduledDate,
		ScheduledTime:    input.ScheduledTime,
		Value:            input.Value,
	}
	inverter.Status = models.StatusPending
	inverter.Priority = input.Priority
	if inverter.Priority == "" {
		inverter.Priority = models.PriorityMedium
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		orderNumber, err := nextOrderNumberFor(tx, &models.InverterConfig{})
		if err != nil {
			return err
		}
		inverter.OrderNumber = orderNumber

		clientID, err := services.CaptureClient(tx, input.Client, input.Phone, input.Location, input.Salesperson)
		if err != nil {
			return err
		}
		inverter.ClientID = clientID

		return tx.Create(&inverter).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create inverter config")
		return
	}

	// Inverter models share the services reference list
	captureLists(config.DB, input.InverterModel, input.Salesperson, input.Team)

	c.JSON(http.StatusCreated, inverter)
}

// GetInverterConfigs retrieves all inverter configs, newest order first
func GetInverterConfigs(c *gin.Context) {
	var inverters []models.InverterConfig
	if err := config.DB.Order("order_number desc").Find(&inverters).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inverter configs")
		return
	}

	c.JSON(http.StatusOK, inverters)
}

// GetInverterConfig retrieves a specific inverter config by ID
func GetInverterConfig(c *gin.Context) {
	inverterUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inverter config ID format")
		return
	}

	var inverter models.InverterConfig
	if err := config.DB.First(&inverter, "id = ?", inverterUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inverter config not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, inverter)
}

// UpdateInverterConfig updates an existing inverter config
func UpdateInverterConfig(c *gin.Context) {
	inverterUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inverter config ID format")
		return
	}

	var input UpdateInverterConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var inverter models.InverterConfig
	if err := config.DB.First(&inverter, "id = ?", inverterUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inverter config not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Client != nil {
		inverter.Client = *input.Client
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		inverter.Phone = *input.Phone
	}
	if input.Salesperson != nil {
		inverter.Salesperson = *input.Salesperson
	}
	if input.Location != nil {
		inverter.Location = *input.Location
	}
	if input.InverterModel != nil {
		inverter.InverterModel = *input.InverterModel
	}
	if input.Team != nil {
		inverter.Team = *input.Team
	}
	if input.Observation != nil {
		inverter.Observation = *input.Observation
	}
	if input.ScheduledDate != nil {
		inverter.ScheduledDate = *input.ScheduledDate
	}
	if input.ScheduledTime != nil {
		inverter.ScheduledTime = *input.ScheduledTime
	}
	if input.Value != nil {
		inverter.Value = *input.Value
	}
	if input.Priority != nil {
		inverter.Priority = *input.Priority
	}
	if input.Status != nil {
		inverter.Status = *input.Status
		if inverter.Status == models.StatusResolved && inverter.CompletionDate == "" {
			inverter.CompletionDate = utils.Today()
		} else if inverter.Status != models.StatusResolved {
			inverter.CompletionDate = ""
		}
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		clientID, err := services.CaptureClient(tx, inverter.Client, inverter.Phone, inverter.Location, inverter.Salesperson)
		if err != nil {
			return err
		}
		inverter.ClientID = clientID

		return tx.Save(&inverter).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inverter config")
		return
	}

	captureLists(config.DB, inverter.InverterModel, inverter.Salesperson, inverter.Team)

	c.JSON(http.StatusOK, inverter)
}

// DeleteInverterConfig removes an inverter config
func DeleteInverterConfig(c *gin.Context) {
	inverterUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inverter config ID format")
		return
	}

	result := config.DB.Delete(&models.InverterConfig{}, "id = ?", inverterUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete inverter config")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Inverter config not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inverter config deleted successfully"})
}

// AdvanceInverterStatus moves the config one step through the status cycle
func AdvanceInverterStatus(c *gin.Context) {
	inverterUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inverter config ID format")
		return
	}

	var inverter models.InverterConfig
	if err := config.DB.First(&inverter, "id = ?", inverterUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inverter config not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	inverter.AdvanceStatus(utils.Today())

	if err := config.DB.Save(&inverter).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inverter config")
		return
	}

	c.JSON(http.StatusOK, inverter)
}

// AdvanceInverterPriority moves the config one step through the priority cycle
func AdvanceInverterPriority(c *gin.Context) {
	inverterUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inverter config ID format")
		return
	}

	var inverter models.InverterConfig
	if err := config.DB.First(&inverter, "id = ?", inverterUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inverter config not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	inverter.AdvancePriority()

	if err := config.DB.Save(&inverter).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inverter config")
		return
	}

	c.JSON(http.StatusOK, inverter)
}
