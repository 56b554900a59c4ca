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

// CreateSchedulingInput defines the expected JSON structure for creating a scheduling
type CreateSchedulingInput struct {
	Client        string  `json:"client" binding:"required"`
	Phone         string  `json:"phone"`
	Salesperson   string  `json:"salesperson"`
	Location      string  `json:"location"`
	Service       string  `json:"service"`
	Team          string  `json:"team"`
	Observation   string  `json:"observation"`
	ScheduledDate string  `json:"scheduledDate"`
	ScheduledTime string  `json:"scheduledTime"`
	Value         float64 `json:"value" binding:"min=0"`
	Priority      string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

// UpdateSchedulingInput defines the expected JSON structure for updating a scheduling
type UpdateSchedulingInput struct {
	Client        *string  `json:"client"`
	Phone         *string  `json:"phone"`
	Salesperson   *string  `json:"salesperson"`
	Location      *string  `json:"location"`
	Service       *string  `json:"service"`
	Team          *string  `json:"team"`
	Observation   *string  `json:"observation"`
	ScheduledDate *string  `json:"scheduledDate"`
	ScheduledTime *string  `json:"scheduledTime"`
	Value         *float64 `json:"value"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status        *string  `json:"status" binding:"omitempty,oneof=pending in_progress resolved"`
}

// CreateScheduling creates a new service-visit work order. The order
// number is assigned inside the transaction so two concurrent saves
// cannot mint the same one.
func CreateScheduling(c *gin.Context) {
	var input CreateSchedulingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	scheduling := models.Scheduling{
		RegistrationDate: time.Now(),
		Client:           input.Client,
		Phone:            input.Phone,
		Salesperson:      input.Salesperson,
		Location:         input.Location,
		Service:          input.Service,
		Team:             input.Team,
		Observation:      input.Observation,
		ScheduledDate:    input.ScheduledDate,
		ScheduledTime:    input.ScheduledTime,
		Value:            input.Value,
	}
	scheduling.Status = models.StatusPending
	scheduling.Priority = input.Priority
	if scheduling.Priority == "" {
		scheduling.Priority = models.PriorityMedium
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		orderNumber, err := nextOrderNumberFor(tx, &models.Scheduling{})
		if err != nil {
			return err
		}
		scheduling.OrderNumber = orderNumber

		clientID, err := services.CaptureClient(tx, input.Client, input.Phone, input.Location, input.Salesperson)
		if err != nil {
			return err
		}
		scheduling.ClientID = clientID

		return tx.Create(&scheduling).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create scheduling")
		return
	}

	captureLists(config.DB, input.Service, input.Salesperson, input.Team)

	c.JSON(http.StatusCreated, scheduling)
}

// GetSchedulings retrieves all schedulings, newest order first
func GetSchedulings(c *gin.Context) {
	var schedulings []models.Scheduling
	if err := config.DB.Order("order_number desc").Find(&schedulings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedulings")
		return
	}

	c.JSON(http.StatusOK, schedulings)
}

// GetScheduling retrieves a specific scheduling by ID
func GetScheduling(c *gin.Context) {
	schedulingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid scheduling ID format")
		return
	}

	var scheduling models.Scheduling
	if err := config.DB.First(&scheduling, "id = ?", schedulingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Scheduling not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, scheduling)
}

// UpdateScheduling updates an existing scheduling
func UpdateScheduling(c *gin.Context) {
	schedulingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid scheduling ID format")
		return
	}

	var input UpdateSchedulingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var scheduling models.Scheduling
	if err := config.DB.First(&scheduling, "id = ?", schedulingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Scheduling not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Client != nil {
		scheduling.Client = *input.Client
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		scheduling.Phone = *input.Phone
	}
	if input.Salesperson != nil {
		scheduling.Salesperson = *input.Salesperson
	}
	if input.Location != nil {
		scheduling.Location = *input.Location
	}
	if input.Service != nil {
		scheduling.Service = *input.Service
	}
	if input.Team != nil {
		scheduling.Team = *input.Team
	}
	if input.Observation != nil {
		scheduling.Observation = *input.Observation
	}
	if input.ScheduledDate != nil {
		scheduling.ScheduledDate = *input.ScheduledDate
	}
	if input.ScheduledTime != nil {
		scheduling.ScheduledTime = *input.ScheduledTime
	}
	if input.Value != nil {
		scheduling.Value = *input.Value
	}
	if input.Priority != nil {
		scheduling.Priority = *input.Priority
	}
	if input.Status != nil {
		scheduling.Status = *input.Status
		if scheduling.Status == models.StatusResolved && scheduling.CompletionDate == "" {
			scheduling.CompletionDate = utils.Today()
		} else if scheduling.Status != models.StatusResolved {
			scheduling.CompletionDate = ""
		}
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		clientID, err := services.CaptureClient(tx, scheduling.Client, scheduling.Phone, scheduling.Location, scheduling.Salesperson)
		if err != nil {
			return err
		}
		scheduling.ClientID = clientID

		return tx.Save(&scheduling).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update scheduling")
		return
	}

	captureLists(config.DB, scheduling.Service, scheduling.Salesperson, scheduling.Team)

	c.JSON(http.StatusOK, scheduling)
}

// DeleteScheduling removes a scheduling
func DeleteScheduling(c *gin.Context) {
	schedulingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid scheduling ID format")
		return
	}

	result := config.DB.Delete(&models.Scheduling{}, "id = ?", schedulingUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete scheduling")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Scheduling not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Scheduling deleted successfully"})
}

// AdvanceSchedulingStatus moves the scheduling one step through the
// status cycle
func AdvanceSchedulingStatus(c *gin.Context) {
	schedulingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid scheduling ID format")
		return
	}

	var scheduling models.Scheduling
	if err := config.DB.First(&scheduling, "id = ?", schedulingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Scheduling not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	scheduling.AdvanceStatus(utils.Today())

	if err := config.DB.Save(&scheduling).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update scheduling")
		return
	}

	c.JSON(http.StatusOK, scheduling)
}

// AdvanceSchedulingPriority moves the scheduling one step through the
// priority cycle
func AdvanceSchedulingPriority(c *gin.Context) {
	schedulingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid scheduling ID format")
		return
	}

	var scheduling models.Scheduling
	if err := config.DB.First(&scheduling, "id = ?", schedulingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Scheduling not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	scheduling.AdvancePriority()

	if err := config.DB.Save(&scheduling).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update scheduling")
		return
	}

	c.JSON(http.StatusOK, scheduling)
}
