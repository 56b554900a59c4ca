// controllers/installation.go
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

type CreateInstallationInput struct {
	Client        string  `json:"client" binding:"required"`
	Location      string  `json:"location"`
	Salesperson   string  `json:"salesperson"`
	ContractDate  string  `json:"contractDate"`
	DeadlineDate  string  `json:"deadlineDate"`
	ArrivalDate   string  `json:"arrivalDate"`
	PanelQuantity int     `json:"panelQuantity" binding:"min=0"`
	Kwp           float64 `json:"kwp" binding:"min=0"`
	ScheduledDate string  `json:"scheduledDate"`
	Team          string  `json:"team"`
	Observation   string  `json:"observation"`
	Priority      string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

type UpdateInstallationInput struct {
	Client        *string  `json:"client"`
	Location      *string  `json:"location"`
	Salesperson   *string  `json:"salesperson"`
	ContractDate  *string  `json:"contractDate"`
	DeadlineDate  *string  `json:"deadlineDate"`
	ArrivalDate   *string  `json:"arrivalDate"`
	PanelQuantity *int     `json:"panelQuantity"`
	Kwp           *float64 `json:"kwp"`
	ScheduledDate *string  `json:"scheduledDate"`
	Team          *string  `json:"team"`
	Observation   *string  `json:"observation"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status        *string  `json:"status" binding:"omitempty,oneof=pending in_progress resolved"`
}

// CreateInstallation creates a new installation project. When no deadline
// is given it defaults to the contract date plus 90 days.
func CreateInstallation(c *gin.Context) {
	var input CreateInstallationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	deadline := input.DeadlineDate
	if deadline == "" && input.ContractDate != "" {
		if contract, err := time.Parse("2006-01-02", input.ContractDate); err == nil {
			deadline = contract.AddDate(0, 0, 90).Format("2006-01-02")
		}
	}

	installation := models.Installation{
		RegistrationDate: time.Now(),
		Client:           input.Client,
		Location:         input.Location,
		Salesperson:      input.Salesperson,
		ContractDate:     input.ContractDate,
		DeadlineDate:     deadline,
		ArrivalDate:      input.ArrivalDate,
		PanelQuantity:    input.PanelQuantity,
		Kwp:              input.Kwp,
		ScheduledDate:    input.ScheduledDate,
		Team:             input.Team,
		Observation:      input.Observation,
	}
	installation.Status = models.StatusPending
	installation.Priority = input.Priority
	if installation.Priority == "" {
		installation.Priority = models.PriorityMedium
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		orderNumber, err := nextOrderNumberFor(tx, &models.Installation{})
		if err != nil {
			return err
		}
		installation.OrderNumber = orderNumber

		clientID, err := services.CaptureClient(tx, input.Client, "", input.Location, input.Salesperson)
		if err != nil {
			return err
		}
		installation.ClientID = clientID

		return tx.Create(&installation).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create installation")
		return
	}

	captureLists(config.DB, "", input.Salesperson, input.Team)

	c.JSON(http.StatusCreated, installation)
}

// GetInstallations retrieves all installations, newest order first
func GetInstallations(c *gin.Context) {
	var installations []models.Installation
	if err := config.DB.Order("order_number desc").Find(&installations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve installations")
		return
	}

	c.JSON(http.StatusOK, installations)
}

// GetInstallation retrieves a specific installation by ID
func GetInstallation(c *gin.Context) {
	installationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid installation ID format")
		return
	}

	var installation models.Installation
	if err := config.DB.First(&installation, "id = ?", installationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Installation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, installation)
}

// UpdateInstallation updates an existing installation
func UpdateInstallation(c *gin.Context) {
	installationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid installation ID format")
		return
	}

	var input UpdateInstallationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var installation models.Installation
	if err := config.DB.First(&installation, "id = ?", installationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Installation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Client != nil {
		installation.Client = *input.Client
	}
	if input.Location != nil {
		installation.Location = *input.Location
	}
	if input.Salesperson != nil {
		installation.Salesperson = *input.Salesperson
	}
	if input.ContractDate != nil {
		installation.ContractDate = *input.ContractDate
	}
	if input.DeadlineDate != nil {
		installation.DeadlineDate = *input.DeadlineDate
	}
	if input.ArrivalDate != nil {
		installation.ArrivalDate = *input.ArrivalDate
	}
	if input.PanelQuantity != nil {
		installation.PanelQuantity = *input.PanelQuantity
	}
	if input.Kwp != nil {
		installation.Kwp = *input.Kwp
	}
	if input.ScheduledDate != nil {
		installation.ScheduledDate = *input.ScheduledDate
	}
	if input.Team != nil {
		installation.Team = *input.Team
	}
	if input.Observation != nil {
		installation.Observation = *input.Observation
	}
	if input.Priority != nil {
		installation.Priority = *input.Priority
	}
	if input.Status != nil {
		installation.Status = *input.Status
		if installation.Status == models.StatusResolved && installation.CompletionDate == "" {
			installation.CompletionDate = utils.Today()
		} else if installation.Status != models.StatusResolved {
			installation.CompletionDate = ""
		}
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		clientID, err := services.CaptureClient(tx, installation.Client, "", installation.Location, installation.Salesperson)
		if err != nil {
			return err
		}
		installation.ClientID = clientID

		return tx.Save(&installation).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update installation")
		return
	}

	captureLists(config.DB, "", installation.Salesperson, installation.Team)

	c.JSON(http.StatusOK, installation)
}

// DeleteInstallation removes an installation
func DeleteInstallation(c *gin.Context) {
	installationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid installation ID format")
		return
	}

	result := config.DB.Delete(&models.Installation{}, "id = ?", installationUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete installation")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Installation not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Installation deleted successfully"})
}

// AdvanceInstallationStatus moves the project one step through the status cycle
func AdvanceInstallationStatus(c *gin.Context) {
	installationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid installation ID format")
		return
	}

	var installation models.Installation
	if err := config.DB.First(&installation, "id = ?", installationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Installation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	installation.AdvanceStatus(utils.Today())

	if err := config.DB.Save(&installation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update installation")
		return
	}

	c.JSON(http.StatusOK, installation)
}

// AdvanceInstallationPriority moves the project one step through the priority cycle
func AdvanceInstallationPriority(c *gin.Context) {
	installationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid installation ID format")
		return
	}

	var installation models.Installation
	if err := config.DB.First(&installation, "id = ?", installationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Installation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	installation.AdvancePriority()

	if err := config.DB.Save(&installation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update installation")
		return
	}

	c.JSON(http.StatusOK, installation)
}
