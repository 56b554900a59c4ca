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

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Salesperson string `json:"salesperson"`
	Notes       string `json:"notes"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	Salesperson *string `json:"salesperson"`
	Notes       *string `json:"notes"`
}

// CreateClient creates a new client record
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client := models.Client{
		Name:        input.Name,
		Phone:       input.Phone,
		Location:    input.Location,
		Salesperson: input.Salesperson,
		Notes:       input.Notes,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Client with this name already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients ordered by name
func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("name").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient updates the canonical client record and cascades the new
// name, phone and location to every job row referencing it.
func UpdateClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		client.Phone = *input.Phone
	}
	if input.Location != nil {
		client.Location = *input.Location
	}
	if input.Salesperson != nil {
		client.Salesperson = *input.Salesperson
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&client).Error; err != nil {
			return err
		}

		// Cascade keyed by client id, so renames cannot orphan job rows
		jobFields := map[string]interface{}{
			"client":   client.Name,
			"phone":    client.Phone,
			"location": client.Location,
		}
		if err := tx.Model(&models.Scheduling{}).Where("client_id = ?", client.ID).Updates(jobFields).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.InverterConfig{}).Where("client_id = ?", client.ID).Updates(jobFields).Error; err != nil {
			return err
		}
		// Installations carry no phone field
		return tx.Model(&models.Installation{}).Where("client_id = ?", client.ID).Updates(map[string]interface{}{
			"client":   client.Name,
			"location": client.Location,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Client with this name already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client record. Job rows keep their denormalized
// client name; only the reference is cleared.
func DeleteClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Scheduling{}, &models.InverterConfig{}, &models.Installation{}} {
			if err := tx.Model(model).Where("client_id = ?", clientUUID).Update("client_id", nil).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Client{}, "id = ?", clientUUID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
