package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Installation is a panel installation project.
type Installation struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber      string     `gorm:"type:varchar(10);not null" json:"orderNumber"`
	RegistrationDate time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"registrationDate"`
	ClientID         *uuid.UUID `gorm:"type:uuid;index" json:"clientId"`
	Client           string     `gorm:"not null" json:"client"`
	Location         string     `json:"location"`
	Salesperson      string     `json:"salesperson"`
	ContractDate     string     `gorm:"type:varchar(10)" json:"contractDate"`
	DeadlineDate     string     `gorm:"type:varchar(10)" json:"deadlineDate"`
	ArrivalDate      string     `gorm:"type:varchar(10)" json:"arrivalDate"`
	PanelQuantity    int        `gorm:"default:0" json:"panelQuantity"`
	Kwp              float64    `gorm:"type:decimal(10,2);default:0.0" json:"kwp"`
	ScheduledDate    string     `gorm:"type:varchar(10)" json:"scheduledDate"`
	Team             string     `json:"team"`
	Observation      string     `json:"observation"`

	JobTracking
}

func (i *Installation) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
