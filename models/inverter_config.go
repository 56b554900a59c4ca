package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InverterConfig is an inverter configuration work order. It mirrors
// Scheduling with the service field replaced by the inverter model.
type InverterConfig struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber      string     `gorm:"type:varchar(10);not null" json:"orderNumber"`
	RegistrationDate time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"registrationDate"`
	ClientID         *uuid.UUID `gorm:"type:uuid;index" json:"clientId"`
	Client           string     `gorm:"not null" json:"client"`
	Phone            string     `json:"phone"`
	Salesperson      string     `json:"salesperson"`
	Location         string     `json:"location"`
	InverterModel    string     `json:"inverterModel"`
	Team             string     `json:"team"`
	Observation      string     `json:"observation"`
	ScheduledDate    string     `gorm:"type:varchar(10)" json:"scheduledDate"`
	ScheduledTime    string     `gorm:"type:varchar(5)" json:"scheduledTime"`
	Value            float64    `gorm:"type:decimal(10,2);default:0.0" json:"value"`

	JobTracking
}

func (i *InverterConfig) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
