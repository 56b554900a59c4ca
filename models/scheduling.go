package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scheduling is a service-visit work order.
type Scheduling struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber      string     `gorm:"type:varchar(10);not null" json:"orderNumber"`
	RegistrationDate time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"registrationDate"`
	ClientID         *uuid.UUID `gorm:"type:uuid;index" json:"clientId"`
	Client           string     `gorm:"not null" json:"client"`
	Phone            string     `json:"phone"`
	Salesperson      string     `json:"salesperson"`
	Location         string     `json:"location"`
	Service          string     `json:"service"`
	Team             string     `json:"team"`
	Observation      string     `json:"observation"`
	ScheduledDate    string     `gorm:"type:varchar(10)" json:"scheduledDate"`
	ScheduledTime    string     `gorm:"type:varchar(5)" json:"scheduledTime"`
	Value            float64    `gorm:"type:decimal(10,2);default:0.0" json:"value"`

	JobTracking
}

func (s *Scheduling) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
