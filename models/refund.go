package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Refund is a team expense reimbursement entry.
type Refund struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Team        string    `gorm:"not null" json:"team"`
	Date        string    `gorm:"type:varchar(10)" json:"date"`
	Description string    `json:"description"`
	Value       float64   `gorm:"type:decimal(10,2);default:0.0" json:"value"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *Refund) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
