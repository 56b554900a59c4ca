package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder is a sticky-note style note with an optional alarm time.
type Reminder struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description"`
	Date           string    `gorm:"type:varchar(10)" json:"date"`
	Time           string    `gorm:"type:varchar(5)" json:"time"`
	Color          string    `gorm:"type:varchar(20)" json:"color"`
	IsCompleted    bool      `gorm:"default:false" json:"isCompleted"`
	CompletionDate string    `gorm:"type:varchar(10)" json:"completionDate"`
	IsArchived     bool      `gorm:"default:false" json:"isArchived"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
