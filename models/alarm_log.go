package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlarmLog records each fired reminder/task alarm and the delivery result.
type AlarmLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SourceType   string    `gorm:"type:varchar(20)" json:"sourceType"` // reminder, task
	SourceID     uuid.UUID `gorm:"type:uuid;index" json:"sourceId"`
	Title        string    `json:"title"`
	Message      string    `gorm:"type:text" json:"message"`
	Channel      string    `gorm:"type:varchar(20)" json:"channel"` // whatsapp, sms, log
	Status       string    `gorm:"type:varchar(20)" json:"status"`  // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"errorMessage"`
	SentAt       time.Time `json:"sentAt"`
}

func (a *AlarmLog) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
