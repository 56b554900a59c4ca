package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task categories and states. Tasks keep their own three-value sets; they
// are not work orders and do not share the job cycle.
const (
	TaskCategoryWork     = "work"
	TaskCategoryPersonal = "personal"
	TaskCategoryTeam     = "team"

	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Task is a personal/team to-do entry.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Category    string     `gorm:"type:varchar(20);default:'work'" json:"category"`
	Priority    string     `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	Status      string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	DueDate     string     `gorm:"type:varchar(10)" json:"dueDate"`
	AlarmTime   string     `gorm:"type:varchar(5)" json:"alarmTime"`
	Assignee    string     `json:"assignee"`
	Tags        StringList `gorm:"type:jsonb;default:'[]'" json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
