package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is the canonical customer record. Job rows reference it by ID;
// NameKey is the lowercased trimmed name used for case-insensitive
// matching and the upsert conflict target.
type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	NameKey     string    `gorm:"uniqueIndex;not null" json:"-"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	Salesperson string    `json:"salesperson"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClientNameKey normalizes a display name for matching.
func ClientNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *Client) BeforeSave(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.NameKey = ClientNameKey(c.Name)
	return
}
