package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Setting list keys.
const (
	SettingServices    = "services"
	SettingSalespeople = "salespeople"
	SettingTeams       = "teams"
)

// AppSetting stores one named reference list (services, salespeople,
// teams) as a JSONB string array.
type AppSetting struct {
	Key   string     `gorm:"primary_key;type:varchar(50)" json:"key"`
	Value StringList `gorm:"type:jsonb;default:'[]'" json:"value"`
}

// StringList is a JSONB-backed string array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

// Contains reports whether the list already holds name (exact match,
// mirroring the append-if-new behavior of the settings forms).
func (l StringList) Contains(name string) bool {
	for _, v := range l {
		if v == name {
			return true
		}
	}
	return false
}
