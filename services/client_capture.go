package services

import (
	"errors"
	"strings"

	"solarops-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clientUpsertColumns lists the client columns a job save may overwrite
// on conflict. Empty values are excluded: a job type that carries no
// phone (installations) must not wipe a phone captured from an earlier
// scheduling or inverter save.
func clientUpsertColumns(phone, location string) []string {
	var cols []string
	if phone != "" {
		cols = append(cols, "phone")
	}
	if location != "" {
		cols = append(cols, "location")
	}
	return cols
}

// CaptureClient upserts the canonical client record when a job is saved
// with a non-empty client name. Matching is case-insensitive on the name;
// an existing client gets its non-empty phone and location overwritten
// (last write wins). Returns the client ID to store on the job row, or
// nil when the name is empty.
func CaptureClient(db *gorm.DB, name, phone, location, salesperson string) (*uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	client := models.Client{
		Name:        name,
		Phone:       phone,
		Location:    location,
		Salesperson: salesperson,
	}

	onConflict := clause.OnConflict{
		Columns: []clause.Column{{Name: "name_key"}},
	}
	if cols := clientUpsertColumns(phone, location); len(cols) > 0 {
		onConflict.DoUpdates = clause.AssignmentColumns(cols)
	} else {
		onConflict.DoNothing = true
	}

	err := db.Clauses(onConflict).Create(&client).Error
	if err != nil {
		return nil, err
	}

	// On the conflict path the generated ID was discarded; read back the
	// canonical row.
	var existing models.Client
	if err := db.Where("name_key = ?", models.ClientNameKey(name)).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing.ID, nil
}

// DefaultList returns the seed values shown before anyone has saved a
// reference list of the given key.
func DefaultList(key string) models.StringList {
	switch key {
	case models.SettingServices:
		return models.StringList{"Instalação Solar", "Manutenção", "Limpeza"}
	case models.SettingSalespeople:
		return models.StringList{"Carlos", "Ana"}
	case models.SettingTeams:
		return models.StringList{"Equipe Alpha", "Técnico João"}
	default:
		return models.StringList{}
	}
}

// EnsureListItem appends name to the reference list stored under key if it
// is not already present. Runs in a transaction with the row locked so two
// concurrent saves cannot drop each other's append.
func EnsureListItem(db *gorm.DB, key, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var setting models.AppSetting
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("key = ?", key).First(&setting).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			list := DefaultList(key)
			if !list.Contains(name) {
				list = append(list, name)
			}
			return tx.Create(&models.AppSetting{Key: key, Value: list}).Error
		}
		if err != nil {
			return err
		}

		if setting.Value.Contains(name) {
			return nil
		}
		setting.Value = append(setting.Value, name)
		return tx.Save(&setting).Error
	})
}
