package controllers

import (
	"log"

	"solarops-backend/models"
	"solarops-backend/services"
	"solarops-backend/utils"

	"gorm.io/gorm"
)

// captureLists records any new service/salesperson/team names used on a
// job save. Failures are logged, not surfaced: the job write has already
// succeeded and the lists are a convenience.
func captureLists(db *gorm.DB, service, salesperson, team string) {
	if err := services.EnsureListItem(db, models.SettingServices, service); err != nil {
		log.Printf("Failed to capture service %q: %v", service, err)
	}
	if err := services.EnsureListItem(db, models.SettingSalespeople, salesperson); err != nil {
		log.Printf("Failed to capture salesperson %q: %v", salesperson, err)
	}
	if err := services.EnsureListItem(db, models.SettingTeams, team); err != nil {
		log.Printf("Failed to capture team %q: %v", team, err)
	}
}

// nextOrderNumberFor computes the next order number for a job table
// inside the caller's transaction.
func nextOrderNumberFor(tx *gorm.DB, model interface{}) (string, error) {
	var numbers []string
	if err := tx.Model(model).Pluck("order_number", &numbers).Error; err != nil {
		return "", err
	}
	return utils.NextOrderNumber(numbers), nil
}
