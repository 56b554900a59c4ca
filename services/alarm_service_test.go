package services

import (
	"testing"
	"time"

	"solarops-backend/models"
)

func TestCountOverdueInstallations(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

	open := func(deadline string) models.Installation {
		inst := models.Installation{DeadlineDate: deadline}
		inst.Status = models.StatusPending
		return inst
	}
	resolved := open("2024-06-01")
	resolved.Status = models.StatusResolved

	installations := []models.Installation{
		open("2024-06-01"), // past deadline
		open("2024-06-15"), // due today, not overdue yet
		open("2024-06-30"), // still ahead
		open(""),           // no deadline set
		open("sem prazo"),  // unparseable
		resolved,           // done, past deadline is irrelevant
	}

	if got := countOverdueInstallations(installations, now); got != 1 {
		t.Errorf("countOverdueInstallations = %d, want 1", got)
	}
}

func TestCountOverdueInstallationsIgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	inst := models.Installation{DeadlineDate: "2024-06-15"}
	inst.Status = models.StatusInProgress

	if got := countOverdueInstallations([]models.Installation{inst}, lateEvening); got != 0 {
		t.Errorf("deadline day itself should not count as overdue, got %d", got)
	}
}
