// controllers/dashboard.go
package controllers

import (
	"net/http"
	"sort"
	"strconv"

	"solarops-backend/config"
	"solarops-backend/models"
	"solarops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QueueItem is one row of the merged work queue shown on the dashboard,
// flattened from any of the three job tables.
type QueueItem struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"type"` // scheduling, inverter, installation
	OrderNumber   string    `json:"orderNumber"`
	Client        string    `json:"client"`
	Service       string    `json:"service"`
	Team          string    `json:"team"`
	ScheduledDate string    `json:"scheduledDate"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	Value         float64   `json:"value"`
}

type statusCounts struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
}

// SortQueue orders the merged queue for display: open work before
// resolved, then by priority urgency, then by numeric order number.
// The sort is stable so equal items keep their merge order.
func SortQueue(items []QueueItem) {
	sort.SliceStable(items, func(i, j int) bool {
		iResolved := items[i].Status == models.StatusResolved
		jResolved := items[j].Status == models.StatusResolved
		if iResolved != jResolved {
			return !iResolved
		}

		iRank := models.PriorityRank(items[i].Priority)
		jRank := models.PriorityRank(items[j].Priority)
		if iRank != jRank {
			return iRank < jRank
		}

		iOrder, _ := strconv.Atoi(items[i].OrderNumber)
		jOrder, _ := strconv.Atoi(items[j].OrderNumber)
		return iOrder < jOrder
	})
}

// GetDashboardOverview returns per-type status counts plus the merged,
// priority-sorted work queue across all three job tables.
func GetDashboardOverview(c *gin.Context) {
	var schedulings []models.Scheduling
	if err := config.DB.Find(&schedulings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}
	var inverters []models.InverterConfig
	if err := config.DB.Find(&inverters).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}
	var installations []models.Installation
	if err := config.DB.Find(&installations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}

	queue := make([]QueueItem, 0, len(schedulings)+len(inverters)+len(installations))
	for _, s := range schedulings {
		queue = append(queue, QueueItem{
			ID:            s.ID,
			Type:          "scheduling",
			OrderNumber:   s.OrderNumber,
			Client:        s.Client,
			Service:       s.Service,
			Team:          s.Team,
			ScheduledDate: s.ScheduledDate,
			Status:        s.Status,
			Priority:      s.Priority,
			Value:         s.Value,
		})
	}
	for _, inv := range inverters {
		queue = append(queue, QueueItem{
			ID:            inv.ID,
			Type:          "inverter",
			OrderNumber:   inv.OrderNumber,
			Client:        inv.Client,
			Service:       inv.InverterModel,
			Team:          inv.Team,
			ScheduledDate: inv.ScheduledDate,
			Status:        inv.Status,
			Priority:      inv.Priority,
			Value:         inv.Value,
		})
	}
	for _, inst := range installations {
		queue = append(queue, QueueItem{
			ID:            inst.ID,
			Type:          "installation",
			OrderNumber:   inst.OrderNumber,
			Client:        inst.Client,
			Service:       "Instalação",
			Team:          inst.Team,
			ScheduledDate: inst.ScheduledDate,
			Status:        inst.Status,
			Priority:      inst.Priority,
		})
	}

	SortQueue(queue)

	tally := func(items []QueueItem, typ string) statusCounts {
		var counts statusCounts
		for _, item := range items {
			if item.Type != typ {
				continue
			}
			counts.Total++
			switch item.Status {
			case models.StatusPending:
				counts.Pending++
			case models.StatusInProgress:
				counts.InProgress++
			case models.StatusResolved:
				counts.Resolved++
			}
		}
		return counts
	}

	c.JSON(http.StatusOK, gin.H{
		"schedulings":   tally(queue, "scheduling"),
		"inverters":     tally(queue, "inverter"),
		"installations": tally(queue, "installation"),
		"queue":         queue,
	})
}
