package controllers

import (
	"testing"

	"solarops-backend/models"
)

func TestSortQueueResolvedLast(t *testing.T) {
	queue := []QueueItem{
		{OrderNumber: "01", Status: models.StatusResolved, Priority: models.PriorityUrgent},
		{OrderNumber: "02", Status: models.StatusPending, Priority: models.PriorityLow},
	}
	SortQueue(queue)
	if queue[0].OrderNumber != "02" {
		t.Errorf("open work should come before resolved, got %q first", queue[0].OrderNumber)
	}
}

func TestSortQueuePriorityOrder(t *testing.T) {
	queue := []QueueItem{
		{OrderNumber: "01", Status: models.StatusPending, Priority: models.PriorityLow},
		{OrderNumber: "02", Status: models.StatusPending, Priority: models.PriorityUrgent},
		{OrderNumber: "03", Status: models.StatusPending, Priority: models.PriorityMedium},
		{OrderNumber: "04", Status: models.StatusPending, Priority: models.PriorityHigh},
	}
	SortQueue(queue)

	want := []string{"02", "04", "03", "01"}
	for i, orderNumber := range want {
		if queue[i].OrderNumber != orderNumber {
			t.Errorf("position %d: expected order %q, got %q", i, orderNumber, queue[i].OrderNumber)
		}
	}
}

func TestSortQueueNumericOrderWithinPriority(t *testing.T) {
	queue := []QueueItem{
		{OrderNumber: "10", Status: models.StatusPending, Priority: models.PriorityMedium},
		{OrderNumber: "2", Status: models.StatusPending, Priority: models.PriorityMedium},
		{OrderNumber: "9", Status: models.StatusPending, Priority: models.PriorityMedium},
	}
	SortQueue(queue)

	want := []string{"2", "9", "10"}
	for i, orderNumber := range want {
		if queue[i].OrderNumber != orderNumber {
			t.Errorf("position %d: expected order %q, got %q", i, orderNumber, queue[i].OrderNumber)
		}
	}
}

func TestSortQueueStableAcrossTypes(t *testing.T) {
	queue := []QueueItem{
		{Type: "scheduling", OrderNumber: "05", Status: models.StatusPending, Priority: models.PriorityMedium},
		{Type: "inverter", OrderNumber: "05", Status: models.StatusPending, Priority: models.PriorityMedium},
	}
	SortQueue(queue)

	if queue[0].Type != "scheduling" || queue[1].Type != "inverter" {
		t.Errorf("equal items should keep merge order, got %q then %q", queue[0].Type, queue[1].Type)
	}
}

func TestSortQueueUnknownPriorityRanksAsMedium(t *testing.T) {
	queue := []QueueItem{
		{OrderNumber: "01", Status: models.StatusPending, Priority: "???"},
		{OrderNumber: "02", Status: models.StatusPending, Priority: models.PriorityHigh},
		{OrderNumber: "03", Status: models.StatusPending, Priority: models.PriorityLow},
	}
	SortQueue(queue)

	want := []string{"02", "01", "03"}
	for i, orderNumber := range want {
		if queue[i].OrderNumber != orderNumber {
			t.Errorf("position %d: expected order %q, got %q", i, orderNumber, queue[i].OrderNumber)
		}
	}
}
