package models

// Status and priority values shared by the three work-order types.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// JobTracking is the trackable-job state embedded by Scheduling,
// InverterConfig and Installation.
type JobTracking struct {
	Status         string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Priority       string `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	CompletionDate string `gorm:"type:varchar(10)" json:"completionDate"`
}

// AdvanceStatus moves one step through pending -> in_progress -> resolved
// -> pending. Entering resolved stamps the completion date (if absent);
// leaving resolved clears it. today is a YYYY-MM-DD string.
func (j *JobTracking) AdvanceStatus(today string) {
	switch j.Status {
	case StatusPending:
		j.Status = StatusInProgress
	case StatusInProgress:
		j.Status = StatusResolved
	default:
		j.Status = StatusPending
	}

	if j.Status == StatusResolved {
		if j.CompletionDate == "" {
			j.CompletionDate = today
		}
	} else {
		j.CompletionDate = ""
	}
}

// AdvancePriority moves one step through low -> medium -> high -> urgent
// -> low. An empty priority counts as medium.
func (j *JobTracking) AdvancePriority() {
	switch j.Priority {
	case PriorityLow:
		j.Priority = PriorityMedium
	case PriorityMedium, "":
		j.Priority = PriorityHigh
	case PriorityHigh:
		j.Priority = PriorityUrgent
	default:
		j.Priority = PriorityLow
	}
}

// PriorityRank maps a priority to its sort rank: urgent first, low last.
// Empty or unknown values rank as medium.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityLow:
		return 3
	default:
		return 2
	}
}
