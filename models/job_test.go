package models

import "testing"

func TestAdvanceStatusCycle(t *testing.T) {
	job := JobTracking{Status: StatusPending}

	job.AdvanceStatus("2024-06-01")
	if job.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %q", job.Status)
	}
	if job.CompletionDate != "" {
		t.Errorf("completion date should be empty while in progress, got %q", job.CompletionDate)
	}

	job.AdvanceStatus("2024-06-02")
	if job.Status != StatusResolved {
		t.Fatalf("expected resolved, got %q", job.Status)
	}
	if job.CompletionDate != "2024-06-02" {
		t.Errorf("expected completion date 2024-06-02, got %q", job.CompletionDate)
	}

	job.AdvanceStatus("2024-06-03")
	if job.Status != StatusPending {
		t.Fatalf("expected pending after resolved, got %q", job.Status)
	}
	if job.CompletionDate != "" {
		t.Errorf("completion date should clear when reopened, got %q", job.CompletionDate)
	}
}

func TestAdvanceStatusUnknownGoesPending(t *testing.T) {
	job := JobTracking{Status: "weird", CompletionDate: "2024-01-01"}
	job.AdvanceStatus("2024-06-01")
	if job.Status != StatusPending {
		t.Errorf("unknown status should reset to pending, got %q", job.Status)
	}
	if job.CompletionDate != "" {
		t.Errorf("completion date should clear outside resolved, got %q", job.CompletionDate)
	}
}

func TestAdvancePriorityCycle(t *testing.T) {
	steps := []struct {
		from string
		want string
	}{
		{PriorityLow, PriorityMedium},
		{PriorityMedium, PriorityHigh},
		{"", PriorityHigh},
		{PriorityHigh, PriorityUrgent},
		{PriorityUrgent, PriorityLow},
		{"nonsense", PriorityLow},
	}
	for _, step := range steps {
		job := JobTracking{Priority: step.from}
		job.AdvancePriority()
		if job.Priority != step.want {
			t.Errorf("AdvancePriority from %q: expected %q, got %q", step.from, step.want, job.Priority)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	cases := []struct {
		priority string
		want     int
	}{
		{PriorityUrgent, 0},
		{PriorityHigh, 1},
		{PriorityMedium, 2},
		{"", 2},
		{"unknown", 2},
		{PriorityLow, 3},
	}
	for _, tc := range cases {
		if got := PriorityRank(tc.priority); got != tc.want {
			t.Errorf("PriorityRank(%q) = %d, want %d", tc.priority, got, tc.want)
		}
	}
}
