package domain

import "testing"

func TestActionLabel(t *testing.T) {
	if got := ActionLabel(CategoryArchives); got != "Moved to archives" {
		t.Errorf("expected \"Moved to archives\", got %q", got)
	}
}

func TestActivitySummary(t *testing.T) {
	empty := ActivitySummary{SessionID: "s"}
	if !empty.IsEmpty() {
		t.Error("expected empty summary")
	}

	s := ActivitySummary{
		SessionID: "s",
		Counts: map[string]int{
			"Moved to images":    2,
			"Moved to archives":  1,
			"Moved to documents": 3,
		},
	}
	if s.IsEmpty() {
		t.Error("expected non-empty summary")
	}
	if s.Total() != 6 {
		t.Errorf("expected total 6, got %d", s.Total())
	}

	sorted := s.SortedCounts()
	if sorted[0].Action != "Moved to archives" || sorted[2].Action != "Moved to images" {
		t.Errorf("unexpected order: %+v", sorted)
	}
}
