package domain

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusAssigned, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},
		{StatusAssigned, StatusCompleted, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusInProgress, StatusAssigned, false},
		{StatusCompleted, StatusCompleted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestTransitionSources(t *testing.T) {
	src := TransitionSources(StatusInProgress)
	if len(src) != 1 || src[0] != StatusAssigned {
		t.Fatalf("expected [assigned], got %v", src)
	}

	src = TransitionSources(StatusCompleted)
	if len(src) != 1 || src[0] != StatusInProgress {
		t.Fatalf("expected [in_progress], got %v", src)
	}

	if src = TransitionSources(StatusPending); len(src) != 0 {
		t.Fatalf("pending must be unreachable, got %v", src)
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"in_progress", "completed"} {
		if _, ok := ParseBookingStatus(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	for _, invalid := range []string{"pending", "assigned", "cancelled", "done", "IN_PROGRESS", ""} {
		if _, ok := ParseBookingStatus(invalid); ok {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}
