package application

import "testing"

func TestKnownStatus(t *testing.T) {
	for _, s := range Statuses {
		if !KnownStatus(s) {
			t.Errorf("expected %q to be known", s)
		}
	}
	for _, s := range []Status{"", "archived", "Submitted", "SUBMITTED"} {
		if KnownStatus(s) {
			t.Errorf("expected %q to be unknown", s)
		}
	}
}

func TestCanTransitionAllowsEveryKnownPair(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			if !CanTransition(from, to) {
				t.Errorf("expected %q -> %q to be allowed", from, to)
			}
		}
	}
}

func TestCanTransitionRejectsUnknownStatuses(t *testing.T) {
	if CanTransition(Status("archived"), StatusReviewed) {
		t.Error("expected unknown source status to be rejected")
	}
	if CanTransition(StatusSubmitted, Status("archived")) {
		t.Error("expected unknown target status to be rejected")
	}
}

func TestEveryStatusHasLabel(t *testing.T) {
	for _, s := range Statuses {
		if Labels[s] == "" {
			t.Errorf("expected a label for %q", s)
		}
	}
}
