package roster_test

import (
	"testing"

	"github.com/kairo/roster-engine/roster"
)

func TestParseShift(t *testing.T) {
	shift, err := roster.ParseShift("09:00-17:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shift.Hours() != 8 {
		t.Errorf("expected 8 raw hours, got %v", shift.Hours())
	}

	for _, bad := range []string{"", "09:00", "9am-5pm", "25:00-26:00"} {
		if _, err := roster.ParseShift(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestNetHours_BreakDeduction(t *testing.T) {
	cases := []struct {
		template string
		want     float64
	}{
		{"09:00-17:00", 7},    // 8h raw, 1h break
		{"09:00-15:00", 5},    // exactly 6h raw, break applies
		{"09:00-14:00", 5},    // 5h raw, no break
		{"09:00-09:00", 0},    // zero-length
		{"10:00-10:30", 0.5},  // short shift
		{"08:30-17:30", 8},    // 9h raw, 1h break
	}

	for _, c := range cases {
		shift, err := roster.ParseShift(c.template)
		if err != nil {
			t.Fatalf("%s: %v", c.template, err)
		}
		if got := shift.NetHours(); got != c.want {
			t.Errorf("%s: expected %v net hours, got %v", c.template, c.want, got)
		}
	}
}

func TestTemplateNetHours_MalformedIsZero(t *testing.T) {
	// Malformed templates degrade to zero hours rather than erroring;
	// a zero-hour shift can never breach a cap.
	if got := roster.TemplateNetHours("not a shift"); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestAssignment_NetHours(t *testing.T) {
	if roster.Rest.NetHours() != 0 {
		t.Error("rest should contribute zero hours")
	}
	if roster.Assignment("").NetHours() != 0 {
		t.Error("empty assignment should contribute zero hours")
	}
	if got := roster.Assignment("09:00-17:00").NetHours(); got != 7 {
		t.Errorf("expected 7, got %v", got)
	}
}
