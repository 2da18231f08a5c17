package roster

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// SHIFT TEMPLATE - "HH:MM-HH:MM" work interval
// =============================================================================

// DefaultTemplate is assigned when an employee has no template of their own.
const DefaultTemplate = "09:00-17:00"

// Shifts at or above this length include one unpaid break hour.
const (
	breakThresholdHours = 6.0
	breakHours          = 1.0
)

// Shift is a parsed start/end time pair within a single day.
type Shift struct {
	Start time.Duration // offset from midnight
	End   time.Duration
}

// ParseShift parses an "HH:MM-HH:MM" template string.
func ParseShift(s string) (Shift, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Shift{}, fmt.Errorf("invalid shift template %q", s)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return Shift{}, fmt.Errorf("invalid shift template %q: %w", s, err)
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return Shift{}, fmt.Errorf("invalid shift template %q: %w", s, err)
	}
	return Shift{Start: start, End: end}, nil
}

func parseClock(s string) (time.Duration, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, err
	}
	if h < 0 || h > 24 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

// Hours returns the raw duration in hours, floored at zero.
func (s Shift) Hours() float64 {
	h := (s.End - s.Start).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// NetHours returns worked hours after the statutory break deduction:
// one hour is subtracted for shifts of six hours or longer, floored at zero.
func (s Shift) NetHours() float64 {
	h := s.Hours()
	if h >= breakThresholdHours {
		h -= breakHours
	}
	if h < 0 {
		return 0
	}
	return h
}

// TemplateNetHours parses a template string and returns its net hours.
// Malformed templates contribute zero hours rather than failing the
// generation; a zero-hour shift never pushes a cap over its limit.
func TemplateNetHours(template string) float64 {
	shift, err := ParseShift(template)
	if err != nil {
		return 0
	}
	return shift.NetHours()
}
