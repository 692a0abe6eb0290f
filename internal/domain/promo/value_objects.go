package promo

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Scope string

const (
	ScopeRoom Scope = "room"
	ScopeFnb  Scope = "fnb"
	ScopeAll  Scope = "all"
)

func (s Scope) String() string {
	return string(s)
}

func (s Scope) IsValid() bool {
	switch s {
	case ScopeRoom, ScopeFnb, ScopeAll:
		return true
	default:
		return false
	}
}

// CoversRooms reports whether the promo scope includes room bookings.
func (s Scope) CoversRooms() bool {
	return s == ScopeRoom || s == ScopeAll
}

// TimeWindow is an hour-granular active window within a day, half-open
// [StartHour, EndHour).
type TimeWindow struct {
	StartHour int
	EndHour   int
}

func NewTimeWindow(start, end string) (TimeWindow, error) {
	startHour, err := parseHour(start)
	if err != nil {
		return TimeWindow{}, err
	}
	endHour, err := parseHour(end)
	if err != nil {
		return TimeWindow{}, err
	}
	if endHour <= startHour {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{StartHour: startHour, EndHour: endHour}, nil
}

func (w TimeWindow) ContainsHour(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

// parseHour extracts the hour component of an "HH:MM" string. Minutes are
// ignored; the window is hour-granular.
func parseHour(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidTimeWindow
	}
	return hour, nil
}

// Requirement is the promo eligibility rule attached as JSON. The legacy
// data stores it either as a JSON object or as a double-encoded JSON
// string, so unmarshalling handles both.
type Requirement struct {
	MinDurationHours *int `json:"min_durasi_jam,omitempty"`
}

func ParseRequirement(raw []byte) (Requirement, error) {
	var req Requirement
	if len(raw) == 0 {
		return req, nil
	}

	// Double-encoded form: a JSON string containing the object.
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return req, nil
		}
		raw = []byte(asString)
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return Requirement{}, err
	}
	return req, nil
}
