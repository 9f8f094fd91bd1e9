package slot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is the layout the scheduler API uses for slot timestamps and
// for the startTimestamp/endTimestamp query parameters.
const TimestampLayout = "2006-01-02T15:04"

// Location is an enrollment center known to the scheduler API.
type Location struct {
	Name string
	ID   int
}

// Slot is one element of the scheduler API slots response.
type Slot struct {
	Active    int    `json:"active"`
	Total     int    `json:"total"`
	Pending   int    `json:"pending"`
	Conflicts int    `json:"conflicts"`
	Duration  int    `json:"duration"`
	Timestamp string `json:"timestamp"`
	Remote    bool   `json:"remote"`
}

// ErrMissingField is returned when a slot record lacks a field the checker
// depends on.
var ErrMissingField = errors.New("slot record missing required field")

// UnmarshalJSON decodes a slot, rejecting records without active or timestamp
// so a schema change is not mistaken for a slot with no availability.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var required struct {
		Active    *int    `json:"active"`
		Timestamp *string `json:"timestamp"`
	}

	if err := json.Unmarshal(data, &required); err != nil {
		return err
	}

	if required.Active == nil {
		return fmt.Errorf("%w: active", ErrMissingField)
	}

	if required.Timestamp == nil {
		return fmt.Errorf("%w: timestamp", ErrMissingField)
	}

	type record Slot

	return json.Unmarshal(data, (*record)(s))
}

// Open reports whether the slot has at least one bookable appointment.
func (s Slot) Open() bool {
	return s.Active > 0
}

func (s Slot) Time() (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s.Timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing slot timestamp %q: %w", s.Timestamp, err)
	}

	return t, nil
}

// FirstOpen returns the first open slot in response order.
func FirstOpen(slots []Slot) (Slot, bool) {
	for _, s := range slots {
		if s.Open() {
			return s, true
		}
	}

	return Slot{}, false
}
