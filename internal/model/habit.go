package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidDate         = errors.New("model: invalid calendar date")
	ErrInvalidReminderTime = errors.New("model: invalid reminder time")
	ErrInvalidColor        = errors.New("model: invalid color token")
)

// DateLayout is the calendar-day form used everywhere: zero-padded,
// lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// ClockLayout is the 24-hour minute-resolution reminder form.
const ClockLayout = "15:04"

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Habit is a recurring daily activity. CompletedDates holds the set of
// local calendar days the habit was marked done; a day appears at most
// once. The struct is serialized as-is into the habits slot.
type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Icon           string   `json:"icon"`
	Color          string   `json:"color"`
	CompletedDates []string `json:"completedDates"`
	CreatedAt      string   `json:"createdAt"`
	ReminderTime   string   `json:"reminderTime,omitempty"`
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("model: habit id is required")
	}
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("model: habit name is required")
	}
	if h.Color != "" && !colorPattern.MatchString(h.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, h.Color)
	}
	if h.ReminderTime != "" && !ValidClock(h.ReminderTime) {
		return fmt.Errorf("%w: %q", ErrInvalidReminderTime, h.ReminderTime)
	}
	for _, d := range h.CompletedDates {
		if !ValidDate(d) {
			return fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
	}
	return nil
}

// CompletedOn reports whether the habit was marked done on the given day.
func (h Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// LastCompleted returns the most recent completion day, or "" when the
// habit was never completed. Lexicographic max is chronological max for
// the zero-padded date form.
func (h Habit) LastCompleted() string {
	last := ""
	for _, d := range h.CompletedDates {
		if d > last {
			last = d
		}
	}
	return last
}

// ValidClock reports whether s is a well-formed zero-padded HH:MM time.
func ValidClock(s string) bool {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return false
	}
	return t.Format(ClockLayout) == s
}

// ValidDate reports whether s is a well-formed zero-padded calendar day.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}

// DateOf formats an instant as its local calendar day.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ClockOf formats an instant as its local wall clock truncated to minutes.
func ClockOf(t time.Time) string {
	return t.Format(ClockLayout)
}
