package model

import (
	"testing"
	"time"
)

func TestWindowShape(t *testing.T) {
	today := time.Date(2024, 5, 15, 13, 30, 0, 0, time.Local)
	days := Window(today)
	if len(days) != WindowSize {
		t.Fatalf("expected %d entries, got %d", WindowSize, len(days))
	}
	if days[0].Date != "2024-05-01" {
		t.Fatalf("expected window to start 14 days back, got %q", days[0].Date)
	}
	if days[len(days)-1].Date != "2024-05-17" {
		t.Fatalf("expected window to end 2 days forward, got %q", days[len(days)-1].Date)
	}
	for i := 1; i < len(days); i++ {
		if days[i].Date <= days[i-1].Date {
			t.Fatalf("expected ascending dates, got %q after %q", days[i].Date, days[i-1].Date)
		}
	}
}

func TestWindowMarksExactlyToday(t *testing.T) {
	today := time.Date(2024, 5, 15, 0, 0, 1, 0, time.Local)
	days := Window(today)
	marked := 0
	for _, d := range days {
		if d.IsToday {
			marked++
			if d.Date != DateOf(today) {
				t.Fatalf("IsToday entry has date %q, want %q", d.Date, DateOf(today))
			}
		}
	}
	if marked != 1 {
		t.Fatalf("expected exactly one IsToday entry, got %d", marked)
	}
}

func TestWindowCrossesMonthBoundary(t *testing.T) {
	today := time.Date(2024, 3, 2, 12, 0, 0, 0, time.Local)
	days := Window(today)
	if days[0].Date != "2024-02-17" {
		t.Fatalf("expected 2024-02-17 at window start, got %q", days[0].Date)
	}
	if days[0].DayNumber != 17 {
		t.Fatalf("expected day number 17, got %d", days[0].DayNumber)
	}
}
