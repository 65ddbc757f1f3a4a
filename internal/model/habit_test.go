package model

import (
	"errors"
	"testing"
	"time"
)

func TestHabitValidateSuccess(t *testing.T) {
	habit := Habit{
		ID:             "habit-1",
		Name:           "Water",
		Icon:           "💧",
		Color:          "#3EA5FF",
		CompletedDates: []string{"2024-05-01", "2024-05-02"},
		CreatedAt:      "2024-05-01T09:00:00Z",
		ReminderTime:   "09:00",
	}
	if err := habit.Validate(); err != nil {
		t.Fatalf("expected valid habit, got error: %v", err)
	}
}

func TestHabitValidateInvalidReminderTime(t *testing.T) {
	habit := Habit{ID: "habit-1", Name: "Water", ReminderTime: "25:99"}
	err := habit.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidReminderTime) {
		t.Fatalf("expected ErrInvalidReminderTime, got: %v", err)
	}
}

func TestHabitValidateInvalidColor(t *testing.T) {
	habit := Habit{ID: "habit-1", Name: "Water", Color: "blue"}
	err := habit.Validate()
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got: %v", err)
	}
}

func TestHabitValidateInvalidCompletedDate(t *testing.T) {
	habit := Habit{ID: "habit-1", Name: "Water", CompletedDates: []string{"2024-5-1"}}
	err := habit.Validate()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got: %v", err)
	}
}

func TestHabitCompletedOn(t *testing.T) {
	habit := Habit{ID: "habit-1", Name: "Water", CompletedDates: []string{"2024-05-01"}}
	if !habit.CompletedOn("2024-05-01") {
		t.Fatal("expected completed on 2024-05-01")
	}
	if habit.CompletedOn("2024-05-02") {
		t.Fatal("did not expect completed on 2024-05-02")
	}
}

func TestHabitLastCompleted(t *testing.T) {
	habit := Habit{ID: "habit-1", Name: "Water"}
	if got := habit.LastCompleted(); got != "" {
		t.Fatalf("expected empty last completed, got %q", got)
	}
	habit.CompletedDates = []string{"2024-05-03", "2024-04-30", "2024-05-01"}
	if got := habit.LastCompleted(); got != "2024-05-03" {
		t.Fatalf("expected 2024-05-03, got %q", got)
	}
}

func TestTaskValidateDateFormat(t *testing.T) {
	task := Task{ID: "task-1", Title: "Buy milk", Date: "2024-05-01"}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}

	task.Date = "05/01/2024"
	if err := task.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got: %v", err)
	}
}

func TestValidDateRejectsUnpaddedForms(t *testing.T) {
	if !ValidDate("2024-05-01") {
		t.Fatal("expected 2024-05-01 valid")
	}
	for _, bad := range []string{"2024-5-01", "2024-05-1", "01-05-2024", "not-a-date", ""} {
		if ValidDate(bad) {
			t.Fatalf("expected %q invalid", bad)
		}
	}
}

func TestDateAndClockFormatting(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 5, 42, 0, time.Local)
	if got := DateOf(at); got != "2024-05-01" {
		t.Fatalf("unexpected date: %q", got)
	}
	if got := ClockOf(at); got != "09:05" {
		t.Fatalf("unexpected clock: %q", got)
	}
}
