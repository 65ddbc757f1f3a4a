package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/habitflow/internal/model"
)

// SeedHabits returns the starter habits a fresh profile begins with.
// They are ordinary habits in every way: the user can toggle or delete
// them like any other.
func SeedHabits(now time.Time) []model.Habit {
	createdAt := now.UTC().Format(time.RFC3339)
	return []model.Habit{
		{
			ID:             uuid.NewString(),
			Name:           "شرب الماء",
			Icon:           "💧",
			Color:          "#3EA5FF",
			CompletedDates: []string{},
			CreatedAt:      createdAt,
			ReminderTime:   "09:00",
		},
		{
			ID:             uuid.NewString(),
			Name:           "قراءة",
			Icon:           "📚",
			Color:          "#FFC107",
			CompletedDates: []string{},
			CreatedAt:      createdAt,
		},
	}
}
