package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/habitflow/internal/model"
)

// ErrSlotMissing is returned by slot reads when the slot was never
// written. Callers use it to distinguish first run from empty data.
var ErrSlotMissing = errors.New("storage: slot missing")

// Repository persists the two whole-collection slots. Every save
// rewrites the full collection; loads of corrupt payloads recover to an
// empty collection rather than failing.
type Repository interface {
	LoadHabits(ctx context.Context) ([]model.Habit, error)
	SaveHabits(ctx context.Context, habits []model.Habit) error

	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
}
