// Package store owns the in-memory habit and task collections. All
// mutations go through the Store; every successful mutation rewrites
// the affected collection through the storage repository. The update
// loop is the only writer, but the reminder engine reads habits from
// its own goroutine, so reads and writes share an RWMutex.
package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/habitflow/internal/model"
	"github.com/sandeepkv93/habitflow/internal/storage"
)

type Store struct {
	mu     sync.RWMutex
	repo   storage.Repository
	habits []model.Habit
	tasks  []model.Task
	now    func() time.Time
}

// Open loads both collections from the repository. On a fresh profile
// the repository supplies the seed habits; those are persisted
// immediately so later runs load the same ids.
func Open(ctx context.Context, repo storage.Repository) (*Store, error) {
	habits, err := repo.LoadHabits(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := repo.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	s := &Store{repo: repo, habits: habits, tasks: tasks, now: time.Now}
	if err := repo.SaveHabits(ctx, s.habits); err != nil {
		return nil, err
	}
	return s, nil
}

// Habits returns a copy of the habit collection in insertion order.
// CompletedDates is copied too, so the snapshot is immune to later
// toggles.
func (s *Store) Habits() []model.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Habit, len(s.habits))
	for i, h := range s.habits {
		dates := make([]string, len(h.CompletedDates))
		copy(dates, h.CompletedDates)
		h.CompletedDates = dates
		out[i] = h
	}
	return out
}

// Tasks returns a copy of the task collection in insertion order.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// CreateHabit appends a new habit. An empty name is a silent no-op:
// the zero Habit and a nil error are returned and nothing changes.
// Callers validate input at the boundary; the store only guards.
func (s *Store) CreateHabit(ctx context.Context, name, icon, color, reminderTime string) (model.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Habit{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	habit := model.Habit{
		ID:             uuid.NewString(),
		Name:           name,
		Icon:           icon,
		Color:          color,
		CompletedDates: []string{},
		CreatedAt:      s.now().UTC().Format(time.RFC3339),
		ReminderTime:   reminderTime,
	}
	s.habits = append(s.habits, habit)
	if err := s.repo.SaveHabits(ctx, s.habits); err != nil {
		return habit, err
	}
	return habit, nil
}

// DeleteHabit removes the habit with the given id. Unknown ids are a
// silent no-op and skip the persistence write.
func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.habitIndex(id)
	if idx < 0 {
		return nil
	}
	s.habits = append(s.habits[:idx], s.habits[idx+1:]...)
	return s.repo.SaveHabits(ctx, s.habits)
}

// ToggleHabitCompletion flips membership of date in the habit's
// completion set: present removes, absent inserts. Two toggles with the
// same date cancel out. Unknown ids are a silent no-op.
func (s *Store) ToggleHabitCompletion(ctx context.Context, id, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.habitIndex(id)
	if idx < 0 {
		return nil
	}
	habit := &s.habits[idx]
	if habit.CompletedOn(date) {
		// Filter into a fresh slice; snapshots handed out earlier
		// may still alias the old backing array.
		kept := make([]string, 0, len(habit.CompletedDates)-1)
		for _, d := range habit.CompletedDates {
			if d != date {
				kept = append(kept, d)
			}
		}
		habit.CompletedDates = kept
	} else {
		habit.CompletedDates = append(habit.CompletedDates, date)
	}
	return s.repo.SaveHabits(ctx, s.habits)
}

// CreateTask appends a new task for the given day. Empty titles are a
// silent no-op, mirroring CreateHabit.
func (s *Store) CreateTask(ctx context.Context, title, date string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	task := model.Task{
		ID:    uuid.NewString(),
		Title: title,
		Date:  date,
	}
	s.tasks = append(s.tasks, task)
	if err := s.repo.SaveTasks(ctx, s.tasks); err != nil {
		return task, err
	}
	return task, nil
}

// ToggleTaskCompletion flips the completed flag. Unknown ids are a
// silent no-op.
func (s *Store) ToggleTaskCompletion(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.repo.SaveTasks(ctx, s.tasks)
		}
	}
	return nil
}

// DeleteTask removes the task with the given id, if present.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.repo.SaveTasks(ctx, s.tasks)
		}
	}
	return nil
}

// TasksForDate returns the tasks belonging to the given day in
// insertion order. Pure query; the returned slice is a copy.
func (s *Store) TasksForDate(date string) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, 0)
	for _, t := range s.tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) habitIndex(id string) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}
