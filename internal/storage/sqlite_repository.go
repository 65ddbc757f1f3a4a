package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/sandeepkv93/habitflow/internal/model"
)

const (
	slotHabits = "habits"
	slotTasks  = "tasks"

	sqliteTimeLayout = time.RFC3339Nano
)

// SQLiteRepository stores each collection as one JSON payload in the
// slots table. The two slots are independent: corruption of one never
// affects the other.
type SQLiteRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteRepository(db *sql.DB, logger *zap.Logger) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLiteRepository{db: db, logger: logger}, nil
}

func OpenSQLite(path string, logger *zap.Logger) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// LoadHabits reads the habit slot. A missing slot yields the built-in
// seed habits (first run); a corrupt payload yields an empty collection
// and a warning, never an error.
func (r *SQLiteRepository) LoadHabits(ctx context.Context) ([]model.Habit, error) {
	payload, err := r.readSlot(ctx, slotHabits)
	if errors.Is(err, ErrSlotMissing) {
		return SeedHabits(time.Now()), nil
	}
	if err != nil {
		return nil, err
	}

	habits := make([]model.Habit, 0)
	if err := json.Unmarshal([]byte(payload), &habits); err != nil {
		r.logger.Warn("habit slot payload is corrupt, starting empty",
			zap.String("slot", slotHabits), zap.Error(err))
		return []model.Habit{}, nil
	}
	return habits, nil
}

func (r *SQLiteRepository) SaveHabits(ctx context.Context, habits []model.Habit) error {
	return r.writeSlot(ctx, slotHabits, habits)
}

// LoadTasks reads the task slot. Unlike habits there is no seed data:
// missing and corrupt slots both yield an empty collection.
func (r *SQLiteRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	payload, err := r.readSlot(ctx, slotTasks)
	if errors.Is(err, ErrSlotMissing) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0)
	if err := json.Unmarshal([]byte(payload), &tasks); err != nil {
		r.logger.Warn("task slot payload is corrupt, starting empty",
			zap.String("slot", slotTasks), zap.Error(err))
		return []model.Task{}, nil
	}
	return tasks, nil
}

func (r *SQLiteRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	return r.writeSlot(ctx, slotTasks, tasks)
}

func (r *SQLiteRepository) readSlot(ctx context.Context, name string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE name = ?`, name)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSlotMissing
		}
		return "", fmt.Errorf("read slot %s: %w", name, err)
	}
	return payload, nil
}

func (r *SQLiteRepository) writeSlot(ctx context.Context, name string, collection any) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", name, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		name, string(payload), time.Now().UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", name, err)
	}
	return nil
}
