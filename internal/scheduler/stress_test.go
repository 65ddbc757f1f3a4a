package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/sandeepkv93/habitflow/internal/model"
)

func TestEngineDropsWhenConsumerLags(t *testing.T) {
	habits := make([]model.Habit, 0, 100)
	for i := 0; i < 100; i++ {
		habits = append(habits, model.Habit{
			ID:           fmt.Sprintf("habit-%d", i),
			Name:         fmt.Sprintf("Habit %d", i),
			ReminderTime: "09:00",
		})
	}
	source := &staticSource{habits: habits}

	engine, err := NewEngine(source, 10*time.Millisecond, 1)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	fixed := at(t, "2024-05-01 09:00")
	engine.now = func() time.Time { return fixed }

	engine.Start()
	time.Sleep(60 * time.Millisecond)
	engine.Stop()

	delivered := 0
	for range engine.C() {
		delivered++
	}
	if delivered == 0 {
		t.Fatal("expected at least one delivered reminder")
	}
	if engine.Dropped() == 0 {
		t.Fatal("expected dropped reminders with a lagging consumer")
	}
	if delivered+int(engine.Dropped()) != len(habits) {
		t.Fatalf("delivered %d + dropped %d != %d habits", delivered, engine.Dropped(), len(habits))
	}
}

func TestEngineStopIsIdempotent(t *testing.T) {
	engine, err := NewEngine(&staticSource{}, time.Minute, 4)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	engine.Start()
	engine.Stop()
	engine.Stop()
}
