package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/habitflow/internal/model"
)

var ErrInvalidInterval = errors.New("scheduler: invalid check interval")

// HabitSource supplies the habits to scan on each tick. The store
// satisfies it.
type HabitSource interface {
	Habits() []model.Habit
}

// Reminder is emitted when a habit's reminder time matches the current
// minute and the habit is not yet completed today. Tag is habit id plus
// day so the host notifier can collapse duplicate deliveries.
type Reminder struct {
	HabitID string
	Name    string
	Icon    string
	Day     string
	Tag     string
}

// Engine runs the periodic reminder check. Each tick compares every
// habit's reminder time against the local wall clock truncated to
// minutes. A per-day fired set guarantees at most one reminder per
// habit per calendar day even when several ticks land in the matching
// minute; the set is discarded when the day rolls over.
type Engine struct {
	mu       sync.Mutex
	source   HabitSource
	interval time.Duration
	out      chan Reminder
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	fired    map[string]bool
	firedDay string
	now      func() time.Time
	dropped  uint64
}

func NewEngine(source HabitSource, interval time.Duration, bufferSize int) (*Engine, error) {
	if source == nil {
		return nil, errors.New("scheduler: nil habit source")
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		source:   source,
		interval: interval,
		out:      make(chan Reminder, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		fired:    make(map[string]bool),
		now:      time.Now,
	}, nil
}

func (e *Engine) C() <-chan Reminder {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Dropped counts reminders discarded because the consumer lagged.
func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, rem := range e.Check(e.now()) {
				select {
				case e.out <- rem:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.stopCh:
			return
		}
	}
}

// Check scans the habit source at the given instant and returns the
// reminders due that were not already fired today. Exported so the
// tick logic is testable without real time.
func (e *Engine) Check(now time.Time) []Reminder {
	clock := model.ClockOf(now)
	day := model.DateOf(now)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.firedDay != day {
		e.firedDay = day
		e.fired = make(map[string]bool)
	}

	due := make([]Reminder, 0)
	for _, h := range e.source.Habits() {
		if h.ReminderTime == "" || h.ReminderTime != clock {
			continue
		}
		if h.CompletedOn(day) {
			continue
		}
		tag := h.ID + day
		if e.fired[tag] {
			continue
		}
		e.fired[tag] = true
		due = append(due, Reminder{
			HabitID: h.ID,
			Name:    h.Name,
			Icon:    h.Icon,
			Day:     day,
			Tag:     tag,
		})
	}
	return due
}
