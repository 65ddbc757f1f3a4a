package update

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitflow/internal/insight"
	"github.com/sandeepkv93/habitflow/internal/model"
	"github.com/sandeepkv93/habitflow/internal/scheduler"
	"github.com/sandeepkv93/habitflow/internal/storage"
	"github.com/sandeepkv93/habitflow/internal/store"
)

func setupModel(t *testing.T) Model {
	t.Helper()
	repo, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "habitflow.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	st, err := store.Open(context.Background(), repo)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return NewModel(st)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestReminder(habitID, name, icon, day string) scheduler.Reminder {
	return scheduler.Reminder{
		HabitID: habitID,
		Name:    name,
		Icon:    icon,
		Day:     day,
		Tag:     habitID + day,
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := setupModel(t)
	if m.CurrentView != ViewHome {
		t.Fatalf("expected default view %q, got %q", ViewHome, m.CurrentView)
	}
	if !model.ValidDate(m.SelectedDate) {
		t.Fatalf("expected selected date set, got %q", m.SelectedDate)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := setupModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	if next.CurrentView != ViewPlanner {
		t.Fatalf("expected planner view, got %q", next.CurrentView)
	}
	if !next.Planner.CaptureMode {
		t.Fatal("expected planner capture mode on entry")
	}

	updated, _ = next.Update(keyRunes("3"))
	next = updated.(Model)
	if next.CurrentView != ViewStats {
		t.Fatalf("expected stats view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := setupModel(t)
	updated, _ := m.Update(SwitchViewMsg{View: ViewStats})
	next := updated.(Model)
	if next.CurrentView != ViewStats {
		t.Fatalf("expected stats view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewStats {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := setupModel(t)
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := setupModel(t)
	updated, cmd := m.Update(keyRunes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestHomeToggleHabit(t *testing.T) {
	m := setupModel(t)
	habits := m.Store.Habits()
	if len(habits) == 0 {
		t.Fatal("expected seed habits")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next := updated.(Model)
	if !next.Store.Habits()[0].CompletedOn(next.SelectedDate) {
		t.Fatal("expected first habit toggled on for selected date")
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace})
	next = updated.(Model)
	if next.Store.Habits()[0].CompletedOn(next.SelectedDate) {
		t.Fatal("expected toggle to be an involution")
	}
}

func TestHomeDateShiftStaysInWindow(t *testing.T) {
	m := setupModel(t)
	start := m.SelectedDate
	for i := 0; i < 5; i++ {
		updated, _ := m.Update(keyRunes("l"))
		m = updated.(Model)
	}
	days := m.windowDays()
	if m.SelectedDate != days[len(days)-1].Date {
		t.Fatalf("expected selection clamped to window end, got %q", m.SelectedDate)
	}
	for i := 0; i < 40; i++ {
		updated, _ := m.Update(keyRunes("h"))
		m = updated.(Model)
	}
	if m.SelectedDate != days[0].Date {
		t.Fatalf("expected selection clamped to window start, got %q", m.SelectedDate)
	}
	if start == days[0].Date {
		t.Fatalf("window start should precede today: %q", start)
	}
}

func TestHomeDeleteNeedsConfirmation(t *testing.T) {
	m := setupModel(t)
	before := len(m.Store.Habits())

	updated, _ := m.Update(keyRunes("d"))
	next := updated.(Model)
	if next.Home.ConfirmDeleteID == "" {
		t.Fatal("expected pending delete confirmation")
	}
	if len(next.Store.Habits()) != before {
		t.Fatal("habit deleted before confirmation")
	}

	updated, _ = next.Update(keyRunes("j"))
	next = updated.(Model)
	if next.Home.ConfirmDeleteID != "" {
		t.Fatal("expected moving the cursor to cancel the pending delete")
	}

	updated, _ = next.Update(keyRunes("d"))
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("y"))
	next = updated.(Model)
	if len(next.Store.Habits()) != before-1 {
		t.Fatalf("expected %d habits after delete, got %d", before-1, len(next.Store.Habits()))
	}
}

func TestPlannerCaptureAddsTask(t *testing.T) {
	m := setupModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)

	updated, _ = next.Update(keyRunes("write tests"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	tasks := next.Store.TasksForDate(next.SelectedDate)
	if len(tasks) != 1 || tasks[0].Title != "write tests" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestPlannerToggleAndDelete(t *testing.T) {
	m := setupModel(t)
	if _, err := m.Store.CreateTask(context.Background(), "water plants", m.SelectedDate); err != nil {
		t.Fatalf("create task: %v", err)
	}
	m.CurrentView = ViewPlanner
	m.Planner.CaptureMode = false

	updated, _ := m.Update(keyRunes(" "))
	next := updated.(Model)
	if !next.Store.TasksForDate(next.SelectedDate)[0].Completed {
		t.Fatal("expected task toggled complete")
	}

	updated, _ = next.Update(keyRunes("d"))
	next = updated.(Model)
	if len(next.Store.TasksForDate(next.SelectedDate)) != 0 {
		t.Fatal("expected task deleted")
	}
}

func TestModalCreatesHabit(t *testing.T) {
	m := setupModel(t)
	before := len(m.Store.Habits())

	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	if !next.Modal.Active {
		t.Fatal("expected modal active after a")
	}

	updated, _ = next.Update(keyRunes("Meditation"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Modal.Active {
		t.Fatal("expected modal closed after save")
	}
	habits := next.Store.Habits()
	if len(habits) != before+1 {
		t.Fatalf("expected %d habits, got %d", before+1, len(habits))
	}
	created := habits[len(habits)-1]
	if created.Name != "Meditation" || created.Icon != ModalEmojis[0] || created.Color != ModalColors[0] {
		t.Fatalf("unexpected created habit: %+v", created)
	}
}

func TestModalRejectsEmptyName(t *testing.T) {
	m := setupModel(t)
	before := len(m.Store.Habits())

	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Modal.Active {
		t.Fatal("expected modal to stay open without a name")
	}
	if len(next.Store.Habits()) != before {
		t.Fatal("habit created without a name")
	}
}

func TestPaletteAddsTask(t *testing.T) {
	m := setupModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(keyRunes("task buy milk"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("expected palette closed after execution")
	}
	tasks := next.Store.TasksForDate(next.SelectedDate)
	if len(tasks) != 1 || tasks[0].Title != "buy milk" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if next.CurrentView != ViewPlanner {
		t.Fatalf("expected planner view after task command, got %q", next.CurrentView)
	}
}

func TestPaletteUnknownCommandSetsErrorStatus(t *testing.T) {
	m := setupModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestInsightResultStalenessGuard(t *testing.T) {
	m := setupModel(t)
	m.Stats.seq = 2
	m.Stats.Loading = true

	updated, _ := m.Update(InsightResultMsg{Seq: 1, Text: "stale"})
	next := updated.(Model)
	if !next.Stats.Loading || next.Stats.Insight == "stale" {
		t.Fatalf("stale response should be discarded: %+v", next.Stats)
	}

	updated, _ = next.Update(InsightResultMsg{Seq: 2, Text: insight.FallbackEmpty})
	next = updated.(Model)
	if next.Stats.Loading || next.Stats.Insight != insight.FallbackEmpty {
		t.Fatalf("matching response should apply: %+v", next.Stats)
	}
}

func TestStatsKeyStartsInsightRequest(t *testing.T) {
	m := setupModel(t)
	m.CurrentView = ViewStats

	updated, cmd := m.Update(keyRunes("g"))
	next := updated.(Model)
	if !next.Stats.Loading {
		t.Fatal("expected loading state")
	}
	if cmd == nil {
		t.Fatal("expected insight command")
	}

	updated, cmd = next.Update(keyRunes("g"))
	next = updated.(Model)
	if cmd != nil {
		t.Fatal("expected no second request while loading")
	}
	if next.Stats.seq != 1 {
		t.Fatalf("expected single request sequence, got %d", next.Stats.seq)
	}
}

func TestReminderDedupByTag(t *testing.T) {
	m := setupModel(t)
	r := newTestReminder("h1", "Water", "💧", "2024-05-01")

	updated, _ := m.Update(ReminderDueMsg{Reminder: r})
	next := updated.(Model)
	if len(next.Notifications) != 1 {
		t.Fatalf("expected one notification, got %d", len(next.Notifications))
	}

	updated, _ = next.Update(ReminderDueMsg{Reminder: r})
	next = updated.(Model)
	if len(next.Notifications) != 1 {
		t.Fatalf("expected duplicate reminder collapsed, got %d notifications", len(next.Notifications))
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := setupModel(t)
	m.Status = StatusBar{Text: "all good"}
	out := m.View()
	if !strings.Contains(out, "view: Home") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "day: "+m.SelectedDate) {
		t.Fatalf("expected selected day in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
}
