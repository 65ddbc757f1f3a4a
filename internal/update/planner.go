package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitflow/internal/model"
)

func (m Model) handlePlannerKey(msg tea.KeyMsg) Model {
	if m.Planner.CaptureMode {
		switch msg.String() {
		case "esc":
			m.Planner.CaptureMode = false
			m.captureInput.Blur()
			m.Status = StatusBar{Text: "planner list mode", IsError: false}
			return m
		case "enter":
			m.addPlannerTask(m.captureInput.Value())
			m.captureInput.SetValue("")
			m.Planner.Input = ""
			return m
		}
		if msg.Type == tea.KeyRunes {
			m.captureInput.SetValue(m.captureInput.Value() + string(msg.Runes))
			m.Planner.Input = m.captureInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.captureInput, cmd = m.captureInput.Update(msg)
		_ = cmd
		m.Planner.Input = m.captureInput.Value()
		return m
	}

	tasks := m.Store.TasksForDate(m.SelectedDate)

	switch msg.String() {
	case "i", "enter":
		m.Planner.CaptureMode = true
		m.captureInput.Focus()
		m.Status = StatusBar{Text: "planner capture mode", IsError: false}
	case "up", "k":
		if m.Planner.Cursor > 0 {
			m.Planner.Cursor--
		}
	case "down", "j":
		if m.Planner.Cursor < len(tasks)-1 {
			m.Planner.Cursor++
		}
	case "left", "h":
		m.shiftSelectedDate(-1)
	case "right", "l":
		m.shiftSelectedDate(1)
	case " ":
		if t, ok := taskAt(tasks, m.Planner.Cursor); ok {
			if err := m.Store.ToggleTaskCompletion(context.Background(), t.ID); err != nil {
				m.failStatus(err)
				return m
			}
		}
	case "d":
		if t, ok := taskAt(tasks, m.Planner.Cursor); ok {
			if err := m.Store.DeleteTask(context.Background(), t.ID); err != nil {
				m.failStatus(err)
				return m
			}
			if m.Planner.Cursor > 0 {
				m.Planner.Cursor--
			}
			m.Status = StatusBar{Text: "task deleted", IsError: false}
		}
	}
	return m
}

func (m *Model) addPlannerTask(title string) {
	task, err := m.Store.CreateTask(context.Background(), title, m.SelectedDate)
	if err != nil {
		m.failStatus(err)
		return
	}
	if task.ID == "" {
		return
	}
	m.Planner.Cursor = len(m.Store.TasksForDate(m.SelectedDate)) - 1
	m.Status = StatusBar{Text: fmt.Sprintf("task added for %s", m.SelectedDate), IsError: false}
}

func taskAt(tasks []model.Task, cursor int) (model.Task, bool) {
	if cursor < 0 || cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[cursor], true
}
