package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitflow/internal/model"
)

func (m Model) handleHomeKey(msg tea.KeyMsg) Model {
	habits := m.Store.Habits()

	switch msg.String() {
	case "up", "k":
		if m.Home.Cursor > 0 {
			m.Home.Cursor--
		}
		m.Home.ConfirmDeleteID = ""
	case "down", "j":
		if m.Home.Cursor < len(habits)-1 {
			m.Home.Cursor++
		}
		m.Home.ConfirmDeleteID = ""
	case "left", "h":
		m.shiftSelectedDate(-1)
	case "right", "l":
		m.shiftSelectedDate(1)
	case " ", "enter":
		if h, ok := habitAt(habits, m.Home.Cursor); ok {
			if err := m.Store.ToggleHabitCompletion(context.Background(), h.ID, m.SelectedDate); err != nil {
				m.failStatus(err)
				return m
			}
			m.Status = StatusBar{Text: fmt.Sprintf("toggled %s on %s", h.Name, m.SelectedDate), IsError: false}
		}
	case "a":
		m.openHabitModal()
	case "d":
		if h, ok := habitAt(habits, m.Home.Cursor); ok {
			m.Home.ConfirmDeleteID = h.ID
			m.Status = StatusBar{Text: fmt.Sprintf("delete %q? press y to confirm", h.Name), IsError: false}
		}
	case "y":
		if m.Home.ConfirmDeleteID == "" {
			return m
		}
		id := m.Home.ConfirmDeleteID
		m.Home.ConfirmDeleteID = ""
		if err := m.Store.DeleteHabit(context.Background(), id); err != nil {
			m.failStatus(err)
			return m
		}
		if m.Home.Cursor > 0 {
			m.Home.Cursor--
		}
		m.Status = StatusBar{Text: "habit deleted", IsError: false}
	default:
		m.Home.ConfirmDeleteID = ""
	}
	return m
}

func habitAt(habits []model.Habit, cursor int) (model.Habit, bool) {
	if cursor < 0 || cursor >= len(habits) {
		return model.Habit{}, false
	}
	return habits[cursor], true
}

func (m *Model) failStatus(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.notify("Error", err.Error(), "error")
}
