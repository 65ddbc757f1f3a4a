package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitflow/internal/model"
)

func (m *Model) openHabitModal() {
	m.Modal = ModalState{Active: true, Field: ModalFieldName}
	m.nameInput.SetValue("")
	m.reminderInput.SetValue("")
	m.nameInput.Focus()
	m.Status = StatusBar{Text: "new habit", IsError: false}
}

func (m *Model) closeHabitModal() {
	m.Modal = ModalState{}
	m.nameInput.Blur()
	m.reminderInput.Blur()
}

func (m Model) handleModalKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeHabitModal()
		m.Status = StatusBar{Text: "habit modal closed", IsError: false}
		return m
	case "tab":
		m.Modal.Field = (m.Modal.Field + 1) % 4
		m.focusModalField()
		return m
	case "shift+tab":
		m.Modal.Field = (m.Modal.Field + 3) % 4
		m.focusModalField()
		return m
	case "enter":
		m.saveHabitFromModal()
		return m
	}

	switch m.Modal.Field {
	case ModalFieldName:
		if msg.Type == tea.KeyRunes {
			m.nameInput.SetValue(m.nameInput.Value() + string(msg.Runes))
			return m
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		_ = cmd
	case ModalFieldEmoji:
		switch msg.String() {
		case "left", "h":
			m.Modal.EmojiIndex = (m.Modal.EmojiIndex + len(ModalEmojis) - 1) % len(ModalEmojis)
		case "right", "l":
			m.Modal.EmojiIndex = (m.Modal.EmojiIndex + 1) % len(ModalEmojis)
		}
	case ModalFieldColor:
		switch msg.String() {
		case "left", "h":
			m.Modal.ColorIndex = (m.Modal.ColorIndex + len(ModalColors) - 1) % len(ModalColors)
		case "right", "l":
			m.Modal.ColorIndex = (m.Modal.ColorIndex + 1) % len(ModalColors)
		}
	case ModalFieldReminder:
		if msg.Type == tea.KeyRunes {
			m.reminderInput.SetValue(m.reminderInput.Value() + string(msg.Runes))
			return m
		}
		var cmd tea.Cmd
		m.reminderInput, cmd = m.reminderInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m *Model) focusModalField() {
	m.nameInput.Blur()
	m.reminderInput.Blur()
	switch m.Modal.Field {
	case ModalFieldName:
		m.nameInput.Focus()
	case ModalFieldReminder:
		m.reminderInput.Focus()
	}
}

func (m *Model) saveHabitFromModal() {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		m.Status = StatusBar{Text: "habit name required", IsError: true}
		return
	}
	reminder := strings.TrimSpace(m.reminderInput.Value())
	if reminder != "" && !model.ValidClock(reminder) {
		m.Status = StatusBar{Text: fmt.Sprintf("invalid reminder time: %s", reminder), IsError: true}
		return
	}

	habit, err := m.Store.CreateHabit(context.Background(), name, ModalEmojis[m.Modal.EmojiIndex], ModalColors[m.Modal.ColorIndex], reminder)
	if err != nil {
		m.failStatus(err)
		return
	}

	m.closeHabitModal()
	m.Home.Cursor = len(m.Store.Habits()) - 1
	m.Status = StatusBar{Text: fmt.Sprintf("habit created: %s %s", habit.Icon, habit.Name), IsError: false}

	if reminder != "" {
		// re-probe so a notifier installed since startup gets picked up
		m.NotifierReady = m.notifier.Available()
		if !m.NotifierReady {
			m.notifyInApp("Reminders", "desktop notifier unavailable, reminders show in-app only", "warn")
		}
	}
}
