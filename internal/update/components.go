package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/habitflow/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.habitList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.habitList.Title = "Habits"
	m.habitList.SetShowHelp(false)
	m.habitList.SetFilteringEnabled(false)

	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	m.nameInput = textinput.New()
	m.nameInput.Prompt = "name> "
	m.nameInput.CharLimit = 128
	m.nameInput.Width = 32

	m.reminderInput = textinput.New()
	m.reminderInput.Prompt = "reminder> "
	m.reminderInput.Placeholder = "HH:MM"
	m.reminderInput.CharLimit = 5
	m.reminderInput.Width = 8

	m.captureInput = textinput.New()
	m.captureInput.Prompt = "task> "
	m.captureInput.CharLimit = 256
	m.captureInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.insightSpinner = spinner.New()
	m.insightSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.insightViewport = viewport.New(54, 8)
}

func (m *Model) syncBubbleData() {
	if m.Store == nil {
		return
	}

	habits := m.Store.Habits()
	habitItems := make([]list.Item, 0, len(habits))
	for _, h := range habits {
		desc := fmt.Sprintf("%d completions", len(h.CompletedDates))
		if h.ReminderTime != "" {
			desc += " | ⏰ " + h.ReminderTime
		}
		habitItems = append(habitItems, listItem{title: h.Icon + " " + h.Name, description: desc})
	}
	m.habitList.SetItems(habitItems)
	if len(habitItems) > 0 && m.Home.Cursor < len(habitItems) {
		m.habitList.Select(m.Home.Cursor)
	}

	tasks := m.Store.TasksForDate(m.SelectedDate)
	taskItems := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		desc := "open"
		if t.Completed {
			desc = "done"
		}
		taskItems = append(taskItems, listItem{title: t.Title, description: desc})
	}
	m.taskList.SetItems(taskItems)
	if len(taskItems) > 0 && m.Planner.Cursor < len(taskItems) {
		m.taskList.Select(m.Planner.Cursor)
	}

	m.captureInput.SetValue(m.Planner.Input)
	m.commandInput.SetValue(m.Palette.Input)
	if m.Planner.CaptureMode && m.CurrentView == ViewPlanner {
		m.captureInput.Focus()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	md := m.Stats.Insight
	if strings.TrimSpace(md) == "" {
		md = "_No insight yet. Press g to generate._"
	}
	m.insightViewport.SetContent(views.RenderMarkdown(md))
}
