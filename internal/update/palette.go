package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitflow/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Habit: func(a commands.HabitArgs) (commands.Result, error) {
			habit, err := m.Store.CreateHabit(context.Background(), a.Name, ModalEmojis[0], ModalColors[0], "")
			if err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewHome
			m.Home.Cursor = len(m.Store.Habits()) - 1
			return commands.Result{Message: fmt.Sprintf("habit created: %s", habit.Name)}, nil
		},
		Task: func(a commands.TaskArgs) (commands.Result, error) {
			if _, err := m.Store.CreateTask(context.Background(), a.Title, m.SelectedDate); err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewPlanner
			return commands.Result{Message: fmt.Sprintf("task added for %s: %s", m.SelectedDate, a.Title)}, nil
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			tasks := m.Store.TasksForDate(m.SelectedDate)
			if a.Index > len(tasks) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task at position %d", a.Index)}
			}
			task := tasks[a.Index-1]
			if err := m.Store.ToggleTaskCompletion(context.Background(), task.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("toggled task: %s", task.Title)}, nil
		},
		View: func(a commands.ViewArgs) (commands.Result, error) {
			switch a.Screen {
			case "home":
				m.CurrentView = ViewHome
			case "planner":
				m.CurrentView = ViewPlanner
			case "stats":
				m.CurrentView = ViewStats
			}
			return commands.Result{Message: fmt.Sprintf("switched to %s", m.CurrentView)}, nil
		},
		Insight: func() (commands.Result, error) {
			m.CurrentView = ViewStats
			var next Model
			next, teaCmd = m.startInsightRequest()
			m = next
			return commands.Result{Message: "generating insight"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notifyInApp("Command", res.Message, "info")
	}
	return m, teaCmd
}
