package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitflow/internal/model"
	"github.com/sandeepkv93/habitflow/internal/scheduler"
	"github.com/sandeepkv93/habitflow/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Scheduler != nil {
		return waitForReminderCmd(m.Scheduler.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()

		if m.Modal.Active {
			return m.handleModalKey(typed), nil
		}

		if m.Palette.Active {
			if keyStr == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		if m.CurrentView == ViewPlanner && m.Planner.CaptureMode && keyStr != "ctrl+c" &&
			keyStr != m.Keys.Home && keyStr != m.Keys.Planner && keyStr != m.Keys.Stats &&
			keyStr != m.Keys.Help && keyStr != "/" {
			return m.handlePlannerKey(typed), nil
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Home:
			m.CurrentView = ViewHome
			return m, nil
		case m.Keys.Planner:
			m.CurrentView = ViewPlanner
			m.Planner.CaptureMode = true
			m.captureInput.Focus()
			return m, nil
		case m.Keys.Stats:
			m.CurrentView = ViewStats
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewHome:
			return m.handleHomeKey(typed), nil
		case ViewPlanner:
			return m.handlePlannerKey(typed), nil
		case ViewStats:
			return m.handleStatsKey(typed)
		}
	case spinner.TickMsg:
		if m.Stats.Loading {
			var cmd tea.Cmd
			m.insightSpinner, cmd = m.insightSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewPlanner {
				m.Planner.CaptureMode = true
				m.captureInput.Focus()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case ReminderDueMsg:
		m.applyReminder(typed.Reminder)
		if m.Scheduler != nil {
			return m, waitForReminderCmd(m.Scheduler.C())
		}
		return m, nil
	case InsightResultMsg:
		if typed.Seq != m.Stats.seq {
			return m, nil
		}
		m.Stats.Loading = false
		m.Stats.Insight = typed.Text
		m.Status = StatusBar{Text: "insight updated", IsError: false}
		return m, nil
	}

	return m, nil
}

// applyReminder surfaces a due reminder. The tag keeps a habit from
// notifying twice on the same day even if the engine re-emits.
func (m *Model) applyReminder(r scheduler.Reminder) {
	if m.firedTags[r.Tag] {
		return
	}
	m.firedTags[r.Tag] = true
	m.Status = StatusBar{Text: fmt.Sprintf("reminder: %s %s", r.Icon, r.Name), IsError: false}
	m.notify(fmt.Sprintf("تذكير: %s", r.Name), fmt.Sprintf("حان الوقت لممارسة عادتك %s", r.Icon), "info")
}

func (m Model) View() string {
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewHome:
		leftPane = m.renderCalendarStrip() + "\n" + m.renderHomeView()
		rightPane = m.renderHabitModal() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewPlanner:
		leftPane = m.renderCalendarStrip() + "\n" + m.renderPlannerView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewStats:
		leftPane = m.renderStatsView()
		rightPane = m.renderInsightView() + m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	notificationView := strings.TrimSpace(m.renderNotificationsView())

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("habitflow | view: %s | day: %s", m.CurrentView, m.SelectedDate),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notificationView,
		Footer:       fmt.Sprintf("keys: %s home | %s planner | %s stats | / cmd | %s help | %s quit", m.Keys.Home, m.Keys.Planner, m.Keys.Stats, m.Keys.Help, m.Keys.Quit),
	})
}

func waitForReminderCmd(ch <-chan scheduler.Reminder) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Reminder: r}
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewHome, ViewPlanner, ViewStats:
		return true
	default:
		return false
	}
}

// windowDays derives the visible calendar strip for the current moment.
func (m Model) windowDays() []model.Day {
	return model.Window(m.now())
}

// shiftSelectedDate moves the selected day within the window bounds.
func (m *Model) shiftSelectedDate(delta int) {
	days := m.windowDays()
	idx := -1
	for i, d := range days {
		if d.Date == m.SelectedDate {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i, d := range days {
			if d.IsToday {
				idx = i
				break
			}
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(days)-1 {
		idx = len(days) - 1
	}
	m.SelectedDate = days[idx].Date
	m.Planner.Cursor = 0
}
