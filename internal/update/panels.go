package update

import (
	"strings"
	"time"

	"github.com/sandeepkv93/habitflow/internal/views"
)

func (m Model) renderCalendarStrip() string {
	days := m.windowDays()
	data := make([]views.StripDayData, 0, len(days))
	for _, d := range days {
		data = append(data, views.StripDayData{
			Date:      d.Date,
			DayName:   d.DayName,
			DayNumber: d.DayNumber,
			IsToday:   d.IsToday,
			Selected:  d.Date == m.SelectedDate,
		})
	}
	return views.RenderCalendarStrip(data)
}

func (m Model) renderHomeView() string {
	habits := m.Store.Habits()
	items := make([]views.HabitRowData, 0, len(habits))
	for i, h := range habits {
		items = append(items, views.HabitRowData{
			Icon:          h.Icon,
			Name:          h.Name,
			Color:         h.Color,
			ReminderTime:  h.ReminderTime,
			Completed:     h.CompletedOn(m.SelectedDate),
			Selected:      i == m.Home.Cursor,
			ConfirmDelete: h.ID == m.Home.ConfirmDeleteID,
		})
	}
	return views.RenderHomePanel(views.HomePanelData{
		ListView: m.habitList.View(),
		Habits:   items,
		Day:      m.SelectedDate,
	})
}

func (m Model) renderPlannerView() string {
	tasks := m.Store.TasksForDate(m.SelectedDate)
	items := make([]views.TaskRowData, 0, len(tasks))
	for i, t := range tasks {
		items = append(items, views.TaskRowData{
			Title:     t.Title,
			Completed: t.Completed,
			Selected:  i == m.Planner.Cursor && !m.Planner.CaptureMode,
		})
	}
	return views.RenderPlannerPanel(views.PlannerPanelData{
		Day:          m.SelectedDate,
		CaptureMode:  m.Planner.CaptureMode,
		QuickAddView: m.captureInput.View(),
		ListView:     m.taskList.View(),
		Tasks:        items,
	})
}

func (m Model) renderStatsView() string {
	summary := m.Store.Stats()
	bars := make([]views.HabitBarData, 0, len(summary.PerHabit))
	for _, c := range summary.PerHabit {
		bars = append(bars, views.HabitBarData{
			Name:        c.Name,
			Color:       c.Color,
			Completions: c.Completions,
		})
	}
	return views.RenderStatsPanel(views.StatsPanelData{
		ActiveHabits:     summary.ActiveHabits,
		TotalCompletions: summary.TotalCompletions,
		Bars:             bars,
	})
}

func (m Model) renderInsightView() string {
	spin := ""
	if m.Stats.Loading {
		spin = m.insightSpinner.View()
	}
	return views.RenderInsightPanel(views.InsightPanelData{
		Loading:      m.Stats.Loading,
		SpinnerView:  spin,
		InsightView:  m.insightViewport.View(),
		HasRequester: m.requester != nil,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderHabitModal() string {
	if !m.Modal.Active {
		return ""
	}
	return views.RenderHabitModal(views.HabitModalData{
		NameView:     m.nameInput.View(),
		ReminderView: m.reminderInput.View(),
		Emojis:       ModalEmojis,
		EmojiIndex:   m.Modal.EmojiIndex,
		Colors:       ModalColors,
		ColorIndex:   m.Modal.ColorIndex,
		Field:        int(m.Modal.Field),
		NameEmpty:    strings.TrimSpace(m.nameInput.Value()) == "",
	})
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

// notify records an in-app notification and mirrors it to the desktop
// notifier when enabled and available.
func (m *Model) notify(title, body, level string) {
	if m.notifyInApp(title, body, level) && m.DesktopEnabled && m.NotifierReady && m.notifier != nil {
		_ = m.notifier.Send(Notification{Title: title, Body: body, Level: level, At: time.Now().UTC()})
	}
}

// notifyInApp appends to the bounded in-app log only.
func (m *Model) notifyInApp(title, body, level string) bool {
	if strings.TrimSpace(body) == "" {
		return false
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	return true
}
