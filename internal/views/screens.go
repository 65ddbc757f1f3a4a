package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StripDayData struct {
	Date      string
	DayName   string
	DayNumber int
	IsToday   bool
	Selected  bool
}

type HabitRowData struct {
	Icon          string
	Name          string
	Color         string
	ReminderTime  string
	Completed     bool
	Selected      bool
	ConfirmDelete bool
}

type HomePanelData struct {
	ListView string
	Habits   []HabitRowData
	Day      string
}

type TaskRowData struct {
	Title     string
	Completed bool
	Selected  bool
}

type PlannerPanelData struct {
	Day          string
	CaptureMode  bool
	QuickAddView string
	ListView     string
	Tasks        []TaskRowData
}

type HabitBarData struct {
	Name        string
	Color       string
	Completions int
}

type StatsPanelData struct {
	ActiveHabits     int
	TotalCompletions int
	Bars             []HabitBarData
}

type InsightPanelData struct {
	Loading      bool
	SpinnerView  string
	InsightView  string
	HasRequester bool
}

type HabitModalData struct {
	NameView     string
	ReminderView string
	Emojis       []string
	EmojiIndex   int
	Colors       []string
	ColorIndex   int
	Field        int
	NameEmpty    bool
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

// RenderCalendarStrip draws the scrolling day strip. The selected day
// is inverted; today is bold.
func RenderCalendarStrip(days []StripDayData) string {
	cells := make([]string, 0, len(days))
	for _, d := range days {
		cell := fmt.Sprintf("%s %2d", d.DayName, d.DayNumber)
		switch {
		case d.Selected:
			cell = selectedStyle.Render(cell)
		case d.IsToday:
			cell = todayStyle.Render(cell)
		default:
			cell = dimStyle.Render(cell)
		}
		cells = append(cells, cell)
	}
	return "calendar:\n" + strings.Join(cells, " | ")
}

func RenderHomePanel(data HomePanelData) string {
	var b strings.Builder
	b.WriteString("habits:\n")
	b.WriteString(fmt.Sprintf("day: %s\n", data.Day))
	b.WriteString("actions: [j/k]move [h/l]day [space]toggle [a]add [d+y]delete\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Habits) == 0 {
		b.WriteString("(no habits yet, press a to add one)")
		return strings.TrimSpace(b.String())
	}
	for _, h := range data.Habits {
		cursor := " "
		if h.Selected {
			cursor = ">"
		}
		check := "[ ]"
		if h.Completed {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s %s %s", cursor, check, h.Icon, h.Name)
		if h.ReminderTime != "" {
			line += " ⏰" + h.ReminderTime
		}
		if h.ConfirmDelete {
			line += errorStyle.Render(" delete? [y]")
		}
		if h.Color != "" {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color(h.Color)).Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderPlannerPanel(data PlannerPanelData) string {
	var b strings.Builder
	b.WriteString("planner:\n")
	b.WriteString(fmt.Sprintf("day: %s\n", data.Day))
	if data.CaptureMode {
		b.WriteString(data.QuickAddView + "\n")
		b.WriteString("actions: [enter]add [esc]list mode\n")
	} else {
		b.WriteString("actions: [i/enter]capture [j/k]move [space]toggle [d]delete\n")
	}
	b.WriteString(data.ListView + "\n")
	if len(data.Tasks) == 0 {
		b.WriteString("(no tasks for this day)")
		return strings.TrimSpace(b.String())
	}
	for _, t := range data.Tasks {
		cursor := " "
		if t.Selected {
			cursor = ">"
		}
		check := "[ ]"
		title := t.Title
		if t.Completed {
			check = "[x]"
			title = dimStyle.Strikethrough(true).Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, title))
	}
	return strings.TrimSpace(b.String())
}

const statsBarWidth = 24

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("active habits: %d | total completions: %d\n", data.ActiveHabits, data.TotalCompletions))
	if len(data.Bars) == 0 {
		b.WriteString("(nothing to chart yet)")
		return strings.TrimSpace(b.String())
	}

	max := 0
	for _, bar := range data.Bars {
		if bar.Completions > max {
			max = bar.Completions
		}
	}
	for _, bar := range data.Bars {
		width := 0
		if max > 0 {
			width = bar.Completions * statsBarWidth / max
		}
		if bar.Completions > 0 && width == 0 {
			width = 1
		}
		fill := strings.Repeat("█", width)
		if bar.Color != "" {
			fill = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color)).Render(fill)
		}
		b.WriteString(fmt.Sprintf("%-14s %s %d\n", bar.Name, fill, bar.Completions))
	}
	return strings.TrimSpace(b.String())
}

func RenderInsightPanel(data InsightPanelData) string {
	var b strings.Builder
	b.WriteString("insight:\n")
	if !data.HasRequester {
		b.WriteString("(no API key configured)\n")
	}
	if data.Loading {
		b.WriteString(data.SpinnerView + " generating...\n")
	} else {
		b.WriteString("actions: [g]generate\n")
	}
	b.WriteString(data.InsightView)
	return strings.TrimSpace(b.String())
}

func RenderHabitModal(data HabitModalData) string {
	field := func(i int) string {
		if data.Field == i {
			return ">"
		}
		return " "
	}

	var b strings.Builder
	b.WriteString("new habit:\n")
	b.WriteString("keys: [tab]field [h/l]pick [enter]save [esc]close\n")
	b.WriteString(fmt.Sprintf("%s %s\n", field(0), data.NameView))

	emojis := make([]string, 0, len(data.Emojis))
	for i, e := range data.Emojis {
		if i == data.EmojiIndex {
			e = selectedStyle.Render(e)
		}
		emojis = append(emojis, e)
	}
	b.WriteString(fmt.Sprintf("%s icon: %s\n", field(1), strings.Join(emojis, " ")))

	colors := make([]string, 0, len(data.Colors))
	for i, c := range data.Colors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("●")
		if i == data.ColorIndex {
			swatch = selectedStyle.Render("●")
		}
		colors = append(colors, swatch)
	}
	b.WriteString(fmt.Sprintf("%s color: %s %s\n", field(2), strings.Join(colors, " "), data.Colors[data.ColorIndex]))

	b.WriteString(fmt.Sprintf("%s %s\n", field(3), data.ReminderView))
	if data.NameEmpty {
		b.WriteString(dimStyle.Render("save disabled until a name is entered"))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

// RenderHelpPanel shows the contextual bindings, markdown-rendered,
// above the bubbles help line.
func RenderHelpPanel(data HelpPanelData) string {
	md := fmt.Sprintf("## %s keys\n\n%s", data.CurrentView, strings.Join(data.Bindings, "\n"))
	return fmt.Sprintf("help:\n%s\n%s", RenderMarkdown(md), data.HelpView)
}
