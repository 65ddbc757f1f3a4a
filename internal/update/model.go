package update

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/habitflow/internal/model"
	"github.com/sandeepkv93/habitflow/internal/scheduler"
	"github.com/sandeepkv93/habitflow/internal/store"
)

type View string

const (
	ViewHome    View = "Home"
	ViewPlanner View = "Planner"
	ViewStats   View = "Stats"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home    string
	Planner string
	Stats   string
	Help    string
	Quit    string
}

// Picker palettes for the habit modal.
var (
	ModalEmojis = []string{"💧", "🏃", "📚", "🧘", "💊", "💤", "🍎", "💪", "💻", "🎨", "🧹", "💰"}
	ModalColors = []string{"#3EA5FF", "#FF5C5C", "#4CAF50", "#FFC107", "#9C27B0", "#FF9800"}
)

type HomeState struct {
	Cursor          int
	ConfirmDeleteID string
}

type PlannerState struct {
	Cursor      int
	CaptureMode bool
	Input       string
}

type StatsState struct {
	Loading bool
	Insight string
	seq     int
}

type ModalField int

const (
	ModalFieldName ModalField = iota
	ModalFieldEmoji
	ModalFieldColor
	ModalFieldReminder
)

type ModalState struct {
	Active     bool
	Field      ModalField
	EmojiIndex int
	ColorIndex int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

// InsightRequester is what the Stats view needs from the insight
// layer; *insight.Requester satisfies it.
type InsightRequester interface {
	Request(ctx context.Context, habits []model.Habit) string
}

type Model struct {
	CurrentView  View
	SelectedDate string
	Store        *store.Store
	Scheduler    *scheduler.Engine
	Home         HomeState
	Planner      PlannerState
	Stats        StatsState
	Modal        ModalState
	Palette      CommandPaletteState
	HelpVisible  bool

	Notifications  []Notification
	DesktopEnabled bool
	NotifierReady  bool
	notifier       DesktopNotifier
	firedTags      map[string]bool

	Status    StatusBar
	Keys      GlobalKeyMap
	Quitting  bool
	LastError error

	requester InsightRequester
	now       func() time.Time

	// Bubble components used for rich TUI controls
	habitList       list.Model
	taskList        list.Model
	nameInput       textinput.Model
	reminderInput   textinput.Model
	captureInput    textinput.Model
	commandInput    textinput.Model
	insightSpinner  spinner.Model
	helpModel       help.Model
	insightViewport viewport.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type DesktopNotifier interface {
	Send(Notification) error
	Available() bool
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }
func (NoopDesktopNotifier) Available() bool         { return true }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// Available reports whether the platform notification command exists.
// Mirrors the browser flow where a denied permission silently disables
// delivery.
func (ExecDesktopNotifier) Available() bool {
	switch runtime.GOOS {
	case "linux":
		_, err := exec.LookPath("notify-send")
		return err == nil
	case "darwin":
		_, err := exec.LookPath("osascript")
		return err == nil
	default:
		return false
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ReminderDueMsg struct {
	Reminder scheduler.Reminder
}

type InsightResultMsg struct {
	Seq  int
	Text string
}

func NewModel(st *store.Store) Model {
	m := Model{
		CurrentView: ViewHome,
		Store:       st,
		Keys: GlobalKeyMap{
			Home:    "1",
			Planner: "2",
			Stats:   "3",
			Help:    "?",
			Quit:    "q",
		},
		notifier:  NoopDesktopNotifier{},
		firedTags: make(map[string]bool),
		now:       time.Now,
	}
	m.SelectedDate = model.DateOf(m.now())
	m.NotifierReady = m.notifier.Available()
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithScheduler(st *store.Store, engine *scheduler.Engine) Model {
	m := NewModel(st)
	m.Scheduler = engine
	return m
}

func NewModelWithConfig(st *store.Store, engine *scheduler.Engine, notifier DesktopNotifier, requester InsightRequester, cfg RuntimeConfig) Model {
	m := NewModel(st)
	m.Scheduler = engine
	m.DesktopEnabled = cfg.DesktopNotifications
	m.requester = requester
	if notifier != nil {
		m.notifier = notifier
	}
	m.NotifierReady = m.notifier.Available()
	return m
}
