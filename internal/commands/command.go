package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeHabit   Type = "habit"
	TypeTask    Type = "task"
	TypeDone    Type = "done"
	TypeView    Type = "view"
	TypeInsight Type = "insight"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type HabitArgs struct {
	Name string
}

type TaskArgs struct {
	Title string
}

type DoneArgs struct {
	Index int
}

type ViewArgs struct {
	Screen string
}

type Command struct {
	Type  Type
	Raw   string
	Habit *HabitArgs
	Task  *TaskArgs
	Done  *DoneArgs
	View  *ViewArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeHabit:
		return parseHabit(input, args)
	case TypeTask:
		return parseTask(input, args)
	case TypeDone:
		return parseDone(input, args)
	case TypeView:
		return parseView(input, args)
	case TypeInsight:
		if len(args) != 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "insight takes no arguments"}
		}
		return Command{Type: TypeInsight, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseHabit(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "habit requires a name"}
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "habit requires a name"}
	}
	return Command{Type: TypeHabit, Raw: raw, Habit: &HabitArgs{Name: name}}, nil
}

func parseTask(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "task requires a title"}
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "task requires a title"}
	}
	return Command{Type: TypeTask, Raw: raw, Task: &TaskArgs{Title: title}}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a list position"}
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid list position: %s", args[0])}
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Index: index}}, nil
}

func parseView(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "view requires a screen name"}
	}
	screen := strings.ToLower(args[0])
	switch screen {
	case "home", "planner", "stats":
		return Command{Type: TypeView, Raw: raw, View: &ViewArgs{Screen: screen}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown screen: %s", screen)}
	}
}
