package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Habit   func(HabitArgs) (Result, error)
	Task    func(TaskArgs) (Result, error)
	Done    func(DoneArgs) (Result, error)
	View    func(ViewArgs) (Result, error)
	Insight func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeHabit:
		if handlers.Habit == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "habit handler not configured"}
		}
		return handlers.Habit(*cmd.Habit)
	case TypeTask:
		if handlers.Task == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "task handler not configured"}
		}
		return handlers.Task(*cmd.Task)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeView:
		if handlers.View == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "view handler not configured"}
		}
		return handlers.View(*cmd.View)
	case TypeInsight:
		if handlers.Insight == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "insight handler not configured"}
		}
		return handlers.Insight()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
