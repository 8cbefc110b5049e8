package timeline

import (
	"time"

	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline/projection"
)

// ViewState is the session-local state of one open timeline.
type ViewState struct {
	View           model.View
	SelectedTaskID string
	NarrowViewport bool
}

// Summary holds the headline counts shown above every view. It is global
// over the whole collection, independent of the rendered date window.
type Summary struct {
	TotalTasks int
	InProgress int
	Done       int
	Milestones int
}

// --- UseCase Inputs ---

type StartInput struct {
	ViewportWidth int // logical pixels reported by the client
}

// MonthAnchor addresses a calendar month. Month is zero-based; out-of-range
// values normalize by date arithmetic.
type MonthAnchor struct {
	Year  int
	Month int
}

type RenderInput struct {
	SessionID  string
	Anchor     *MonthAnchor // calendar view; nil renders the current month
	WeekOffset int          // weekly view; 0 is the current week
}

type SwitchViewInput struct {
	SessionID string
	View      model.View
}

type SetViewportInput struct {
	SessionID string
	WidthPX   int
}

type SelectTaskInput struct {
	SessionID string
	TaskID    string
}

type UpdateTaskInput struct {
	SessionID string
	TaskID    string
	Title     string     // empty keeps the current title
	Status    string     // empty keeps the current status
	DueAt     *time.Time // nil keeps the current due date
}

// --- UseCase Outputs ---

type SessionOutput struct {
	SessionID string
	State     ViewState
	Failed    bool
	Summary   Summary
}

type RenderOutput struct {
	SessionID string
	State     ViewState
	Summary   Summary
	View      projection.Output
}

type EditorOutput struct {
	SessionID string
	Task      model.Task
}
