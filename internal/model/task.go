package model

import "time"

// Status is the closed task status enumeration. No other values exist.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// ParseStatus maps a raw upstream status string onto the closed enumeration.
// Unknown values fall back to todo so a single bad record cannot poison a render.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(raw)
	default:
		return StatusTodo
	}
}

// Category is the visual grouping every projection applies to a status.
type Category string

const (
	CategorySuccess   Category = "success"
	CategoryAttention Category = "attention"
	CategoryNeutral   Category = "neutral"
)

// Category returns the visual category for the status. This is the single
// source of the status-to-visual mapping; all projections must go through it.
func (s Status) Category() Category {
	switch s {
	case StatusDone:
		return CategorySuccess
	case StatusInProgress:
		return CategoryAttention
	default:
		return CategoryNeutral
	}
}

// Task is the read-only task projection handed to the timeline core.
// DueAt is nil when the task has no due date or the upstream value was
// unparseable; such tasks are counted in summaries but never land on a grid.
type Task struct {
	ID     string
	Title  string
	Status Status
	DueAt  *time.Time
}

// Milestone is the read-only milestone projection. Same due-date rule as Task.
type Milestone struct {
	ID    string
	Title string
	DueAt *time.Time
}

// Collection is the full personal task/milestone set for one user, already
// authorized and flattened across teams/projects by the workspace service.
type Collection struct {
	Tasks      []Task
	Milestones []Milestone
}
