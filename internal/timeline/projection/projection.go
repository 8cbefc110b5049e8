// Package projection renders one task/milestone collection into three
// alternate layouts: a month calendar grid, a Gantt date axis and a weekly
// breakdown. Projections are pure; they share no mutable state and receive
// the collection as a read-only value per call.
package projection

import (
	"time"

	"personal-timeline/internal/model"
)

// Input is the common capability set every projection consumes.
type Input struct {
	Collection model.Collection
	Narrow     bool

	// Calendar anchor, zero-based month. Used only by the calendar view.
	Year  int
	Month int

	// Weekly anchor offset in weeks relative to today. Used only by the
	// weekly view.
	WeekOffset int
}

// Output is the tagged union of the three layouts; exactly one field is set.
type Output struct {
	Calendar *CalendarView `json:"calendar,omitempty"`
	Gantt    *GanttView    `json:"gantt,omitempty"`
	Weekly   *WeeklyView   `json:"weekly,omitempty"`
}

// Projection is one of the three alternate visual layouts.
type Projection interface {
	View() model.View
	Project(in Input) Output
}

// TaskItem is a task as every layout presents it. Category always comes
// from model.Status.Category so the status-to-visual mapping is identical
// across views.
type TaskItem struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Status   model.Status   `json:"status"`
	Category model.Category `json:"category"`
	Due      string         `json:"due,omitempty"`
}

// MilestoneItem is a milestone as every layout presents it.
type MilestoneItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Due   string `json:"due,omitempty"`
}

func newTaskItem(t model.Task, loc *time.Location) TaskItem {
	item := TaskItem{
		ID:       t.ID,
		Title:    t.Title,
		Status:   t.Status,
		Category: t.Status.Category(),
	}
	if t.DueAt != nil {
		item.Due = t.DueAt.In(loc).Format("2006-01-02")
	}
	return item
}

func newMilestoneItem(m model.Milestone, loc *time.Location) MilestoneItem {
	item := MilestoneItem{ID: m.ID, Title: m.Title}
	if m.DueAt != nil {
		item.Due = m.DueAt.In(loc).Format("2006-01-02")
	}
	return item
}
