package projection

import (
	"time"

	"personal-timeline/internal/calgrid"
	"personal-timeline/internal/model"
)

// GanttView lays items out along one continuous date axis spanning the
// union of all due dates. Positions are percentages so the client can scale
// the axis freely.
type GanttView struct {
	AxisStart string     `json:"axis_start,omitempty"`
	AxisEnd   string     `json:"axis_end,omitempty"`
	AxisDays  int        `json:"axis_days"`
	Rows      []GanttRow `json:"rows"`
	Omitted   int        `json:"omitted"` // items lacking the dates needed for positioning
}

// GanttRow is one positioned bar or marker.
type GanttRow struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Kind     string         `json:"kind"` // "task" or "milestone"
	Status   model.Status   `json:"status,omitempty"`
	Category model.Category `json:"category"`
	Due      string         `json:"due"`
	Offset   float64        `json:"offset_percent"`
}

const (
	ganttKindTask      = "task"
	ganttKindMilestone = "milestone"
)

// Gantt projects the collection onto a date axis.
type Gantt struct {
	grid *calgrid.Builder
}

func NewGantt(grid *calgrid.Builder) *Gantt {
	return &Gantt{grid: grid}
}

func (p *Gantt) View() model.View { return model.ViewGantt }

func (p *Gantt) Project(in Input) Output {
	type dated struct {
		day       time.Time
		task      *model.Task
		milestone *model.Milestone
	}

	var items []dated
	omitted := 0
	for i := range in.Collection.Tasks {
		t := &in.Collection.Tasks[i]
		if t.DueAt == nil {
			omitted++
			continue
		}
		items = append(items, dated{day: p.grid.StartOfDay(*t.DueAt), task: t})
	}
	for i := range in.Collection.Milestones {
		m := &in.Collection.Milestones[i]
		if m.DueAt == nil {
			omitted++
			continue
		}
		items = append(items, dated{day: p.grid.StartOfDay(*m.DueAt), milestone: m})
	}

	view := &GanttView{Rows: []GanttRow{}, Omitted: omitted}
	if len(items) == 0 {
		return Output{Gantt: view}
	}

	axisStart, axisEnd := items[0].day, items[0].day
	for _, it := range items[1:] {
		if it.day.Before(axisStart) {
			axisStart = it.day
		}
		if it.day.After(axisEnd) {
			axisEnd = it.day
		}
	}
	// A single-day collection still needs a nonzero span to divide by.
	if axisEnd.Equal(axisStart) {
		axisEnd = axisEnd.AddDate(0, 0, 1)
	}
	span := axisEnd.Sub(axisStart)

	view.AxisStart = axisStart.Format(calgrid.DayKeyFormat)
	view.AxisEnd = axisEnd.Format(calgrid.DayKeyFormat)
	view.AxisDays = int(span.Hours()/24) + 1

	for _, it := range items {
		offset := float64(it.day.Sub(axisStart)) / float64(span) * 100
		switch {
		case it.task != nil:
			view.Rows = append(view.Rows, GanttRow{
				ID:       it.task.ID,
				Title:    it.task.Title,
				Kind:     ganttKindTask,
				Status:   it.task.Status,
				Category: it.task.Status.Category(),
				Due:      it.day.Format(calgrid.DayKeyFormat),
				Offset:   offset,
			})
		case it.milestone != nil:
			view.Rows = append(view.Rows, GanttRow{
				ID:       it.milestone.ID,
				Title:    it.milestone.Title,
				Kind:     ganttKindMilestone,
				Category: model.CategoryNeutral,
				Due:      it.day.Format(calgrid.DayKeyFormat),
				Offset:   offset,
			})
		}
	}
	return Output{Gantt: view}
}
