package projection

import (
	"personal-timeline/internal/calgrid"
	"personal-timeline/internal/model"
)

// CalendarView is the 6x7 month grid layout.
type CalendarView struct {
	Year       int            `json:"year"`
	Month      int            `json:"month"` // zero-based
	MonthLabel string         `json:"month_label"`
	Cells      []CalendarCell `json:"cells"`
}

// CalendarCell is one day of the grid. Tasks holds only the visible slice;
// HiddenTasks is the true overflow beyond the active per-cell cap.
type CalendarCell struct {
	Date            string          `json:"date"`
	Day             int             `json:"day"`
	InCurrentPeriod bool            `json:"in_current_period"`
	IsToday         bool            `json:"is_today"`
	Milestones      []MilestoneItem `json:"milestones,omitempty"`
	Tasks           []TaskItem      `json:"tasks,omitempty"`
	HiddenTasks     int             `json:"hidden_tasks,omitempty"`
}

// Calendar projects the collection onto a month grid.
type Calendar struct {
	grid      *calgrid.Builder
	narrowCap int // visible tasks per cell on narrow viewports
	wideCap   int // visible tasks per cell otherwise
}

// NewCalendar creates the calendar projection. The two caps stay separate
// on purpose: narrow and wide layouts overflow at different thresholds.
func NewCalendar(grid *calgrid.Builder, narrowCap, wideCap int) *Calendar {
	return &Calendar{grid: grid, narrowCap: narrowCap, wideCap: wideCap}
}

func (p *Calendar) View() model.View { return model.ViewCalendar }

func (p *Calendar) Project(in Input) Output {
	buckets := p.grid.Assign(p.grid.MonthGrid(in.Year, in.Month), in.Collection.Tasks, in.Collection.Milestones)

	limit := p.wideCap
	if in.Narrow {
		limit = p.narrowCap
	}

	loc := p.grid.Location()
	cells := make([]CalendarCell, 0, len(buckets))
	for _, b := range buckets {
		cell := CalendarCell{
			Date:            b.Date.Format(calgrid.DayKeyFormat),
			Day:             b.Date.Day(),
			InCurrentPeriod: b.InCurrentPeriod,
			IsToday:         b.IsToday,
		}
		// Milestones render before tasks within a cell.
		for _, m := range b.Milestones {
			cell.Milestones = append(cell.Milestones, newMilestoneItem(m, loc))
		}
		visible := b.Tasks
		if len(visible) > limit {
			visible = visible[:limit]
			cell.HiddenTasks = len(b.Tasks) - limit
		}
		for _, t := range visible {
			cell.Tasks = append(cell.Tasks, newTaskItem(t, loc))
		}
		cells = append(cells, cell)
	}

	anchor := buckets[len(buckets)/2].Date // always inside the target month
	return Output{Calendar: &CalendarView{
		Year:       anchor.Year(),
		Month:      int(anchor.Month()) - 1,
		MonthLabel: anchor.Format("January 2006"),
		Cells:      cells,
	}}
}
