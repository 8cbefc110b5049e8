package projection

import (
	"fmt"

	"personal-timeline/internal/calgrid"
	"personal-timeline/internal/model"
)

// WeeklyView groups items into Sunday-start week buckets around today:
// the previous week, the current week and the weeks after it, as flat
// lists rather than a grid. Upcoming is the tail group for items the week
// windows cannot place: undated items and items due after the last week.
type WeeklyView struct {
	WeekOffset int         `json:"week_offset"`
	Weeks      []WeekGroup `json:"weeks"`
	Upcoming   WeekGroup   `json:"upcoming"`
}

// WeekGroup is one week's flat list. Milestones render before tasks,
// both in source collection order.
type WeekGroup struct {
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Label      string          `json:"label"`
	IsCurrent  bool            `json:"is_current"`
	Milestones []MilestoneItem `json:"milestones,omitempty"`
	Tasks      []TaskItem      `json:"tasks,omitempty"`
}

// Weekly projects the collection onto nearby weeks.
type Weekly struct {
	grid        *calgrid.Builder
	weeksBefore int
	weeksAfter  int
}

func NewWeekly(grid *calgrid.Builder, weeksBefore, weeksAfter int) *Weekly {
	return &Weekly{grid: grid, weeksBefore: weeksBefore, weeksAfter: weeksAfter}
}

func (p *Weekly) View() model.View { return model.ViewWeekly }

func (p *Weekly) Project(in Input) Output {
	currentWeek := p.grid.WeekStart(p.grid.Today())
	base := currentWeek.AddDate(0, 0, in.WeekOffset*calgrid.DaysPerWeek)
	loc := p.grid.Location()

	view := &WeeklyView{
		WeekOffset: in.WeekOffset,
		Upcoming:   WeekGroup{Label: "Upcoming"},
	}
	groupIndex := make(map[string]int)
	lastWeek := base.AddDate(0, 0, p.weeksAfter*calgrid.DaysPerWeek)

	for w := -p.weeksBefore; w <= p.weeksAfter; w++ {
		start := base.AddDate(0, 0, w*calgrid.DaysPerWeek)
		end := start.AddDate(0, 0, calgrid.DaysPerWeek-1)

		label := fmt.Sprintf("Week of %s", start.Format("Jan 2"))
		switch {
		case start.Equal(currentWeek):
			label = "This Week"
		case start.Equal(currentWeek.AddDate(0, 0, -calgrid.DaysPerWeek)):
			label = "Last Week"
		case start.Equal(currentWeek.AddDate(0, 0, calgrid.DaysPerWeek)):
			label = "Next Week"
		}

		view.Weeks = append(view.Weeks, WeekGroup{
			Start:     start.Format(calgrid.DayKeyFormat),
			End:       end.Format(calgrid.DayKeyFormat),
			Label:     label,
			IsCurrent: start.Equal(currentWeek),
		})
		groupIndex[start.Format(calgrid.DayKeyFormat)] = len(view.Weeks) - 1
	}

	// Undated items and items past the last window week land in the
	// Upcoming tail; items before the window are history and drop off.
	for _, m := range in.Collection.Milestones {
		if m.DueAt == nil {
			view.Upcoming.Milestones = append(view.Upcoming.Milestones, newMilestoneItem(m, loc))
			continue
		}
		week := p.grid.WeekStart(*m.DueAt)
		if i, ok := groupIndex[week.Format(calgrid.DayKeyFormat)]; ok {
			view.Weeks[i].Milestones = append(view.Weeks[i].Milestones, newMilestoneItem(m, loc))
		} else if week.After(lastWeek) {
			view.Upcoming.Milestones = append(view.Upcoming.Milestones, newMilestoneItem(m, loc))
		}
	}
	for _, t := range in.Collection.Tasks {
		if t.DueAt == nil {
			view.Upcoming.Tasks = append(view.Upcoming.Tasks, newTaskItem(t, loc))
			continue
		}
		week := p.grid.WeekStart(*t.DueAt)
		if i, ok := groupIndex[week.Format(calgrid.DayKeyFormat)]; ok {
			view.Weeks[i].Tasks = append(view.Weeks[i].Tasks, newTaskItem(t, loc))
		} else if week.After(lastWeek) {
			view.Upcoming.Tasks = append(view.Upcoming.Tasks, newTaskItem(t, loc))
		}
	}

	return Output{Weekly: view}
}
