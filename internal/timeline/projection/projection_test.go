package projection_test

import (
	"testing"
	"time"

	"personal-timeline/internal/calgrid"
	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline/projection"
)

// 2024-03-15 is a Friday; its week runs 2024-03-10 through 2024-03-16.
const testNow = "2024-03-15T10:00:00Z"

func newGrid(t *testing.T) *calgrid.Builder {
	t.Helper()
	now, err := time.Parse(time.RFC3339, testNow)
	if err != nil {
		t.Fatal(err)
	}
	b, err := calgrid.NewBuilderWithClock("UTC", func() time.Time { return now })
	if err != nil {
		t.Fatalf("NewBuilderWithClock: %v", err)
	}
	return b
}

func due(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

func testCollection() model.Collection {
	return model.Collection{
		Tasks: []model.Task{
			{ID: "t1", Title: "write report", Status: model.StatusTodo, DueAt: due(2024, time.March, 10)},
			{ID: "t2", Title: "review slides", Status: model.StatusInProgress, DueAt: due(2024, time.March, 10)},
			{ID: "t3", Title: "submit draft", Status: model.StatusDone, DueAt: due(2024, time.March, 10)},
			{ID: "t4", Title: "plan sprint", Status: model.StatusTodo, DueAt: due(2024, time.March, 10)},
			{ID: "t5", Title: "no deadline", Status: model.StatusTodo},
			{ID: "t6", Title: "next week thing", Status: model.StatusInProgress, DueAt: due(2024, time.March, 20)},
		},
		Milestones: []model.Milestone{
			{ID: "m1", Title: "demo day", DueAt: due(2024, time.March, 10)},
			{ID: "m2", Title: "undated milestone"},
		},
	}
}

func TestCalendarProjection(t *testing.T) {
	grid := newGrid(t)
	p := projection.NewCalendar(grid, 2, 3)

	findCell := func(out projection.Output, date string) *projection.CalendarCell {
		for i := range out.Calendar.Cells {
			if out.Calendar.Cells[i].Date == date {
				return &out.Calendar.Cells[i]
			}
		}
		return nil
	}

	t.Run("wide viewport caps at three with true overflow", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: testCollection(), Year: 2024, Month: 2})
		if out.Calendar == nil || len(out.Calendar.Cells) != calgrid.GridDays {
			t.Fatalf("expected %d cells", calgrid.GridDays)
		}
		cell := findCell(out, "2024-03-10")
		if cell == nil {
			t.Fatal("2024-03-10 cell missing")
		}
		if len(cell.Tasks) != 3 {
			t.Errorf("expected 3 visible tasks, got %d", len(cell.Tasks))
		}
		if cell.HiddenTasks != 1 {
			t.Errorf("expected +1 more, got %d", cell.HiddenTasks)
		}
		// Milestone first, then tasks in source collection order.
		if len(cell.Milestones) != 1 || cell.Milestones[0].ID != "m1" {
			t.Errorf("milestone must lead the cell: %+v", cell.Milestones)
		}
		if cell.Tasks[0].ID != "t1" || cell.Tasks[1].ID != "t2" || cell.Tasks[2].ID != "t3" {
			t.Errorf("tasks out of order: %+v", cell.Tasks)
		}
	})

	t.Run("narrow viewport caps at two", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: testCollection(), Narrow: true, Year: 2024, Month: 2})
		cell := findCell(out, "2024-03-10")
		if cell == nil {
			t.Fatal("2024-03-10 cell missing")
		}
		if len(cell.Tasks) != 2 {
			t.Errorf("expected 2 visible tasks, got %d", len(cell.Tasks))
		}
		if cell.HiddenTasks != 2 {
			t.Errorf("expected +2 more, got %d", cell.HiddenTasks)
		}
	})

	t.Run("undated task appears in no cell", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: testCollection(), Year: 2024, Month: 2})
		for _, cell := range out.Calendar.Cells {
			for _, task := range cell.Tasks {
				if task.ID == "t5" {
					t.Fatalf("undated task placed on %s", cell.Date)
				}
			}
		}
	})

	t.Run("month label from anchor", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: model.Collection{}, Year: 2024, Month: 2})
		if out.Calendar.MonthLabel != "March 2024" {
			t.Errorf("unexpected label %q", out.Calendar.MonthLabel)
		}
		if out.Calendar.Month != 2 || out.Calendar.Year != 2024 {
			t.Errorf("anchor echo wrong: %d/%d", out.Calendar.Year, out.Calendar.Month)
		}
	})
}

func TestGanttProjection(t *testing.T) {
	grid := newGrid(t)
	p := projection.NewGantt(grid)

	t.Run("axis spans min to max due date", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: testCollection()})
		g := out.Gantt
		if g == nil {
			t.Fatal("no gantt output")
		}
		if g.AxisStart != "2024-03-10" || g.AxisEnd != "2024-03-20" {
			t.Errorf("axis %s..%s", g.AxisStart, g.AxisEnd)
		}
		if g.AxisDays != 11 {
			t.Errorf("expected 11 axis days, got %d", g.AxisDays)
		}
	})

	t.Run("undated items are omitted and counted", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: testCollection()})
		if out.Gantt.Omitted != 2 {
			t.Errorf("expected 2 omitted, got %d", out.Gantt.Omitted)
		}
		for _, row := range out.Gantt.Rows {
			if row.ID == "t5" || row.ID == "m2" {
				t.Errorf("undated item %s positioned on axis", row.ID)
			}
		}
	})

	t.Run("offsets are monotone along the axis", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: testCollection()})
		var first, last *projection.GanttRow
		for i := range out.Gantt.Rows {
			switch out.Gantt.Rows[i].ID {
			case "t1":
				first = &out.Gantt.Rows[i]
			case "t6":
				last = &out.Gantt.Rows[i]
			}
		}
		if first == nil || last == nil {
			t.Fatal("expected rows missing")
		}
		if first.Offset != 0 {
			t.Errorf("earliest item should sit at offset 0, got %f", first.Offset)
		}
		if last.Offset != 100 {
			t.Errorf("latest item should sit at offset 100, got %f", last.Offset)
		}
	})

	t.Run("single day collection keeps a nonzero span", func(t *testing.T) {
		coll := model.Collection{Tasks: []model.Task{
			{ID: "only", Status: model.StatusTodo, DueAt: due(2024, time.March, 5)},
		}}
		out := p.Project(projection.Input{Collection: coll})
		if out.Gantt.AxisDays < 1 {
			t.Errorf("axis collapsed: %d days", out.Gantt.AxisDays)
		}
		if out.Gantt.Rows[0].Offset != 0 {
			t.Errorf("sole item offset = %f", out.Gantt.Rows[0].Offset)
		}
	})

	t.Run("empty collection renders empty axis", func(t *testing.T) {
		out := p.Project(projection.Input{})
		if out.Gantt == nil || len(out.Gantt.Rows) != 0 {
			t.Fatal("expected empty gantt view")
		}
	})
}

func TestWeeklyProjection(t *testing.T) {
	grid := newGrid(t)
	p := projection.NewWeekly(grid, 1, 2)

	t.Run("groups by sunday start weeks", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: testCollection()})
		w := out.Weekly
		if w == nil {
			t.Fatal("no weekly output")
		}
		if len(w.Weeks) != 4 {
			t.Fatalf("expected 4 week groups, got %d", len(w.Weeks))
		}

		current := w.Weeks[1]
		if !current.IsCurrent || current.Label != "This Week" {
			t.Errorf("second group should be the current week: %+v", current)
		}
		if current.Start != "2024-03-10" || current.End != "2024-03-16" {
			t.Errorf("current week bounds %s..%s", current.Start, current.End)
		}
		// Four dated tasks and the milestone are all due 2024-03-10.
		if len(current.Tasks) != 4 {
			t.Errorf("expected 4 tasks this week, got %d", len(current.Tasks))
		}
		if len(current.Milestones) != 1 || current.Milestones[0].ID != "m1" {
			t.Errorf("milestone missing from current week: %+v", current.Milestones)
		}

		next := w.Weeks[2]
		if next.Label != "Next Week" {
			t.Errorf("third group label %q", next.Label)
		}
		if len(next.Tasks) != 1 || next.Tasks[0].ID != "t6" {
			t.Errorf("next week should carry t6: %+v", next.Tasks)
		}
	})

	t.Run("week offset shifts the window", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: testCollection(), WeekOffset: 1})
		w := out.Weekly
		// With offset 1, the first group is the current week.
		if !w.Weeks[0].IsCurrent {
			t.Errorf("expected first group to be current week at offset 1")
		}
	})

	t.Run("undated items land in the upcoming tail", func(t *testing.T) {
		out := p.Project(projection.Input{Collection: testCollection()})
		for _, week := range out.Weekly.Weeks {
			for _, task := range week.Tasks {
				if task.ID == "t5" {
					t.Errorf("undated task grouped into %s", week.Label)
				}
			}
			for _, m := range week.Milestones {
				if m.ID == "m2" {
					t.Errorf("undated milestone grouped into %s", week.Label)
				}
			}
		}
		up := out.Weekly.Upcoming
		if len(up.Tasks) != 1 || up.Tasks[0].ID != "t5" {
			t.Errorf("upcoming tail should carry t5: %+v", up.Tasks)
		}
		if len(up.Milestones) != 1 || up.Milestones[0].ID != "m2" {
			t.Errorf("upcoming tail should carry m2: %+v", up.Milestones)
		}
	})

	t.Run("far future items land in the upcoming tail", func(t *testing.T) {
		coll := model.Collection{Tasks: []model.Task{
			{ID: "far", Title: "far", Status: model.StatusTodo, DueAt: due(2024, time.June, 1)},
			{ID: "past", Title: "past", Status: model.StatusDone, DueAt: due(2024, time.January, 5)},
		}}
		out := p.Project(projection.Input{Collection: coll})
		up := out.Weekly.Upcoming
		if len(up.Tasks) != 1 || up.Tasks[0].ID != "far" {
			t.Errorf("only the future item belongs in the tail: %+v", up.Tasks)
		}
		for _, week := range out.Weekly.Weeks {
			if len(week.Tasks) != 0 {
				t.Errorf("out-of-window items must not join %s: %+v", week.Label, week.Tasks)
			}
		}
	})
}

func TestStatusCategoryMappingIsIdenticalAcrossViews(t *testing.T) {
	grid := newGrid(t)
	coll := model.Collection{Tasks: []model.Task{
		{ID: "a", Title: "a", Status: model.StatusDone, DueAt: due(2024, time.March, 11)},
		{ID: "b", Title: "b", Status: model.StatusInProgress, DueAt: due(2024, time.March, 12)},
		{ID: "c", Title: "c", Status: model.StatusTodo, DueAt: due(2024, time.March, 13)},
	}}
	want := map[string]model.Category{
		"a": model.CategorySuccess,
		"b": model.CategoryAttention,
		"c": model.CategoryNeutral,
	}

	got := map[model.View]map[string]model.Category{
		model.ViewCalendar: {},
		model.ViewGantt:    {},
		model.ViewWeekly:   {},
	}

	cal := projection.NewCalendar(grid, 2, 3).Project(projection.Input{Collection: coll, Year: 2024, Month: 2})
	for _, cell := range cal.Calendar.Cells {
		for _, task := range cell.Tasks {
			got[model.ViewCalendar][task.ID] = task.Category
		}
	}
	gantt := projection.NewGantt(grid).Project(projection.Input{Collection: coll})
	for _, row := range gantt.Gantt.Rows {
		got[model.ViewGantt][row.ID] = row.Category
	}
	weekly := projection.NewWeekly(grid, 1, 2).Project(projection.Input{Collection: coll})
	for _, week := range weekly.Weekly.Weeks {
		for _, task := range week.Tasks {
			got[model.ViewWeekly][task.ID] = task.Category
		}
	}

	for view, mapping := range got {
		for id, category := range want {
			if mapping[id] != category {
				t.Errorf("%s view maps %s to %q, want %q", view, id, mapping[id], category)
			}
		}
	}
}
