package calgrid

import (
	"testing"
	"time"

	"personal-timeline/internal/model"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestBuilder(t *testing.T, nowRFC3339 string) *Builder {
	t.Helper()
	b, err := NewBuilderWithClock("UTC", fixedClock(nowRFC3339))
	if err != nil {
		t.Fatalf("NewBuilderWithClock: %v", err)
	}
	return b
}

func datePtr(b *Builder, y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 15, 4, 5, 0, b.location)
	return &t
}

func TestMonthGrid_March2024(t *testing.T) {
	// March 2024 starts on a Friday and has 31 days:
	// 5 leading February days + 31 + 6 trailing April days = 42.
	b := newTestBuilder(t, "2024-03-15T10:00:00Z")
	buckets := b.MonthGrid(2024, 2)

	if len(buckets) != GridDays {
		t.Fatalf("expected %d buckets, got %d", GridDays, len(buckets))
	}

	leading := 0
	for _, bk := range buckets {
		if bk.InCurrentPeriod {
			break
		}
		leading++
	}
	if leading != 5 {
		// The 1st of March 2024 is a Friday, weekday index 5.
		t.Errorf("expected 5 leading spillover days, got %d", leading)
	}

	current := 0
	for _, bk := range buckets {
		if bk.InCurrentPeriod {
			current++
		}
	}
	if current != 31 {
		t.Errorf("expected 31 current-month days, got %d", current)
	}

	if got := buckets[0].Date.Format(DayKeyFormat); got != "2024-02-25" {
		t.Errorf("grid should start on 2024-02-25, got %s", got)
	}
	if got := buckets[GridDays-1].Date.Format(DayKeyFormat); got != "2024-04-06" {
		t.Errorf("grid should end on 2024-04-06, got %s", got)
	}
}

func TestMonthGrid_ContiguousAndToday(t *testing.T) {
	b := newTestBuilder(t, "2024-03-15T23:59:59Z")
	buckets := b.MonthGrid(2024, 2)

	for i := 1; i < len(buckets); i++ {
		want := buckets[i-1].Date.AddDate(0, 0, 1)
		if !buckets[i].Date.Equal(want) {
			t.Fatalf("bucket %d not contiguous: %v then %v", i, buckets[i-1].Date, buckets[i].Date)
		}
	}

	todayCount := 0
	for _, bk := range buckets {
		if bk.IsToday {
			todayCount++
			if got := bk.Date.Format(DayKeyFormat); got != "2024-03-15" {
				t.Errorf("IsToday on wrong bucket: %s", got)
			}
		}
	}
	if todayCount != 1 {
		t.Errorf("expected exactly one IsToday bucket, got %d", todayCount)
	}
}

func TestMonthGrid_MonthOverflowNormalizes(t *testing.T) {
	b := newTestBuilder(t, "2024-06-01T00:00:00Z")

	t.Run("month 12 is January next year", func(t *testing.T) {
		got := b.MonthGrid(2024, 12)
		want := b.MonthGrid(2025, 0)
		for i := range got {
			if !got[i].Date.Equal(want[i].Date) {
				t.Fatalf("bucket %d differs: %v vs %v", i, got[i].Date, want[i].Date)
			}
		}
	})

	t.Run("month -1 is December previous year", func(t *testing.T) {
		got := b.MonthGrid(2024, -1)
		want := b.MonthGrid(2023, 11)
		for i := range got {
			if !got[i].Date.Equal(want[i].Date) {
				t.Fatalf("bucket %d differs: %v vs %v", i, got[i].Date, want[i].Date)
			}
		}
	})

	t.Run("always 42 buckets", func(t *testing.T) {
		for month := -14; month <= 26; month++ {
			if got := len(b.MonthGrid(2024, month)); got != GridDays {
				t.Fatalf("month %d: expected %d buckets, got %d", month, GridDays, got)
			}
		}
	})
}

func TestAssign(t *testing.T) {
	b := newTestBuilder(t, "2024-03-15T10:00:00Z")

	tasks := []model.Task{
		{ID: "t1", Title: "first", Status: model.StatusTodo, DueAt: datePtr(b, 2024, time.March, 10)},
		{ID: "t2", Title: "second", Status: model.StatusDone, DueAt: datePtr(b, 2024, time.March, 10)},
		{ID: "t3", Title: "no due date", Status: model.StatusInProgress},
		{ID: "t4", Title: "outside window", Status: model.StatusTodo, DueAt: datePtr(b, 2024, time.June, 1)},
	}
	milestones := []model.Milestone{
		{ID: "m1", Title: "launch", DueAt: datePtr(b, 2024, time.March, 10)},
		{ID: "m2", Title: "undated"},
	}

	buckets := b.Assign(b.MonthGrid(2024, 2), tasks, milestones)

	var day *DayBucket
	placedTasks, placedMilestones := 0, 0
	for i := range buckets {
		placedTasks += len(buckets[i].Tasks)
		placedMilestones += len(buckets[i].Milestones)
		if buckets[i].Date.Format(DayKeyFormat) == "2024-03-10" {
			day = &buckets[i]
		}
	}

	if placedTasks != 2 {
		t.Errorf("expected 2 placed tasks, got %d", placedTasks)
	}
	if placedMilestones != 1 {
		t.Errorf("expected 1 placed milestone, got %d", placedMilestones)
	}
	if day == nil {
		t.Fatal("2024-03-10 bucket missing")
	}
	if len(day.Tasks) != 2 || day.Tasks[0].ID != "t1" || day.Tasks[1].ID != "t2" {
		t.Errorf("tasks not in source collection order: %+v", day.Tasks)
	}
	if len(day.Milestones) != 1 || day.Milestones[0].ID != "m1" {
		t.Errorf("milestone misplaced: %+v", day.Milestones)
	}
}

func TestAssign_Idempotent(t *testing.T) {
	b := newTestBuilder(t, "2024-03-15T10:00:00Z")
	tasks := []model.Task{
		{ID: "t1", Status: model.StatusTodo, DueAt: datePtr(b, 2024, time.March, 5)},
	}

	buckets := b.MonthGrid(2024, 2)
	buckets = b.Assign(buckets, tasks, nil)
	buckets = b.Assign(buckets, tasks, nil)

	total := 0
	for _, bk := range buckets {
		total += len(bk.Tasks)
	}
	if total != 1 {
		t.Errorf("re-assignment duplicated items: %d placed", total)
	}
}

func TestAssign_SpilloverDaysReceiveItems(t *testing.T) {
	// An item due on a trailing-April day of the March grid still lands
	// in that spillover bucket; the window is the 42 days, not the month.
	b := newTestBuilder(t, "2024-03-15T10:00:00Z")
	tasks := []model.Task{
		{ID: "t1", Status: model.StatusTodo, DueAt: datePtr(b, 2024, time.April, 3)},
	}

	buckets := b.Assign(b.MonthGrid(2024, 2), tasks, nil)
	for _, bk := range buckets {
		if bk.Date.Format(DayKeyFormat) == "2024-04-03" {
			if len(bk.Tasks) != 1 {
				t.Errorf("spillover bucket should hold the task, got %d", len(bk.Tasks))
			}
			if bk.InCurrentPeriod {
				t.Error("april day must not be flagged as current period in march grid")
			}
			return
		}
	}
	t.Fatal("2024-04-03 bucket missing")
}

func TestWeekStart_SundayBased(t *testing.T) {
	b := newTestBuilder(t, "2024-03-15T10:00:00Z")

	cases := []struct{ in, want string }{
		{"2024-03-15", "2024-03-10"}, // Friday -> previous Sunday
		{"2024-03-10", "2024-03-10"}, // Sunday is its own week start
		{"2024-03-16", "2024-03-10"}, // Saturday closes the week
	}
	for _, tc := range cases {
		in, _ := time.ParseInLocation(DayKeyFormat, tc.in, b.location)
		if got := b.WeekStart(in).Format(DayKeyFormat); got != tc.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
