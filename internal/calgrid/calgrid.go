// Package calgrid builds calendar-day buckets and distributes tasks and
// milestones onto them. Everything here is pure computation: generating a
// grid and assigning items never fails and is safe to run repeatedly.
package calgrid

import (
	"fmt"
	"time"

	"personal-timeline/internal/model"
)

// GridDays is the size of a month grid: 6 rows of 7 days.
const GridDays = 42

// DaysPerWeek is the grid column count.
const DaysPerWeek = 7

// DayKeyFormat is the calendar-day key used for bucket lookup.
const DayKeyFormat = "2006-01-02"

// DayBucket is one calendar day's aggregation slot.
type DayBucket struct {
	Date            time.Time // midnight in the builder's timezone
	Tasks           []model.Task
	Milestones      []model.Milestone
	InCurrentPeriod bool // belongs to the viewed month, not spillover
	IsToday         bool
}

// Builder generates day buckets for a fixed IANA timezone.
type Builder struct {
	location *time.Location
	now      func() time.Time
}

// NewBuilder creates a bucket builder for the given IANA timezone string,
// e.g. "Europe/Berlin".
func NewBuilder(timezone string) (*Builder, error) {
	return NewBuilderWithClock(timezone, time.Now)
}

// NewBuilderWithClock is NewBuilder with an injectable clock. The clock
// decides which bucket gets the IsToday flag and where weeks anchor.
func NewBuilderWithClock(timezone string, now func() time.Time) (*Builder, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Builder{location: loc, now: now}, nil
}

// MonthGrid produces exactly GridDays empty buckets covering the target month:
// trailing days of the previous month up to the weekday of the 1st (Sunday=0),
// every day of the month, then leading days of the next month. The month index
// is zero-based; out-of-range values normalize by ordinary date arithmetic,
// so month 12 is January of year+1 and month -1 is December of year-1.
func (b *Builder) MonthGrid(year, month int) []DayBucket {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, b.location)
	daysInMonth := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, b.location).Day()

	leading := int(first.Weekday())
	start := first.AddDate(0, 0, -leading)
	today := b.Today()

	buckets := make([]DayBucket, 0, GridDays)
	for i := 0; i < GridDays; i++ {
		date := start.AddDate(0, 0, i)
		buckets = append(buckets, DayBucket{
			Date:            date,
			InCurrentPeriod: i >= leading && i < leading+daysInMonth,
			IsToday:         date.Equal(today),
		})
	}
	return buckets
}

// Assign distributes tasks and milestones into the buckets by calendar day.
// Items without a due date, or due outside the bucket window, are left off
// this grid; that is the windowing policy, not data loss. Bucket contents are
// rebuilt from scratch, so assigning twice yields identical results.
// O(len(buckets) + len(tasks) + len(milestones)).
func (b *Builder) Assign(buckets []DayBucket, tasks []model.Task, milestones []model.Milestone) []DayBucket {
	index := make(map[string]int, len(buckets))
	for i := range buckets {
		buckets[i].Tasks = nil
		buckets[i].Milestones = nil
		index[buckets[i].Date.Format(DayKeyFormat)] = i
	}

	for _, t := range tasks {
		if t.DueAt == nil {
			continue
		}
		if i, ok := index[b.DayKey(*t.DueAt)]; ok {
			buckets[i].Tasks = append(buckets[i].Tasks, t)
		}
	}
	for _, m := range milestones {
		if m.DueAt == nil {
			continue
		}
		if i, ok := index[b.DayKey(*m.DueAt)]; ok {
			buckets[i].Milestones = append(buckets[i].Milestones, m)
		}
	}
	return buckets
}

// StartOfDay returns midnight of t's calendar day in the builder's timezone.
func (b *Builder) StartOfDay(t time.Time) time.Time {
	t = t.In(b.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, b.location)
}

// DayKey returns the calendar-day lookup key for t in the builder's timezone.
func (b *Builder) DayKey(t time.Time) string {
	return t.In(b.location).Format(DayKeyFormat)
}

// Today returns midnight of the current day on the builder's clock.
func (b *Builder) Today() time.Time {
	return b.StartOfDay(b.now())
}

// WeekStart returns midnight of the Sunday starting t's week. Weeks are
// Sunday-based everywhere, matching the calendar grid's leading column.
func (b *Builder) WeekStart(t time.Time) time.Time {
	day := b.StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// Location exposes the builder's timezone for formatting at the edges.
func (b *Builder) Location() *time.Location {
	return b.location
}
