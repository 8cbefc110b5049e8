package usecase_test

import (
	"context"
	"testing"
	"time"

	"personal-timeline/internal/calgrid"
	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline"
	"personal-timeline/internal/timeline/projection"
	"personal-timeline/internal/timeline/repository"
	"personal-timeline/internal/timeline/usecase"
	"personal-timeline/pkg/notify"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	fetchFunc  func() (model.Collection, error)
	updateFunc func(opt repository.UpdateTaskOptions) error

	fetchCalls  int
	updateCalls int
	lastUpdate  repository.UpdateTaskOptions
}

func (m *mockRepo) FetchTimeline(ctx context.Context, sc model.Scope) (model.Collection, error) {
	m.fetchCalls++
	if m.fetchFunc != nil {
		return m.fetchFunc()
	}
	return model.Collection{}, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, sc model.Scope, opt repository.UpdateTaskOptions) error {
	m.updateCalls++
	m.lastUpdate = opt
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return nil
}

type mockNotifier struct {
	events []notify.Event
}

func (m *mockNotifier) Send(ctx context.Context, event notify.Event) error {
	m.events = append(m.events, event)
	return nil
}

// Friday 2024-03-15, same fixed clock the projection tests use.
func fixedClock() time.Time {
	return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func newTestUseCase(t *testing.T, repo repository.Repository, n notify.Notifier) timeline.UseCase {
	t.Helper()
	grid, err := calgrid.NewBuilderWithClock("UTC", fixedClock)
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	return usecase.New(&mockLogger{}, repo, n, grid,
		[]projection.Projection{
			projection.NewCalendar(grid, 2, 3),
			projection.NewGantt(grid),
			projection.NewWeekly(grid, 1, 2),
		},
		usecase.Config{
			SessionTTL:         time.Minute,
			SessionCapacity:    16,
			NarrowBreakpointPX: 768,
		})
}

func due(t time.Time) *time.Time { return &t }

func sampleCollection() model.Collection {
	return model.Collection{
		Tasks: []model.Task{
			{ID: "t1", Title: "write report", Status: model.StatusInProgress, DueAt: due(time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC))},
			{ID: "t2", Title: "review slides", Status: model.StatusTodo, DueAt: due(time.Date(2024, time.March, 14, 9, 0, 0, 0, time.UTC))},
			{ID: "t3", Title: "ship build", Status: model.StatusDone, DueAt: nil},
		},
		Milestones: []model.Milestone{
			{ID: "m1", Title: "demo day", DueAt: due(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))},
		},
	}
}
