package repository

import (
	"context"

	"personal-timeline/internal/model"
)

// Repository is the composed interface for the timeline domain's data source.
type Repository interface {
	TimelineRepository
}

// TimelineRepository is the boundary to the workspace service that owns
// team/project/task persistence. The timeline core never stores anything
// itself; it fetches the full authorized collection and pushes edits back.
type TimelineRepository interface {
	// FetchTimeline returns the user's full task/milestone collection.
	// Idempotent and safe to call repeatedly.
	FetchTimeline(ctx context.Context, sc model.Scope) (model.Collection, error)

	// UpdateTask applies a partial task edit upstream.
	UpdateTask(ctx context.Context, sc model.Scope, opt UpdateTaskOptions) error
}
