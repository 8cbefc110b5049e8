package workspace

import (
	"context"
	"time"

	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline/repository"
	"personal-timeline/pkg/log"
)

type implRepository struct {
	client *Client
	l      log.Logger
}

// New creates the workspace-backed timeline repository.
func New(client *Client, l log.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

// FetchTimeline returns the full collection for the scope's user.
func (r *implRepository) FetchTimeline(ctx context.Context, sc model.Scope) (model.Collection, error) {
	resp, err := r.client.GetTimeline(ctx, sc.UserID)
	if err != nil {
		return model.Collection{}, err
	}

	coll := model.Collection{
		Tasks:      make([]model.Task, 0, len(resp.Tasks)),
		Milestones: make([]model.Milestone, 0, len(resp.Milestones)),
	}
	for _, t := range resp.Tasks {
		coll.Tasks = append(coll.Tasks, model.Task{
			ID:     t.ID,
			Title:  t.Title,
			Status: model.ParseStatus(t.Status),
			DueAt:  r.parseDue(ctx, t.ID, t.DueAt),
		})
	}
	for _, m := range resp.Milestones {
		coll.Milestones = append(coll.Milestones, model.Milestone{
			ID:    m.ID,
			Title: m.Title,
			DueAt: r.parseDue(ctx, m.ID, m.DueAt),
		})
	}
	return coll, nil
}

// UpdateTask applies a partial edit upstream.
func (r *implRepository) UpdateTask(ctx context.Context, sc model.Scope, opt repository.UpdateTaskOptions) error {
	req := updateTaskRequest{
		Title:  opt.Title,
		Status: opt.Status,
	}
	if opt.DueAt != nil {
		req.DueAt = opt.DueAt.Format(time.RFC3339)
	}
	return r.client.PatchTask(ctx, sc.UserID, opt.TaskID, req)
}

// parseDue turns an RFC3339 due date into a time, or nil for empty and
// malformed values. A bad date keeps the item in summaries and off grids;
// it never fails the fetch.
func (r *implRepository) parseDue(ctx context.Context, itemID, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		r.l.Warnf(ctx, "FetchTimeline: unparseable due_at %q on item %s, treating as undated", raw, itemID)
		return nil
	}
	return &t
}
