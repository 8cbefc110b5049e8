package usecase

import (
	"context"
	"fmt"

	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline"
	"personal-timeline/internal/timeline/repository"
	"personal-timeline/pkg/notify"
)

// SelectTask opens the edit surface for a task in the held collection.
func (uc *implUseCase) SelectTask(ctx context.Context, sc model.Scope, input timeline.SelectTaskInput) (timeline.EditorOutput, error) {
	s, err := uc.getSession(sc, input.SessionID)
	if err != nil {
		return timeline.EditorOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failed {
		return timeline.EditorOutput{}, timeline.ErrTimelineUnavailable
	}

	t, ok := findTask(s.coll, input.TaskID)
	if !ok {
		return timeline.EditorOutput{}, timeline.ErrTaskNotFound
	}
	s.state.SelectedTaskID = input.TaskID

	return timeline.EditorOutput{SessionID: input.SessionID, Task: t}, nil
}

// CloseEditor clears the task selection. The collection is untouched.
func (uc *implUseCase) CloseEditor(ctx context.Context, sc model.Scope, sessionID string) (timeline.SessionOutput, error) {
	s, err := uc.getSession(sc, sessionID)
	if err != nil {
		return timeline.SessionOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SelectedTaskID = ""
	return uc.sessionOutput(sessionID, s), nil
}

// UpdateTask saves the edit upstream, clears the selection and re-fetches
// the whole collection. There is no optimistic patching: after an edit the
// session shows only what the workspace service confirmed.
func (uc *implUseCase) UpdateTask(ctx context.Context, sc model.Scope, input timeline.UpdateTaskInput) (timeline.SessionOutput, error) {
	s, err := uc.getSession(sc, input.SessionID)
	if err != nil {
		return timeline.SessionOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failed {
		return timeline.SessionOutput{}, timeline.ErrTimelineUnavailable
	}
	if _, ok := findTask(s.coll, input.TaskID); !ok {
		return timeline.SessionOutput{}, timeline.ErrTaskNotFound
	}

	err = uc.repo.UpdateTask(ctx, sc, repository.UpdateTaskOptions{
		TaskID: input.TaskID,
		Title:  input.Title,
		Status: input.Status,
		DueAt:  input.DueAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "UpdateTask: save failed session=%s task=%s: %v", input.SessionID, input.TaskID, err)
		return timeline.SessionOutput{}, fmt.Errorf("failed to update task: %w", err)
	}

	s.state.SelectedTaskID = ""

	coll, ferr := uc.repo.FetchTimeline(ctx, sc)
	if ferr != nil {
		// The save landed but the re-fetch did not; the session can no
		// longer show server truth, so it goes terminal like a failed start.
		uc.l.Errorf(ctx, "UpdateTask: re-fetch failed session=%s: %v", input.SessionID, ferr)
		s.failed = true
		return uc.sessionOutput(input.SessionID, s), nil
	}
	s.coll = coll

	uc.notifyUpdated(ctx, sc, input)

	return uc.sessionOutput(input.SessionID, s), nil
}

// notifyUpdated sends the post-save notification. Completing a task gets
// the celebratory variant. Delivery failures are logged, never surfaced.
func (uc *implUseCase) notifyUpdated(ctx context.Context, sc model.Scope, input timeline.UpdateTaskInput) {
	event := notify.Event{
		UserID:  sc.UserID,
		Kind:    "success",
		Message: "Task updated",
	}
	if model.Status(input.Status) == model.StatusDone {
		event.Kind = "celebrate"
		event.Message = "Task completed"
	}
	if err := uc.notifier.Send(ctx, event); err != nil {
		uc.l.Warnf(ctx, "UpdateTask: notification failed for user=%s (non-fatal): %v", sc.UserID, err)
	}
}

func findTask(coll model.Collection, taskID string) (model.Task, bool) {
	for _, t := range coll.Tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return model.Task{}, false
}
