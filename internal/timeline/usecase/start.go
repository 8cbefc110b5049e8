package usecase

import (
	"context"

	"github.com/google/uuid"

	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline"
)

// Start creates a session and performs the single full collection fetch.
// A failed fetch is terminal for the session: it stays usable for state
// reads but never retries on its own.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope, input timeline.StartInput) (timeline.SessionOutput, error) {
	s := &session{
		userID: sc.UserID,
		state: timeline.ViewState{
			View:           model.DefaultView,
			NarrowViewport: uc.isNarrow(input.ViewportWidth),
		},
	}

	coll, err := uc.repo.FetchTimeline(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "Start: timeline fetch failed for user=%s: %v", sc.UserID, err)
		s.failed = true
	} else {
		s.coll = coll
	}

	sessionID := uuid.NewString()
	uc.sessions.Add(sessionID, s)

	uc.l.Infof(ctx, "Start: session=%s user=%s failed=%v tasks=%d milestones=%d",
		sessionID, sc.UserID, s.failed, len(s.coll.Tasks), len(s.coll.Milestones))

	return uc.sessionOutput(sessionID, s), nil
}

// Get returns the session's current state and summary.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, sessionID string) (timeline.SessionOutput, error) {
	s, err := uc.getSession(sc, sessionID)
	if err != nil {
		return timeline.SessionOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return uc.sessionOutput(sessionID, s), nil
}
