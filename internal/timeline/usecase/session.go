package usecase

import (
	"sync"

	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline"
)

// session is the server-side state of one open timeline page. The mutex
// serializes every operation on the session, so at most one fetch is in
// flight per session at any time.
type session struct {
	mu sync.Mutex

	userID string
	state  timeline.ViewState
	coll   model.Collection
	failed bool
}

// getSession resolves a session id within the caller's scope. A session
// owned by another user is indistinguishable from a missing one.
func (uc *implUseCase) getSession(sc model.Scope, sessionID string) (*session, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok || s.userID != sc.UserID {
		return nil, timeline.ErrSessionNotFound
	}
	return s, nil
}

// sessionOutput snapshots the session. Callers hold s.mu.
func (uc *implUseCase) sessionOutput(sessionID string, s *session) timeline.SessionOutput {
	return timeline.SessionOutput{
		SessionID: sessionID,
		State:     s.state,
		Failed:    s.failed,
		Summary:   summarize(s.coll),
	}
}

// isNarrow applies the responsive breakpoint to a reported viewport width.
// An unreported width reads as wide.
func (uc *implUseCase) isNarrow(widthPX int) bool {
	return widthPX > 0 && widthPX < uc.cfg.NarrowBreakpointPX
}
