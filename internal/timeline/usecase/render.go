package usecase

import (
	"context"

	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline"
	"personal-timeline/internal/timeline/projection"
)

// Render projects the held collection through the session's active view.
// Buckets are recomputed from scratch on every call; nothing is cached
// between renders.
func (uc *implUseCase) Render(ctx context.Context, sc model.Scope, input timeline.RenderInput) (timeline.RenderOutput, error) {
	s, err := uc.getSession(sc, input.SessionID)
	if err != nil {
		return timeline.RenderOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failed {
		return timeline.RenderOutput{}, timeline.ErrTimelineUnavailable
	}

	p, ok := uc.projections[s.state.View]
	if !ok {
		return timeline.RenderOutput{}, timeline.ErrUnknownView
	}

	in := projection.Input{
		Collection: s.coll,
		Narrow:     s.state.NarrowViewport,
		WeekOffset: input.WeekOffset,
	}
	if input.Anchor != nil {
		in.Year, in.Month = input.Anchor.Year, input.Anchor.Month
	} else {
		today := uc.grid.Today()
		in.Year, in.Month = today.Year(), int(today.Month())-1
	}

	uc.l.Debugf(ctx, "Render: session=%s view=%s narrow=%v", input.SessionID, s.state.View, s.state.NarrowViewport)

	return timeline.RenderOutput{
		SessionID: input.SessionID,
		State:     s.state,
		Summary:   summarize(s.coll),
		View:      p.Project(in),
	}, nil
}

// SwitchView transitions to an explicitly selected view. While the
// viewport is narrow, gantt lands on weekly instead; the downgrade is
// deterministic and never round-trips through the unavailable view.
func (uc *implUseCase) SwitchView(ctx context.Context, sc model.Scope, input timeline.SwitchViewInput) (timeline.SessionOutput, error) {
	if !input.View.Valid() {
		return timeline.SessionOutput{}, timeline.ErrUnknownView
	}

	s, err := uc.getSession(sc, input.SessionID)
	if err != nil {
		return timeline.SessionOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := input.View
	if s.state.NarrowViewport && target == model.ViewGantt {
		uc.l.Infof(ctx, "SwitchView: session=%s narrow viewport, gantt downgraded to weekly", input.SessionID)
		target = model.ViewWeekly
	}
	s.state.View = target

	return uc.sessionOutput(input.SessionID, s), nil
}

// SetViewport records the reported viewport width. Turning narrow while
// on gantt forces weekly; widening again does not restore gantt, the
// user re-selects it.
func (uc *implUseCase) SetViewport(ctx context.Context, sc model.Scope, input timeline.SetViewportInput) (timeline.SessionOutput, error) {
	s, err := uc.getSession(sc, input.SessionID)
	if err != nil {
		return timeline.SessionOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.NarrowViewport = uc.isNarrow(input.WidthPX)
	if s.state.NarrowViewport && s.state.View == model.ViewGantt {
		uc.l.Infof(ctx, "SetViewport: session=%s narrowed to %dpx, gantt downgraded to weekly", input.SessionID, input.WidthPX)
		s.state.View = model.ViewWeekly
	}

	return uc.sessionOutput(input.SessionID, s), nil
}
