package timeline

import (
	"context"

	"personal-timeline/internal/model"
)

// UseCase defines the business logic interface for the timeline domain.
// A session is the server-side counterpart of one open timeline page:
// it owns the fetched collection, the active view and the task selection.
type UseCase interface {
	// Start creates a session for the user and performs the single full
	// collection fetch. A failed fetch still yields a session, permanently
	// marked failed, so the caller can render the failure.
	Start(ctx context.Context, sc model.Scope, input StartInput) (SessionOutput, error)

	// Get returns the current session state and summary.
	Get(ctx context.Context, sc model.Scope, sessionID string) (SessionOutput, error)

	// Render projects the held collection through the session's active view.
	// Bucket sets are recomputed fully on every call.
	Render(ctx context.Context, sc model.Scope, input RenderInput) (RenderOutput, error)

	// SwitchView transitions to an explicitly selected view. While the
	// viewport is narrow, gantt is unreachable and lands on weekly.
	SwitchView(ctx context.Context, sc model.Scope, input SwitchViewInput) (SessionOutput, error)

	// SetViewport records the reported viewport width and applies the forced
	// gantt-to-weekly downgrade when the viewport turns narrow.
	SetViewport(ctx context.Context, sc model.Scope, input SetViewportInput) (SessionOutput, error)

	// SelectTask opens the edit surface for a task in the held collection.
	SelectTask(ctx context.Context, sc model.Scope, input SelectTaskInput) (EditorOutput, error)

	// CloseEditor clears the task selection without touching the collection.
	CloseEditor(ctx context.Context, sc model.Scope, sessionID string) (SessionOutput, error)

	// UpdateTask saves the edit through the workspace service, clears the
	// selection and re-fetches the full collection. No optimistic patching:
	// the displayed state always reflects the server's last known truth.
	UpdateTask(ctx context.Context, sc model.Scope, input UpdateTaskInput) (SessionOutput, error)
}
