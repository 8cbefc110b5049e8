package timeline

import "errors"

var (
	// ErrSessionNotFound means the session expired or never existed.
	ErrSessionNotFound = errors.New("timeline session not found")

	// ErrTimelineUnavailable is the terminal state of a session whose
	// collection fetch failed. There is no automatic retry; the user
	// starts a new session.
	ErrTimelineUnavailable = errors.New("timeline collection could not be loaded")

	// ErrTaskNotFound means the task id is not in the held collection.
	ErrTaskNotFound = errors.New("task not found in timeline")

	// ErrUnknownView means the requested view is not calendar, gantt or weekly.
	ErrUnknownView = errors.New("unknown timeline view")
)
