package repository

import "time"

// UpdateTaskOptions holds parameters for a partial task update.
// Zero-valued fields keep the upstream value.
type UpdateTaskOptions struct {
	TaskID string
	Title  string
	Status string
	DueAt  *time.Time
}
