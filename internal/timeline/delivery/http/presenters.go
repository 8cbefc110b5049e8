package http

import (
	"fmt"
	"time"

	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline"
	"personal-timeline/internal/timeline/projection"
)

// --- Request DTOs ---

type startReq struct {
	ViewportWidth int `json:"viewport_width" binding:"omitempty,min=0"`
}

func (r startReq) toInput() timeline.StartInput {
	return timeline.StartInput{ViewportWidth: r.ViewportWidth}
}

// ---

// renderReq addresses the rendered window. Year and month travel together;
// a request with only one of them is malformed.
type renderReq struct {
	SessionID  string `form:"-"`
	Year       *int   `form:"year"`
	Month      *int   `form:"month"`
	WeekOffset int    `form:"week_offset"`
}

func (r renderReq) validate() error {
	if (r.Year == nil) != (r.Month == nil) {
		return fmt.Errorf("year and month must be provided together")
	}
	return nil
}

func (r renderReq) toInput() timeline.RenderInput {
	in := timeline.RenderInput{
		SessionID:  r.SessionID,
		WeekOffset: r.WeekOffset,
	}
	if r.Year != nil && r.Month != nil {
		in.Anchor = &timeline.MonthAnchor{Year: *r.Year, Month: *r.Month}
	}
	return in
}

// ---

type switchViewReq struct {
	SessionID string `json:"-"`
	View      string `json:"view" binding:"required"`
}

func (r switchViewReq) toInput() timeline.SwitchViewInput {
	return timeline.SwitchViewInput{
		SessionID: r.SessionID,
		View:      model.View(r.View),
	}
}

// ---

type viewportReq struct {
	SessionID string `json:"-"`
	WidthPX   int    `json:"width_px" binding:"required,min=1"`
}

func (r viewportReq) toInput() timeline.SetViewportInput {
	return timeline.SetViewportInput{
		SessionID: r.SessionID,
		WidthPX:   r.WidthPX,
	}
}

// ---

type selectTaskReq struct {
	SessionID string `json:"-"`
	TaskID    string `json:"task_id" binding:"required"`
}

func (r selectTaskReq) toInput() timeline.SelectTaskInput {
	return timeline.SelectTaskInput{
		SessionID: r.SessionID,
		TaskID:    r.TaskID,
	}
}

// ---

type updateTaskReq struct {
	SessionID string `json:"-"`
	TaskID    string `json:"-"`
	Title     string `json:"title"  binding:"omitempty,min=1,max=255"`
	Status    string `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	DueAt     string `json:"due_at" binding:"omitempty"`
}

func (r updateTaskReq) validate() error {
	if r.DueAt != "" {
		if _, err := time.Parse(time.RFC3339, r.DueAt); err != nil {
			return fmt.Errorf("due_at must be RFC3339: %w", err)
		}
	}
	return nil
}

func (r updateTaskReq) toInput() timeline.UpdateTaskInput {
	in := timeline.UpdateTaskInput{
		SessionID: r.SessionID,
		TaskID:    r.TaskID,
		Title:     r.Title,
		Status:    r.Status,
	}
	if r.DueAt != "" {
		// validate() already proved this parses.
		t, _ := time.Parse(time.RFC3339, r.DueAt)
		in.DueAt = &t
	}
	return in
}

// --- Response DTOs ---

type summaryResp struct {
	TotalTasks int `json:"total_tasks"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
	Milestones int `json:"milestones"`
}

func newSummaryResp(s timeline.Summary) summaryResp {
	return summaryResp{
		TotalTasks: s.TotalTasks,
		InProgress: s.InProgress,
		Done:       s.Done,
		Milestones: s.Milestones,
	}
}

type sessionResp struct {
	SessionID      string      `json:"session_id"`
	View           string      `json:"view"`
	SelectedTaskID string      `json:"selected_task_id,omitempty"`
	NarrowViewport bool        `json:"narrow_viewport"`
	Failed         bool        `json:"failed"`
	Summary        summaryResp `json:"summary"`
}

func (h *handler) newSessionResp(out timeline.SessionOutput) sessionResp {
	return sessionResp{
		SessionID:      out.SessionID,
		View:           string(out.State.View),
		SelectedTaskID: out.State.SelectedTaskID,
		NarrowViewport: out.State.NarrowViewport,
		Failed:         out.Failed,
		Summary:        newSummaryResp(out.Summary),
	}
}

type renderResp struct {
	SessionID string            `json:"session_id"`
	View      string            `json:"view"`
	Summary   summaryResp       `json:"summary"`
	Layout    projection.Output `json:"layout"`
}

func (h *handler) newRenderResp(out timeline.RenderOutput) renderResp {
	return renderResp{
		SessionID: out.SessionID,
		View:      string(out.State.View),
		Summary:   newSummaryResp(out.Summary),
		Layout:    out.View,
	}
}

type taskResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Category string `json:"category"`
	DueAt    string `json:"due_at,omitempty"`
}

type editorResp struct {
	SessionID string   `json:"session_id"`
	Task      taskResp `json:"task"`
}

func (h *handler) newEditorResp(out timeline.EditorOutput) editorResp {
	t := taskResp{
		ID:       out.Task.ID,
		Title:    out.Task.Title,
		Status:   string(out.Task.Status),
		Category: string(out.Task.Status.Category()),
	}
	if out.Task.DueAt != nil {
		t.DueAt = out.Task.DueAt.Format(time.RFC3339)
	}
	return editorResp{SessionID: out.SessionID, Task: t}
}
