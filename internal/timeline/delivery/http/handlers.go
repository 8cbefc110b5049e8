package http

import (
	"github.com/gin-gonic/gin"

	"personal-timeline/internal/middleware"
	"personal-timeline/pkg/response"
)

// Start godoc
// @Summary     Start a timeline session
// @Description Creates a session for the caller and fetches the full task/milestone collection once. A failed fetch still creates the session, marked failed.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body startReq false "Viewport hint"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/sessions [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Start(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Get godoc
// @Summary     Get session state
// @Description Returns the session's current view state and summary counts.
// @Tags        Timeline
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/timeline/sessions/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.Get(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Render godoc
// @Summary     Render the active view
// @Description Projects the held collection through the session's active view. Year and month (zero-based) anchor the calendar; week_offset shifts the weekly window.
// @Tags        Timeline
// @Produce     json
// @Param       id          path  string true  "Session ID"
// @Param       year        query int    false "Calendar anchor year"
// @Param       month       query int    false "Calendar anchor month, zero-based"
// @Param       week_offset query int    false "Weekly window offset"
// @Success     200 {object} renderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Timeline unavailable"
// @Router      /api/v1/timeline/sessions/{id}/view [GET]
func (h *handler) Render(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processRenderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Render(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Render: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRenderResp(output))
}

// SwitchView godoc
// @Summary     Switch the active view
// @Description Transitions to calendar, gantt or weekly. On a narrow viewport a gantt request lands on weekly.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Session ID"
// @Param       body body switchViewReq true "Target view"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/timeline/sessions/{id}/view [PUT]
func (h *handler) SwitchView(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSwitchViewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SwitchView(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SwitchView: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// SetViewport godoc
// @Summary     Report the viewport width
// @Description Records the client viewport. Narrowing below the breakpoint while on gantt forces the weekly view.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Session ID"
// @Param       body body viewportReq true "Viewport width"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/timeline/sessions/{id}/viewport [PUT]
func (h *handler) SetViewport(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processViewportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetViewport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetViewport: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// SelectTask godoc
// @Summary     Select a task for editing
// @Description Opens the edit surface for a task in the held collection and returns its editable fields.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Session ID"
// @Param       body body selectTaskReq true "Task to select"
// @Success     200 {object} editorResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Timeline unavailable"
// @Router      /api/v1/timeline/sessions/{id}/selection [POST]
func (h *handler) SelectTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSelectTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SelectTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SelectTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEditorResp(output))
}

// CloseEditor godoc
// @Summary     Close the editor
// @Description Clears the task selection without touching the collection.
// @Tags        Timeline
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/timeline/sessions/{id}/selection [DELETE]
func (h *handler) CloseEditor(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.CloseEditor(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.CloseEditor: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// UpdateTask godoc
// @Summary     Update a task
// @Description Saves the edit upstream, clears the selection and re-fetches the whole collection. All fields are optional (partial update).
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       id     path string        true "Session ID"
// @Param       taskId path string        true "Task ID"
// @Param       body   body updateTaskReq true "Fields to update"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/sessions/{id}/tasks/{taskId} [PUT]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}
