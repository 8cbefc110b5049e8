package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processStartReq binds the start session request body.
func (h *handler) processStartReq(c *gin.Context) (startReq, error) {
	var req startReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}

// processRenderReq binds the render query parameters + URI param.
func (h *handler) processRenderReq(c *gin.Context) (renderReq, error) {
	var req renderReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, fmt.Errorf("session id is required")
	}
	return req, req.validate()
}

// processSwitchViewReq binds the switch view request body + URI param.
func (h *handler) processSwitchViewReq(c *gin.Context) (switchViewReq, error) {
	var req switchViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, fmt.Errorf("session id is required")
	}
	return req, nil
}

// processViewportReq binds the viewport request body + URI param.
func (h *handler) processViewportReq(c *gin.Context) (viewportReq, error) {
	var req viewportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, fmt.Errorf("session id is required")
	}
	return req, nil
}

// processSelectTaskReq binds the select task request body + URI param.
func (h *handler) processSelectTaskReq(c *gin.Context) (selectTaskReq, error) {
	var req selectTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, fmt.Errorf("session id is required")
	}
	return req, nil
}

// processUpdateTaskReq binds the update task request body + URI params.
func (h *handler) processUpdateTaskReq(c *gin.Context) (updateTaskReq, error) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	req.TaskID = c.Param("taskId")
	if req.SessionID == "" || req.TaskID == "" {
		return req, fmt.Errorf("session id and task id are required")
	}
	return req, req.validate()
}
