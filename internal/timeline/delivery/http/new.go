package http

import (
	"github.com/gin-gonic/gin"

	"personal-timeline/internal/timeline"
	"personal-timeline/pkg/log"
)

// Handler is the public interface for the timeline HTTP delivery layer.
type Handler interface {
	Start(c *gin.Context)
	Get(c *gin.Context)
	Render(c *gin.Context)
	SwitchView(c *gin.Context)
	SetViewport(c *gin.Context)
	SelectTask(c *gin.Context)
	CloseEditor(c *gin.Context)
	UpdateTask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc timeline.UseCase
}

// New creates a new HTTP handler for the timeline domain.
func New(l log.Logger, uc timeline.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
