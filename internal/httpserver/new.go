package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	identityHTTP "personal-timeline/internal/identity/delivery/http"
	"personal-timeline/internal/middleware"
	timelineHTTP "personal-timeline/internal/timeline/delivery/http"
	"personal-timeline/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw              middleware.Middleware
	timelineHandler timelineHTTP.Handler
	identityHandler identityHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware      middleware.Middleware
	TimelineHandler timelineHTTP.Handler
	IdentityHandler identityHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		timelineHandler: cfg.TimelineHandler,
		identityHandler: cfg.IdentityHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.timelineHandler == nil {
		return errors.New("timeline handler is required")
	}
	if srv.identityHandler == nil {
		return errors.New("identity handler is required")
	}
	return nil
}
