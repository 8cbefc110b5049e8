package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/oauth2"

	"personal-timeline/config"
	_ "personal-timeline/docs" // Swagger docs
	"personal-timeline/internal/calgrid"
	"personal-timeline/internal/httpserver"
	identityHTTP "personal-timeline/internal/identity/delivery/http"
	identityUC "personal-timeline/internal/identity/usecase"
	"personal-timeline/internal/middleware"
	timelineHTTP "personal-timeline/internal/timeline/delivery/http"
	"personal-timeline/internal/timeline/projection"
	workspaceRepo "personal-timeline/internal/timeline/repository/workspace"
	timelineUC "personal-timeline/internal/timeline/usecase"
	"personal-timeline/pkg/log"
	"personal-timeline/pkg/notify"
)

// @title       Personal Timeline API
// @description Timeline aggregation and multi-view projection over a workspace task service.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Timeline...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Workspace URL: %s", cfg.Workspace.URL)

	// 3. Calendar grid builder
	grid, err := calgrid.NewBuilder(cfg.Timeline.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timeline.Timezone, err)
		grid, _ = calgrid.NewBuilder("UTC")
	}

	// 4. Workspace repository
	workspaceClient := workspaceRepo.NewClient(cfg.Workspace.URL, cfg.Workspace.ServiceToken)
	timelineRepo := workspaceRepo.New(workspaceClient, logger)

	// 5. Notifications (optional)
	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Notify.WebhookURL)
		logger.Infof(ctx, "Notification webhook configured")
	}

	// 6. Identity domain
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		RedirectURL:  cfg.Auth.RedirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.Auth.ProviderURL + "/oauth2/authorize",
			TokenURL: cfg.Auth.ProviderURL + "/oauth2/token",
		},
	}
	idUC := identityUC.New(logger, oauthCfg, identityUC.Config{
		ProviderURL:   cfg.Auth.ProviderURL,
		CacheTTL:      cfg.Auth.CacheTTL,
		CacheCapacity: cfg.Auth.CacheCapacity,
	})
	idHandler := identityHTTP.New(logger, idUC, identityHTTP.CookieConfig{
		Domain:        cfg.Auth.CookieDomain,
		Secure:        cfg.Auth.CookieSecure,
		RefreshMaxAge: cfg.Auth.RefreshMaxAge,
	}, cfg.Auth.AppURL)

	// 7. Middleware
	mw := middleware.New(logger, idUC, middleware.RateLimitConfig{
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		ClientCapacity: cfg.RateLimit.ClientCapacity,
	})

	// 8. Timeline domain
	tlUC := timelineUC.New(logger, timelineRepo, notifier, grid,
		[]projection.Projection{
			projection.NewCalendar(grid, cfg.Timeline.CalendarNarrowCap, cfg.Timeline.CalendarWideCap),
			projection.NewGantt(grid),
			projection.NewWeekly(grid, cfg.Timeline.WeeksBefore, cfg.Timeline.WeeksAfter),
		},
		timelineUC.Config{
			SessionTTL:         cfg.Timeline.SessionTTL,
			SessionCapacity:    cfg.Timeline.SessionCapacity,
			NarrowBreakpointPX: cfg.Timeline.NarrowBreakpointPX,
		})
	tlHandler := timelineHTTP.New(logger, tlUC)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		TimelineHandler: tlHandler,
		IdentityHandler: idHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
