package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"personal-timeline/internal/calgrid"
	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline/projection"
	"personal-timeline/internal/timeline/repository"
	pkgLog "personal-timeline/pkg/log"
	"personal-timeline/pkg/notify"
)

// Config tunes session storage and the responsive breakpoint.
type Config struct {
	SessionTTL         time.Duration
	SessionCapacity    int
	NarrowBreakpointPX int
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	notifier    notify.Notifier
	grid        *calgrid.Builder
	projections map[model.View]projection.Projection
	cfg         Config
	sessions    *expirable.LRU[string, *session]
}

// New creates a new timeline UseCase instance. Sessions live in an
// expiring LRU: an idle timeline page ages out instead of leaking.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	notifier notify.Notifier,
	grid *calgrid.Builder,
	projections []projection.Projection,
	cfg Config,
) *implUseCase {
	byView := make(map[model.View]projection.Projection, len(projections))
	for _, p := range projections {
		byView[p.View()] = p
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		notifier:    notifier,
		grid:        grid,
		projections: byView,
		cfg:         cfg,
		sessions:    expirable.NewLRU[string, *session](cfg.SessionCapacity, nil, cfg.SessionTTL),
	}
}
