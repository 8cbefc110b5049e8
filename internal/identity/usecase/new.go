package usecase

import (
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"

	"personal-timeline/internal/model"
	pkgLog "personal-timeline/pkg/log"
)

// Config tunes the provider endpoints and the verification cache.
type Config struct {
	ProviderURL   string // base URL for userinfo and revocation
	CacheTTL      time.Duration
	CacheCapacity int
}

type implUseCase struct {
	l          pkgLog.Logger
	oauth      *oauth2.Config
	cfg        Config
	httpClient *http.Client
	verified   *expirable.LRU[string, model.Scope]
}

// New creates a new identity UseCase instance.
func New(l pkgLog.Logger, oauth *oauth2.Config, cfg Config) *implUseCase {
	return &implUseCase{
		l:          l,
		oauth:      oauth,
		cfg:        cfg,
		httpClient: &http.Client{},
		verified:   expirable.NewLRU[string, model.Scope](cfg.CacheCapacity, nil, cfg.CacheTTL),
	}
}
