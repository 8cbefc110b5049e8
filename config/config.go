package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Personal Timeline specifics
	Workspace WorkspaceConfig
	Auth      AuthConfig
	Timeline  TimelineConfig
	RateLimit RateLimitConfig
	Notify    NotifyConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// WorkspaceConfig points at the workspace service that owns tasks,
// milestones and their authorization.
type WorkspaceConfig struct {
	URL          string
	ServiceToken string
}

// AuthConfig configures the OAuth2 sign-in flow against the workspace
// identity provider.
type AuthConfig struct {
	ProviderURL   string
	ClientID      string
	ClientSecret  string
	RedirectURL   string // this service's /auth/callback
	AppURL        string // where the browser lands after sign-in
	CookieDomain  string
	CookieSecure  bool
	RefreshMaxAge int // seconds
	CacheTTL      time.Duration
	CacheCapacity int
}

// TimelineConfig tunes the timeline engine.
type TimelineConfig struct {
	Timezone           string
	NarrowBreakpointPX int
	CalendarNarrowCap  int
	CalendarWideCap    int
	WeeksBefore        int
	WeeksAfter         int
	SessionTTL         time.Duration
	SessionCapacity    int
}

type RateLimitConfig struct {
	RequestsPerMin int
	ClientCapacity int
}

type NotifyConfig struct {
	WebhookURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Workspace service
	cfg.Workspace.URL = viper.GetString("workspace.url")
	cfg.Workspace.ServiceToken = viper.GetString("workspace.service_token")
	if url := viper.GetString("workspace_url"); url != "" {
		cfg.Workspace.URL = url
	}
	if token := viper.GetString("workspace_service_token"); token != "" {
		cfg.Workspace.ServiceToken = token
	}
	if cfg.Workspace.URL == "" {
		return nil, fmt.Errorf("workspace.url is required")
	}

	// Auth
	cfg.Auth.ProviderURL = viper.GetString("auth.provider_url")
	cfg.Auth.ClientID = viper.GetString("auth.client_id")
	cfg.Auth.ClientSecret = viper.GetString("auth.client_secret")
	cfg.Auth.RedirectURL = viper.GetString("auth.redirect_url")
	cfg.Auth.AppURL = viper.GetString("auth.app_url")
	cfg.Auth.CookieDomain = viper.GetString("auth.cookie_domain")
	cfg.Auth.CookieSecure = viper.GetBool("auth.cookie_secure")
	cfg.Auth.RefreshMaxAge = viper.GetInt("auth.refresh_max_age")
	cfg.Auth.CacheTTL = viper.GetDuration("auth.cache_ttl")
	cfg.Auth.CacheCapacity = viper.GetInt("auth.cache_capacity")
	if secret := viper.GetString("auth_client_secret"); secret != "" {
		cfg.Auth.ClientSecret = secret
	}
	if cfg.Auth.ProviderURL == "" {
		cfg.Auth.ProviderURL = cfg.Workspace.URL
	}

	// Timeline
	cfg.Timeline.Timezone = viper.GetString("timeline.timezone")
	cfg.Timeline.NarrowBreakpointPX = viper.GetInt("timeline.narrow_breakpoint_px")
	cfg.Timeline.CalendarNarrowCap = viper.GetInt("timeline.calendar_narrow_cap")
	cfg.Timeline.CalendarWideCap = viper.GetInt("timeline.calendar_wide_cap")
	cfg.Timeline.WeeksBefore = viper.GetInt("timeline.weeks_before")
	cfg.Timeline.WeeksAfter = viper.GetInt("timeline.weeks_after")
	cfg.Timeline.SessionTTL = viper.GetDuration("timeline.session_ttl")
	cfg.Timeline.SessionCapacity = viper.GetInt("timeline.session_capacity")

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.ClientCapacity = viper.GetInt("rate_limit.client_capacity")

	// Notifications
	cfg.Notify.WebhookURL = viper.GetString("notify.webhook_url")
	if url := viper.GetString("notify_webhook_url"); url != "" {
		cfg.Notify.WebhookURL = url
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("auth.refresh_max_age", 30*24*3600)
	viper.SetDefault("auth.cache_ttl", "5m")
	viper.SetDefault("auth.cache_capacity", 10000)

	viper.SetDefault("timeline.timezone", "UTC")
	viper.SetDefault("timeline.narrow_breakpoint_px", 768)
	viper.SetDefault("timeline.calendar_narrow_cap", 2)
	viper.SetDefault("timeline.calendar_wide_cap", 3)
	viper.SetDefault("timeline.weeks_before", 1)
	viper.SetDefault("timeline.weeks_after", 2)
	viper.SetDefault("timeline.session_ttl", "30m")
	viper.SetDefault("timeline.session_capacity", 1024)

	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.client_capacity", 1000)
}
