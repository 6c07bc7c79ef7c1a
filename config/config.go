// Package config loads the process-wide, read-only configuration.
// File: config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"academy-admin/logger"
)

// ErrMissingConfig marks a required setting that is absent. It is fatal at startup.
var ErrMissingConfig = errors.New("missing required configuration")

// Config is built once in main and handed to constructors. Nothing reads the
// environment after Load returns.
type Config struct {
	Env  string
	Port string

	// session
	JWTSecret         []byte
	AdminPasswordHash string
	TokenTTL          time.Duration
	CookieName        string
	CookieSecure      bool
	SessionSecret     []byte

	// storage
	MongoURI      string
	MongoDatabase string

	// web
	PublicSiteURL string
	AdminURL      string
	TemplatesDir  string
	StaticDir     string
	LogDir        string

	// web push
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubscriber string
	PushTimeout     time.Duration

	// email
	ResendAPIKey string
	EmailFrom    string
	EmailTo      string

	// observability
	MetricsEnabled bool
	TracingEnabled bool
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("Load: no .env file found, using process environment")
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Env:               get("APP_ENV", "development"),
		Port:              get("PORT", "8080"),
		JWTSecret:         []byte(get("JWT_SECRET", "")),
		AdminPasswordHash: get("ADMIN_PASSWORD_HASH", ""),
		CookieName:        get("COOKIE_NAME", "admin_token"),
		MongoURI:          get("MONGODB_URI", ""),
		MongoDatabase:     get("MONGODB_DATABASE", "academy"),
		PublicSiteURL:     get("PUBLIC_SITE_URL", "http://localhost:5500/"),
		TemplatesDir:      get("TEMPLATES_DIR", "templates"),
		StaticDir:         get("STATIC_DIR", "static"),
		LogDir:            get("LOG_DIR", ""),
		VAPIDPublicKey:    get("VAPID_PUBLIC_KEY", ""),
		VAPIDPrivateKey:   get("VAPID_PRIVATE_KEY", ""),
		VAPIDSubscriber:   get("VAPID_SUBSCRIBER", "admin@example.com"),
		ResendAPIKey:      get("RESEND_API_KEY", ""),
		EmailFrom:         get("EMAIL_FROM", ""),
		EmailTo:           get("EMAIL_TO", ""),
	}

	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET: %w", ErrMissingConfig)
	}
	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH: %w", ErrMissingConfig)
	}
	cfg.SessionSecret = []byte(get("SESSION_SECRET", string(cfg.JWTSecret)))
	cfg.AdminURL = get("ADMIN_URL", "http://localhost:"+cfg.Port)

	var err error
	if cfg.TokenTTL, err = parseDuration(get("JWT_EXPIRES_IN", "1h")); err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	if cfg.PushTimeout, err = parseDuration(get("PUSH_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("PUSH_TIMEOUT: %w", err)
	}
	if cfg.CookieSecure, err = strconv.ParseBool(get("COOKIE_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("COOKIE_SECURE: %w", err)
	}
	if cfg.MetricsEnabled, err = strconv.ParseBool(get("METRICS_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("METRICS_ENABLED: %w", err)
	}
	if cfg.TracingEnabled, err = strconv.ParseBool(get("TRACING_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("TRACING_ENABLED: %w", err)
	}

	return cfg, nil
}

// parseDuration accepts Go durations ("90m"), bare seconds ("3600") and
// whole days ("7d").
func parseDuration(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("duration must be positive, got %q", v)
		}
		return time.Duration(secs) * time.Second, nil
	}
	if days, err := strconv.Atoi(strings.TrimSuffix(v, "d")); err == nil && strings.HasSuffix(v, "d") {
		if days <= 0 {
			return 0, fmt.Errorf("duration must be positive, got %q", v)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", v)
	}
	return d, nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PushEnabled reports whether both VAPID keys are present.
func (c *Config) PushEnabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

// EmailEnabled reports whether the email notifier has everything it needs.
func (c *Config) EmailEnabled() bool {
	return c.ResendAPIKey != "" && c.EmailFrom != "" && c.EmailTo != ""
}
