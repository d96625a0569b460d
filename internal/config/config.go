// Package config reads the portfolio settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/aditya2671/portfolio/internal/contact"
)

// Theme store backends.
const (
	ThemeStoreCookie = "cookie"
	ThemeStoreSQLite = "sqlite"
)

// Config holds every setting the server and CLI read at startup.
type Config struct {
	Port      string `env:"PORT"                envDefault:"8080"`
	Templates string `env:"PORTFOLIO_TEMPLATES" envDefault:"templates/*"`
	StaticDir string `env:"PORTFOLIO_STATIC"    envDefault:"./static"`
	Resume    string `env:"PORTFOLIO_RESUME"    envDefault:"./static/Aditya_Ishan_Resume.pdf"`

	// Relay credentials. Any one missing disables the relay.
	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	EmailJSPublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	EmailJSEndpoint   string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`

	Recipient string `env:"CONTACT_RECIPIENT" envDefault:"adityaishan18@gmail.com"`

	ThemeStore  string   `env:"PORTFOLIO_THEME_STORE"  envDefault:"cookie"`
	DBPath      string   `env:"PORTFOLIO_DB"           envDefault:"data/portfolio.db"`
	CORSOrigins []string `env:"PORTFOLIO_CORS_ORIGINS" envSeparator:","`
	LogFormat   string   `env:"PORTFOLIO_LOG_FORMAT"   envDefault:"text"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	origins := cfg.CORSOrigins[:0]
	for _, o := range cfg.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSOrigins = origins

	switch cfg.ThemeStore {
	case "":
		cfg.ThemeStore = ThemeStoreCookie
	case ThemeStoreCookie, ThemeStoreSQLite:
	default:
		return Config{}, fmt.Errorf("PORTFOLIO_THEME_STORE: unknown store %q", cfg.ThemeStore)
	}
	return cfg, nil
}

// Relay returns the relay selection for the configured credentials.
func (c Config) Relay() contact.RelayConfig {
	return contact.NewRelayConfig(c.EmailJSServiceID, c.EmailJSTemplateID, c.EmailJSPublicKey)
}

// Logger builds the process logger.
func (c Config) Logger(w io.Writer) *slog.Logger {
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
