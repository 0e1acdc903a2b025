package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/playperu/courtboard/internal/court"
)

type Config struct {
	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel         slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir           string        `env:"SPA_DIR" envDefault:"../web/dist"`
	CourtWidth       float64       `env:"COURT_WIDTH" envDefault:"348"`
	CourtHeight      float64       `env:"COURT_HEIGHT" envDefault:"180"`
	BoardIdleTimeout time.Duration `env:"BOARD_IDLE_TIMEOUT" envDefault:"2h"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
	CustomizeStore   string        `env:"CUSTOMIZE_STORE" envDefault:"sqlite"`
}

// Customization store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Court returns the size used for boards created without one.
func (c *Config) Court() court.Dimensions {
	return court.Dimensions{Width: c.CourtWidth, Height: c.CourtHeight}
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.CourtWidth <= 0 || cfg.CourtHeight <= 0 {
		return nil, fmt.Errorf("court size must be positive, got %vx%v", cfg.CourtWidth, cfg.CourtHeight)
	}
	switch cfg.CustomizeStore {
	case StoreSQLite, StoreMemory:
	default:
		return nil, fmt.Errorf("CUSTOMIZE_STORE must be %q or %q, got %q", StoreSQLite, StoreMemory, cfg.CustomizeStore)
	}
	return &cfg, nil
}
