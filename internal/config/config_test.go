package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if d := cfg.Court(); d.Width != 348 || d.Height != 180 {
		t.Errorf("Court() = %+v", d)
	}
	if cfg.BoardIdleTimeout != 2*time.Hour {
		t.Errorf("BoardIdleTimeout = %v", cfg.BoardIdleTimeout)
	}
	if cfg.CustomizeStore != StoreSQLite {
		t.Errorf("CustomizeStore = %q", cfg.CustomizeStore)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("COURT_WIDTH", "300")
	t.Setenv("COURT_HEIGHT", "600")
	t.Setenv("SWEEP_INTERVAL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("cfg = %+v", cfg)
	}
	if d := cfg.Court(); d.Width != 300 || d.Height != 600 {
		t.Errorf("Court() = %+v", d)
	}
	if cfg.SweepInterval != 30*time.Second {
		t.Errorf("SweepInterval = %v", cfg.SweepInterval)
	}
}

func TestLoadCustomizeStore(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"memory", false},
		{"sqlite", false},
		{"redis", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("CUSTOMIZE_STORE", tt.value)
			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.CustomizeStore != tt.value {
				t.Errorf("CustomizeStore = %q", cfg.CustomizeStore)
			}
		})
	}
}

func TestLoadRejectsEmptyCourt(t *testing.T) {
	t.Setenv("COURT_WIDTH", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero court width")
	}
}
