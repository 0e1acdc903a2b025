package main

import (
	"context"
	"testing"

	"github.com/playperu/courtboard/internal/config"
	"github.com/playperu/courtboard/internal/court"
	"github.com/playperu/courtboard/internal/customize"
	"github.com/playperu/courtboard/internal/handler/health"
)

func TestOpenCustomizeStore(t *testing.T) {
	tests := []struct {
		kind      string
		wantCheck bool
	}{
		{config.StoreMemory, false},
		{config.StoreSQLite, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			ctx := context.Background()
			checks := make(map[string]health.Checker)
			store, closeStore, err := openCustomizeStore(ctx, tt.kind, checks)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer closeStore()

			if _, ok := checks["sqlite"]; ok != tt.wantCheck {
				t.Errorf("sqlite check registered = %v, want %v", ok, tt.wantCheck)
			}
			if tt.kind == config.StoreMemory {
				if _, ok := store.(*customize.MemoryStore); !ok {
					t.Errorf("store = %T, want *customize.MemoryStore", store)
				}
			}

			svc, err := customize.NewService(ctx, store)
			if err != nil {
				t.Fatalf("service: %v", err)
			}
			if err := (customizationsChecker{svc}).Check(ctx); err != nil {
				t.Errorf("customizations check: %v", err)
			}
			for name, c := range checks {
				if err := c.Check(ctx); err != nil {
					t.Errorf("%s check: %v", name, err)
				}
			}
			if _, err := svc.Update(ctx, court.P2, customize.Patch{}); err != nil {
				t.Errorf("update: %v", err)
			}
		})
	}
}
