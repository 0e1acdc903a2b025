package server

import (
	"net/http"
	"testing"

	"github.com/playperu/courtboard/internal/court"
	"github.com/playperu/courtboard/internal/customize"
)

func TestListCustomizations(t *testing.T) {
	env := newTestEnv(t)

	var list []MarkerCustomization
	decode(t, env.do(t, http.MethodGet, "/api/customizations", nil), &list)
	if len(list) != len(court.Markers) {
		t.Fatalf("got %d customizations, want %d", len(list), len(court.Markers))
	}
	for i, id := range court.Markers {
		if list[i].Marker != id {
			t.Errorf("list[%d].Marker = %s, want %s", i, list[i].Marker, id)
		}
	}
	if s := list[len(list)-1]; s.Color != "#ffffff" || s.Contrast != "#000000" {
		t.Errorf("shuttle = %+v", s)
	}
}

func TestUpdateCustomization(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		body   map[string]any
		code   int
		check  func(t *testing.T, c MarkerCustomization)
	}{
		{
			name:   "size clamped",
			marker: "P1",
			body:   map[string]any{"size": 500},
			code:   http.StatusOK,
			check: func(t *testing.T, c MarkerCustomization) {
				if c.Size != customize.MaxSize {
					t.Errorf("size = %d", c.Size)
				}
			},
		},
		{
			name:   "color normalized",
			marker: "P3",
			body:   map[string]any{"color": "#0F0"},
			code:   http.StatusOK,
			check: func(t *testing.T, c MarkerCustomization) {
				if c.Color != "#00ff00" || c.Contrast != "#ffffff" {
					t.Errorf("color = %q contrast = %q", c.Color, c.Contrast)
				}
			},
		},
		{
			name:   "handedness",
			marker: "P2",
			body:   map[string]any{"isLeftHanded": true},
			code:   http.StatusOK,
			check: func(t *testing.T, c MarkerCustomization) {
				if !c.LeftHanded {
					t.Error("isLeftHanded = false")
				}
			},
		},
		{"bad color", "P1", map[string]any{"color": "red-ish"}, http.StatusBadRequest, nil},
		{"bad icon type", "P1", map[string]any{"iconType": "emoji"}, http.StatusBadRequest, nil},
		{"shuttle icon", "Shuttle", map[string]any{"icon": "star"}, http.StatusConflict, nil},
		{"unknown marker", "P5", map[string]any{"size": 30}, http.StatusNotFound, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(t, http.MethodPatch, "/api/customizations/"+tt.marker, tt.body)
			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.code, rec.Body.String())
			}
			if tt.check != nil {
				var c MarkerCustomization
				decode(t, rec, &c)
				tt.check(t, c)
			}
		})
	}
}

func TestResetCustomizations(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPatch, "/api/customizations/P1", map[string]any{"color": "#123456"})

	var list []MarkerCustomization
	decode(t, env.do(t, http.MethodPost, "/api/customizations/reset", nil), &list)
	if list[0].Color != customize.Defaults()[court.P1].Color {
		t.Errorf("P1 color after reset = %q", list[0].Color)
	}
}

func TestSelectedMarker(t *testing.T) {
	env := newTestEnv(t)

	var sel SelectResponse
	decode(t, env.do(t, http.MethodGet, "/api/customizations/selected", nil), &sel)
	if sel.Marker != court.P1 {
		t.Errorf("default selection = %s", sel.Marker)
	}

	rec := env.do(t, http.MethodPut, "/api/customizations/selected", SelectRequest{Marker: "Shuttle"})
	if rec.Code != http.StatusOK {
		t.Fatalf("select status = %d", rec.Code)
	}
	if env.custom.Selected() != court.Shuttle {
		t.Errorf("selected = %s", env.custom.Selected())
	}

	if rec := env.do(t, http.MethodPut, "/api/customizations/selected", SelectRequest{Marker: "ref"}); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown marker status = %d", rec.Code)
	}
}
