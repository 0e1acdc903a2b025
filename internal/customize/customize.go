// Package customize stores how each court marker is drawn: color, size,
// handedness and icon. One Service lives for the whole process and is
// passed explicitly to whoever renders markers.
package customize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/playperu/courtboard/internal/court"
)

type IconType string

const (
	IconGlyph IconType = "icon"
	IconText  IconType = "text"
	IconPhoto IconType = "photo"
)

const (
	MinSize     = 20
	MaxSize     = 80
	DefaultSize = 40
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidIconType = errors.New("invalid icon type")
	ErrShuttleIcon     = errors.New("shuttle icon cannot be changed")
)

type Customization struct {
	Size       int      `json:"size"`
	Color      string   `json:"color"`
	LeftHanded bool     `json:"isLeftHanded"`
	Icon       string   `json:"icon"`
	IconType   IconType `json:"iconType"`
}

// Patch is a partial update; nil fields are left unchanged. Hue moves the
// color along the settings slider and is ignored when Color is set.
type Patch struct {
	Size       *int      `json:"size,omitempty"`
	Color      *string   `json:"color,omitempty"`
	Hue        *float64  `json:"hue,omitempty"`
	LeftHanded *bool     `json:"isLeftHanded,omitempty"`
	Icon       *string   `json:"icon,omitempty"`
	IconType   *IconType `json:"iconType,omitempty"`
}

// Defaults returns the out-of-the-box look: team 1 red, team 2 blue,
// shuttle white.
func Defaults() map[court.MarkerID]Customization {
	player := func(color string) Customization {
		return Customization{Size: DefaultSize, Color: color, Icon: "account", IconType: IconGlyph}
	}
	return map[court.MarkerID]Customization{
		court.P1:      player("#ff4444"),
		court.P2:      player("#ff4444"),
		court.P3:      player("#4444ff"),
		court.P4:      player("#4444ff"),
		court.Shuttle: {Size: DefaultSize, Color: "#ffffff", Icon: "badminton", IconType: IconGlyph},
	}
}

// Store persists customizations for the lifetime of the process.
type Store interface {
	Get(ctx context.Context, id court.MarkerID) (Customization, error)
	Put(ctx context.Context, id court.MarkerID, c Customization) error
	All(ctx context.Context) (map[court.MarkerID]Customization, error)
}

// Service applies validated updates to a Store and tracks the marker
// currently selected in the settings panel.
type Service struct {
	store Store

	mu       sync.Mutex
	selected court.MarkerID
}

// NewService seeds store with the defaults.
func NewService(ctx context.Context, store Store) (*Service, error) {
	s := &Service{store: store, selected: court.P1}
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) Get(ctx context.Context, id court.MarkerID) (Customization, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) All(ctx context.Context) (map[court.MarkerID]Customization, error) {
	return s.store.All(ctx)
}

// Update merges p into the marker's customization. Sizes are clamped to
// [MinSize, MaxSize] and colors normalized to lowercase #rrggbb.
func (s *Service) Update(ctx context.Context, id court.MarkerID, p Patch) (Customization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.Get(ctx, id)
	if err != nil {
		return Customization{}, err
	}

	if p.Size != nil {
		c.Size = min(max(*p.Size, MinSize), MaxSize)
	}
	if p.Color != nil {
		color, err := NormalizeColor(*p.Color)
		if err != nil {
			return Customization{}, err
		}
		c.Color = color
	} else if p.Hue != nil {
		c.Color = ColorFromHue(*p.Hue, c.Color)
	}
	if p.LeftHanded != nil {
		c.LeftHanded = *p.LeftHanded
	}
	if p.Icon != nil || p.IconType != nil {
		if id == court.Shuttle {
			return Customization{}, ErrShuttleIcon
		}
		if p.IconType != nil {
			switch *p.IconType {
			case IconGlyph, IconText, IconPhoto:
				c.IconType = *p.IconType
			default:
				return Customization{}, fmt.Errorf("%w: %q", ErrInvalidIconType, *p.IconType)
			}
		}
		if p.Icon != nil {
			c.Icon = strings.TrimSpace(*p.Icon)
		}
	}

	if err := s.store.Put(ctx, id, c); err != nil {
		return Customization{}, fmt.Errorf("saving %s: %w", id, err)
	}
	return c, nil
}

// Reset restores every marker to its default.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range court.Markers {
		if err := s.store.Put(ctx, id, Defaults()[id]); err != nil {
			return fmt.Errorf("resetting %s: %w", id, err)
		}
	}
	return nil
}

func (s *Service) Selected() court.MarkerID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *Service) Select(id court.MarkerID) {
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
}
