package customize

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	white = "#ffffff"
	black = "#000000"
)

var ErrInvalidColor = errors.New("invalid color")

// NormalizeColor parses #rgb or #rrggbb and returns lowercase #rrggbb.
func NormalizeColor(s string) (string, error) {
	hex := strings.TrimSpace(s)
	if len(hex) != 4 && len(hex) != 7 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c.Hex(), nil
}

// HueOf returns the slider position of color in degrees. White, black and
// unparseable colors sit at 0.
func HueOf(color string) float64 {
	color = strings.ToLower(color)
	if color == white || color == black {
		return 0
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return 0
	}
	h, _, _ := c.Hsl()
	return h
}

// ColorFromHue maps a slider position to a fully saturated, mid-lightness
// color. At hue 0 a white or black current color is kept, so the shuttle
// stays white until the slider actually moves.
func ColorFromHue(hue float64, current string) string {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	if h == 0 {
		if cur := strings.ToLower(current); cur == white || cur == black {
			return cur
		}
	}
	return colorful.Hsl(h, 1, 0.5).Hex()
}

// ContrastColor is the border and icon color drawn on top of color.
func ContrastColor(color string) string {
	if strings.ToLower(color) == white {
		return black
	}
	return white
}
