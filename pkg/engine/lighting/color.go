package lighting

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gookit/color"
)

// Color is an RGB intensity triple. Channels are non-negative and
// conventionally 0..255, but accumulated light is unbounded.
type Color [3]float64

// NewColor builds a Color from its channels
func NewColor(r, g, b float64) Color {
	return Color{r, g, b}
}

// White is full intensity on every channel
var White = Color{255, 255, 255}

// Add returns the channel-wise sum
func (c Color) Add(o Color) Color {
	return Color{c[0] + o[0], c[1] + o[1], c[2] + o[2]}
}

// Scale multiplies every channel by k
func (c Color) Scale(k float64) Color {
	return Color{c[0] * k, c[1] * k, c[2] * k}
}

// Round rounds every channel to the nearest integer, halves away from zero
func (c Color) Round() Color {
	return Color{math.Round(c[0]), math.Round(c[1]), math.Round(c[2])}
}

// Intensity is the sum of the channels
func (c Color) Intensity() float64 {
	return c[0] + c[1] + c[2]
}

// IsZero reports whether every channel is zero
func (c Color) IsZero() bool {
	return c[0] == 0 && c[1] == 0 && c[2] == 0
}

// Clamp limits every channel to 0..255
func (c Color) Clamp() Color {
	var out Color
	for i, v := range c {
		out[i] = math.Max(0, math.Min(255, v))
	}
	return out
}

// ToRGB converts the clamped, rounded colour to a terminal true-colour value
func (c Color) ToRGB() color.RGBColor {
	v := c.Clamp().Round()
	return color.RGB(uint8(v[0]), uint8(v[1]), uint8(v[2]))
}

// Hex returns the clamped colour as "#rrggbb"
func (c Color) Hex() string {
	return "#" + c.ToRGB().Hex()
}

// String formats the colour as "rgb(r,g,b)" with rounded channels
func (c Color) String() string {
	v := c.Round()
	return fmt.Sprintf("rgb(%g,%g,%g)", v[0], v[1], v[2])
}

// ErrInvalidColor is returned by ParseColor for unrecognised input
var ErrInvalidColor = errors.New("invalid color")

// ParseColor reads "#rgb", "#rrggbb", "0xrrggbb", "rrggbb", "rgb(r,g,b)",
// "r,g,b" or a CSS colour name such as "brown".
func ParseColor(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(in, "rgb(") && strings.HasSuffix(in, ")") {
		in = strings.TrimSuffix(strings.TrimPrefix(in, "rgb("), ")")
	}

	if c := color.RGBFromString(in); !c.IsEmpty() {
		return fromInts(c.Values()), nil
	}
	if rgb := color.HexToRgb(in); len(rgb) == 3 {
		return fromInts(rgb), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is ParseColor that panics on error
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func fromInts(v []int) Color {
	return Color{float64(v[0]), float64(v[1]), float64(v[2])}
}
