package colorutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidHex = errors.New("invalid hex color")

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

var Gray = RGB{R: 128, G: 128, B: 128}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Sum is the plain channel sum, not a brightness measure.
func (c RGB) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

func StripHash(hex string) string {
	return strings.TrimPrefix(hex, "#")
}

// ParseHex accepts "#rrggbb" or "rrggbb" in either case.
func ParseHex(hex string) (RGB, error) {
	clean := StripHash(strings.TrimSpace(hex))
	if len(clean) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(clean, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func MustParseHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func sRGBToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func Luminance(c RGB) float64 {
	r := sRGBToLinear(float64(c.R) / 255.0)
	g := sRGBToLinear(float64(c.G) / 255.0)
	b := sRGBToLinear(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func ContrastRatio(a, b RGB) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// HSL returns hue in degrees [0,360), saturation and lightness in [0,1].
func HSL(c RGB) (h, s, l float64) {
	return toColorful(c).Hsl()
}

// Lighten raises HSL lightness by amount, keeping hue and saturation.
func Lighten(c RGB, amount float64) RGB {
	h, s, l := HSL(c)
	return fromColorful(colorful.Hsl(h, s, math.Min(1, l+amount)))
}

// Shift adds delta to every channel, clamping to [0,255].
func Shift(c RGB, delta int) RGB {
	return RGB{
		R: clampChannel(int(c.R) + delta),
		G: clampChannel(int(c.G) + delta),
		B: clampChannel(int(c.B) + delta),
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
