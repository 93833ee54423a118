package extract

import (
	"cmp"
	"math"
	"slices"

	"github.com/xlc-dev/chromatic/internal/colorutil"
	"github.com/xlc-dev/chromatic/internal/scheme"
)

const (
	// Colors closer than this (inclusive) collapse into the first one seen.
	distinctDistance = 25.0

	minContrastGap  = 0.4
	minContrastStep = 30

	chromaticSaturation = 0.1
	vibrantSaturation   = 0.3
	saturationTie       = 0.1

	brightVariantDistance = 20.0
	brightVariantLift     = 0.4
	brightBlackLift       = 0.25
	brightWhiteLift       = 0.15
)

type category int

const (
	categoryRed category = iota
	categoryYellow
	categoryGreen
	categoryCyan
	categoryBlue
	categoryMagenta
	categoryNeutral
)

func (c category) String() string {
	switch c {
	case categoryRed:
		return "red"
	case categoryYellow:
		return "yellow"
	case categoryGreen:
		return "green"
	case categoryCyan:
		return "cyan"
	case categoryBlue:
		return "blue"
	case categoryMagenta:
		return "magenta"
	}
	return "neutral"
}

// hueCategory buckets a hue in degrees. Bands are uneven and 315-345 counts
// as red.
func hueCategory(hue float64) category {
	switch {
	case hue < 15 || hue >= 345:
		return categoryRed
	case hue < 45:
		return categoryYellow
	case hue < 75:
		return categoryGreen
	case hue < 165:
		return categoryCyan
	case hue < 255:
		return categoryBlue
	case hue < 315:
		return categoryMagenta
	}
	return categoryRed
}

type swatch struct {
	rgb colorutil.RGB
	lum float64
	hue float64
	sat float64
}

func newSwatch(c colorutil.RGB) swatch {
	h, s, _ := colorutil.HSL(c)
	return swatch{rgb: c, lum: colorutil.Luminance(c), hue: h, sat: s}
}

func (s swatch) category() category {
	if s.sat > chromaticSaturation {
		return hueCategory(s.hue)
	}
	return categoryNeutral
}

// bySaturation ranks vivid colors first; near-equal saturations fall back to
// the brighter color.
func bySaturation(a, b swatch) int {
	if math.Abs(a.sat-b.sat) < saturationTie {
		return cmp.Compare(b.lum, a.lum)
	}
	return cmp.Compare(b.sat, a.sat)
}

func dedupe(colors []colorutil.RGB) []colorutil.RGB {
	kept := make([]colorutil.RGB, 0, len(colors))
	for _, c := range colors {
		similar := false
		for _, k := range kept {
			if colorutil.Distance(c, k) <= distinctDistance {
				similar = true
				break
			}
		}
		if !similar {
			kept = append(kept, c)
		}
	}
	return kept
}

// palette is the classified view of the clusterer output the slot rules
// choose from.
type palette struct {
	distinct []swatch
	byLum    []swatch
	groups   map[category][]swatch
	vibrant  []swatch
}

func newPalette(colors []colorutil.RGB) *palette {
	p := &palette{groups: make(map[category][]swatch)}
	for _, c := range dedupe(colors) {
		p.distinct = append(p.distinct, newSwatch(c))
	}

	p.byLum = slices.Clone(p.distinct)
	slices.SortStableFunc(p.byLum, func(a, b swatch) int {
		return cmp.Compare(a.lum, b.lum)
	})

	for _, s := range p.distinct {
		cat := s.category()
		p.groups[cat] = append(p.groups[cat], s)
		if s.sat > vibrantSaturation {
			p.vibrant = append(p.vibrant, s)
		}
	}
	for cat := range p.groups {
		slices.SortStableFunc(p.groups[cat], bySaturation)
	}
	slices.SortStableFunc(p.vibrant, bySaturation)

	return p
}

func (p *palette) darkest() colorutil.RGB  { return p.byLum[0].rgb }
func (p *palette) lightest() colorutil.RGB { return p.byLum[len(p.byLum)-1].rgb }

// strategy is one step in a slot's fallback chain.
type strategy func() (colorutil.RGB, bool)

// firstOf evaluates strategies in order; the chain ends in gray.
func firstOf(strategies ...strategy) colorutil.RGB {
	for _, s := range strategies {
		if c, ok := s(); ok {
			return c
		}
	}
	return colorutil.Gray
}

func constant(c colorutil.RGB) strategy {
	return func() (colorutil.RGB, bool) { return c, true }
}

func when(cond bool, c colorutil.RGB) strategy {
	return func() (colorutil.RGB, bool) { return c, cond }
}

func lightened(c colorutil.RGB, amount float64) strategy {
	return func() (colorutil.RGB, bool) { return colorutil.Lighten(c, amount), true }
}

func at(list []swatch, idx int) strategy {
	return func() (colorutil.RGB, bool) {
		if idx < 0 || idx >= len(list) {
			return colorutil.RGB{}, false
		}
		return list[idx].rgb, true
	}
}

func (p *palette) ranked(cat category, idx int) strategy {
	return at(p.groups[cat], idx)
}

// brighterThan finds the first member of cat that is clearly different from
// base and lighter than it.
func (p *palette) brighterThan(cat category, base colorutil.RGB) strategy {
	return func() (colorutil.RGB, bool) {
		baseLum := colorutil.Luminance(base)
		for _, s := range p.groups[cat] {
			if colorutil.Distance(s.rgb, base) > brightVariantDistance && s.lum > baseLum {
				return s.rgb, true
			}
		}
		return colorutil.RGB{}, false
	}
}

func (p *palette) vibrantIn(cat category) strategy {
	return func() (colorutil.RGB, bool) {
		for _, s := range p.vibrant {
			if hueCategory(s.hue) == cat {
				return s.rgb, true
			}
		}
		return colorutil.RGB{}, false
	}
}

func (p *palette) base(cat category) colorutil.RGB {
	return firstOf(
		p.ranked(cat, 0),
		p.ranked(categoryNeutral, 0),
		constant(colorutil.Gray),
	)
}

func (p *palette) bright(cat category, base colorutil.RGB) colorutil.RGB {
	return firstOf(
		p.brighterThan(cat, base),
		p.ranked(cat, 1),
		lightened(base, brightVariantLift),
	)
}

// repairContrast pushes bg and fg apart until their luminance gap reaches
// minContrastGap or both hit the ends of the range.
func repairContrast(bg, fg colorutil.RGB) (colorutil.RGB, colorutil.RGB) {
	black := colorutil.RGB{}
	white := colorutil.RGB{R: 255, G: 255, B: 255}
	for {
		gap := colorutil.Luminance(fg) - colorutil.Luminance(bg)
		if gap >= minContrastGap || (bg == black && fg == white) {
			return bg, fg
		}
		step := max(minContrastStep, int(math.Round((minContrastGap-gap)*100)))
		bg = colorutil.Shift(bg, -step)
		fg = colorutil.Shift(fg, step)
	}
}

// MapToScheme assigns cluster colors to the 21 scheme slots. An empty input
// yields the default scheme.
func MapToScheme(colors []colorutil.RGB) scheme.Scheme {
	if len(colors) == 0 {
		return scheme.Default()
	}

	p := newPalette(colors)
	n := len(p.byLum)

	black := p.darkest()
	white := p.lightest()
	background, foreground := repairContrast(black, white)

	red := p.base(categoryRed)
	green := p.base(categoryGreen)
	yellow := p.base(categoryYellow)
	blue := p.base(categoryBlue)
	magenta := p.base(categoryMagenta)
	cyan := p.base(categoryCyan)

	brightBlack := firstOf(
		when(n > 1, p.byLum[min(3, n-1)].rgb),
		lightened(black, brightBlackLift),
	)
	brightWhite := firstOf(
		when(n > 1, p.byLum[max(n-2, 0)].rgb),
		lightened(white, brightWhiteLift),
	)

	activeBorder := firstOf(
		at(p.vibrant, 0),
		when(blue.Sum() > 200, blue),
		at(p.distinct, int(math.Floor(float64(n)*0.7))),
		constant(blue),
	)
	urgentBorder := firstOf(
		p.vibrantIn(categoryRed),
		when(red.R > 150, red),
		at(p.vibrant, 1),
		constant(red),
	)
	inactiveBorder := firstOf(
		at(p.byLum, int(math.Floor(float64(n)*0.4))),
		at(p.byLum, n/2),
		constant(colorutil.Gray),
	)

	return scheme.Scheme{
		Black:   black.Hex(),
		Red:     red.Hex(),
		Green:   green.Hex(),
		Yellow:  yellow.Hex(),
		Blue:    blue.Hex(),
		Magenta: magenta.Hex(),
		Cyan:    cyan.Hex(),
		White:   white.Hex(),

		BrightBlack:   brightBlack.Hex(),
		BrightRed:     p.bright(categoryRed, red).Hex(),
		BrightGreen:   p.bright(categoryGreen, green).Hex(),
		BrightYellow:  p.bright(categoryYellow, yellow).Hex(),
		BrightBlue:    p.bright(categoryBlue, blue).Hex(),
		BrightMagenta: p.bright(categoryMagenta, magenta).Hex(),
		BrightCyan:    p.bright(categoryCyan, cyan).Hex(),
		BrightWhite:   brightWhite.Hex(),

		Background: background.Hex(),
		Foreground: foreground.Hex(),

		ActiveBorder:   activeBorder.Hex(),
		InactiveBorder: inactiveBorder.Hex(),
		UrgentBorder:   urgentBorder.Hex(),
	}
}
