package scheme

import (
	"errors"
	"fmt"

	"github.com/xlc-dev/chromatic/internal/colorutil"
)

var (
	ErrMissingSlot  = errors.New("missing color slot")
	ErrInvalidColor = errors.New("invalid color value")
	ErrUnknownSlot  = errors.New("unknown color slot")
)

// Scheme is the 21-slot color record shared by extraction, presets, JSON
// import/export and the config writers. Field tags are the wire names.
type Scheme struct {
	Black   string `json:"black" yaml:"black"`
	Red     string `json:"red" yaml:"red"`
	Green   string `json:"green" yaml:"green"`
	Yellow  string `json:"yellow" yaml:"yellow"`
	Blue    string `json:"blue" yaml:"blue"`
	Magenta string `json:"magenta" yaml:"magenta"`
	Cyan    string `json:"cyan" yaml:"cyan"`
	White   string `json:"white" yaml:"white"`

	BrightBlack   string `json:"brightBlack" yaml:"brightBlack"`
	BrightRed     string `json:"brightRed" yaml:"brightRed"`
	BrightGreen   string `json:"brightGreen" yaml:"brightGreen"`
	BrightYellow  string `json:"brightYellow" yaml:"brightYellow"`
	BrightBlue    string `json:"brightBlue" yaml:"brightBlue"`
	BrightMagenta string `json:"brightMagenta" yaml:"brightMagenta"`
	BrightCyan    string `json:"brightCyan" yaml:"brightCyan"`
	BrightWhite   string `json:"brightWhite" yaml:"brightWhite"`

	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`

	ActiveBorder   string `json:"activeBorder" yaml:"activeBorder"`
	InactiveBorder string `json:"inactiveBorder" yaml:"inactiveBorder"`
	UrgentBorder   string `json:"urgentBorder" yaml:"urgentBorder"`
}

var keys = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"brightBlack", "brightRed", "brightGreen", "brightYellow",
	"brightBlue", "brightMagenta", "brightCyan", "brightWhite",
	"background", "foreground",
	"activeBorder", "inactiveBorder", "urgentBorder",
}

// Keys returns the slot names in wire order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

func (s *Scheme) slot(key string) *string {
	switch key {
	case "black":
		return &s.Black
	case "red":
		return &s.Red
	case "green":
		return &s.Green
	case "yellow":
		return &s.Yellow
	case "blue":
		return &s.Blue
	case "magenta":
		return &s.Magenta
	case "cyan":
		return &s.Cyan
	case "white":
		return &s.White
	case "brightBlack":
		return &s.BrightBlack
	case "brightRed":
		return &s.BrightRed
	case "brightGreen":
		return &s.BrightGreen
	case "brightYellow":
		return &s.BrightYellow
	case "brightBlue":
		return &s.BrightBlue
	case "brightMagenta":
		return &s.BrightMagenta
	case "brightCyan":
		return &s.BrightCyan
	case "brightWhite":
		return &s.BrightWhite
	case "background":
		return &s.Background
	case "foreground":
		return &s.Foreground
	case "activeBorder":
		return &s.ActiveBorder
	case "inactiveBorder":
		return &s.InactiveBorder
	case "urgentBorder":
		return &s.UrgentBorder
	}
	return nil
}

func (s Scheme) Get(key string) (string, error) {
	p := s.slot(key)
	if p == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownSlot, key)
	}
	return *p, nil
}

// Set stores hex normalized to lowercase "#rrggbb".
func (s *Scheme) Set(key, hex string) error {
	p := s.slot(key)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, key)
	}
	c, err := colorutil.ParseHex(hex)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidColor, key, err)
	}
	*p = c.Hex()
	return nil
}

// Color returns a slot parsed as RGB.
func (s Scheme) Color(key string) (colorutil.RGB, error) {
	hex, err := s.Get(key)
	if err != nil {
		return colorutil.RGB{}, err
	}
	if hex == "" {
		return colorutil.RGB{}, fmt.Errorf("%w: %s", ErrMissingSlot, key)
	}
	c, err := colorutil.ParseHex(hex)
	if err != nil {
		return colorutil.RGB{}, fmt.Errorf("%w: %s: %v", ErrInvalidColor, key, err)
	}
	return c, nil
}

// Map returns the slots keyed by wire name.
func (s Scheme) Map() map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = *s.slot(k)
	}
	return out
}

// Validate reports the first empty or malformed slot.
func (s Scheme) Validate() error {
	for _, k := range keys {
		if _, err := s.Color(k); err != nil {
			return err
		}
	}
	return nil
}

// Normalize lowercases every valid slot; invalid slots are left untouched.
func (s Scheme) Normalize() Scheme {
	for _, k := range keys {
		p := s.slot(k)
		if c, err := colorutil.ParseHex(*p); err == nil {
			*p = c.Hex()
		}
	}
	return s
}

// Default is the scheme used whenever extraction has nothing to work with.
func Default() Scheme {
	return Scheme{
		Black:   "#0d1117",
		Red:     "#ff7b72",
		Green:   "#3fb950",
		Yellow:  "#d29922",
		Blue:    "#58a6ff",
		Magenta: "#bc8cff",
		Cyan:    "#39c5cf",
		White:   "#b1bac4",

		BrightBlack:   "#6e7681",
		BrightRed:     "#ffa198",
		BrightGreen:   "#56d364",
		BrightYellow:  "#e3b341",
		BrightBlue:    "#79c0ff",
		BrightMagenta: "#d2a8ff",
		BrightCyan:    "#56d4dd",
		BrightWhite:   "#f0f6fc",

		Background: "#0d1117",
		Foreground: "#c9d1d9",

		ActiveBorder:   "#58a6ff",
		InactiveBorder: "#30363d",
		UrgentBorder:   "#ff7b72",
	}
}

func isKey(name string) bool {
	for _, k := range keys {
		if k == name {
			return true
		}
	}
	return false
}
