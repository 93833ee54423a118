package extract

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/xlc-dev/chromatic/internal/colorutil"
	"github.com/xlc-dev/chromatic/internal/log"
	"github.com/xlc-dev/chromatic/internal/scheme"
)

const DefaultColorCount = 20

type Options struct {
	ColorCount    int   `json:"colorCount" yaml:"colors"`
	MaxIterations int   `json:"maxIterations" yaml:"iterations"`
	SampleTarget  int   `json:"sampleTarget" yaml:"sample_target"`
	Seed          int64 `json:"seed" yaml:"seed"`
}

func DefaultOptions() Options {
	return Options{
		ColorCount:    DefaultColorCount,
		MaxIterations: DefaultMaxIterations,
		SampleTarget:  DefaultSampleTarget,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.ColorCount <= 0 {
		o.ColorCount = d.ColorCount
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = d.MaxIterations
	}
	if o.SampleTarget <= 0 {
		o.SampleTarget = d.SampleTarget
	}
	return o
}

func (o Options) Validate() error {
	if o.ColorCount < 0 || o.ColorCount > 256 {
		return fmt.Errorf("color count must be between 0 and 256 (0 selects the default), got %d", o.ColorCount)
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", o.MaxIterations)
	}
	if o.SampleTarget < 0 {
		return fmt.Errorf("sample target must not be negative, got %d", o.SampleTarget)
	}
	return nil
}

// Extractor turns pixels into a scheme. It owns its random source and is not
// safe for concurrent use; create one per goroutine.
type Extractor struct {
	opts Options
	src  Source
}

// New seeds from opts.Seed, or from the clock when the seed is zero.
func New(opts Options) *Extractor {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithSource(opts, rand.New(rand.NewSource(seed)))
}

func NewWithSource(opts Options, src Source) *Extractor {
	return &Extractor{opts: opts.normalized(), src: src}
}

func (e *Extractor) Options() Options {
	return e.opts
}

// Palette returns the cluster centroids for a raw RGBA buffer.
func (e *Extractor) Palette(buf []byte, width, height int) []colorutil.RGB {
	return e.cluster(samplePixels(buf, width, height, e.opts.SampleTarget))
}

func (e *Extractor) PaletteFromImage(img image.Image) []colorutil.RGB {
	return e.cluster(sampleImage(img, e.opts.SampleTarget))
}

func (e *Extractor) cluster(pixels []colorutil.RGB) []colorutil.RGB {
	if len(pixels) == 0 {
		log.Debug("No pixels sampled, falling back to default scheme")
		return nil
	}
	k := min(e.opts.ColorCount, len(pixels))
	colors := Cluster(pixels, k, e.opts.MaxIterations, e.src)
	log.Debugf("Clustered %d samples into %d colors", len(pixels), len(colors))
	return colors
}

func (e *Extractor) FromPixels(buf []byte, width, height int) scheme.Scheme {
	return MapToScheme(e.Palette(buf, width, height))
}

func (e *Extractor) FromImage(img image.Image) scheme.Scheme {
	return MapToScheme(e.PaletteFromImage(img))
}
