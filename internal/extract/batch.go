package extract

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/afero"
	"github.com/xlc-dev/chromatic/internal/colorutil"
	"github.com/xlc-dev/chromatic/internal/imageload"
	"github.com/xlc-dev/chromatic/internal/log"
	"github.com/xlc-dev/chromatic/internal/scheme"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Path    string          `json:"path"`
	Palette []colorutil.RGB `json:"-"`
	Scheme  scheme.Scheme   `json:"scheme"`
}

// ExtractFiles decodes and extracts every path concurrently. Each image gets
// its own Extractor, so a fixed seed gives the same scheme per image no matter
// how the work is scheduled. Results follow the order of paths.
func ExtractFiles(ctx context.Context, fs afero.Fs, paths []string, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			img, err := imageload.Load(fs, path)
			if err != nil {
				return err
			}

			e := New(opts)
			palette := e.PaletteFromImage(img)
			log.Debugf("Extracted %d colors from %s", len(palette), path)

			results[i] = Result{
				Path:    path,
				Palette: palette,
				Scheme:  MapToScheme(palette),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	return results, nil
}
