package extract

import (
	"context"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xlc-dev/chromatic/internal/imageload"
)

func writePNG(t *testing.T, fs afero.Fs, path string, a, b color.Color) {
	t.Helper()
	f, err := fs.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, checkerImage(a, b)))
}

func TestExtractFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "/img/mono.png", color.Black, color.White)
	writePNG(t, fs, "/img/red.png", color.NRGBA{R: 200, G: 30, B: 30, A: 255}, color.NRGBA{R: 20, G: 20, B: 20, A: 255})

	paths := []string{"/img/red.png", "/img/mono.png"}
	results, err := ExtractFiles(context.Background(), fs, paths, Options{ColorCount: 2, Seed: 5})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "/img/red.png", results[0].Path)
	assert.Equal(t, "#c81e1e", results[0].Scheme.Red)
	assert.Len(t, results[0].Palette, 2)

	assert.Equal(t, "/img/mono.png", results[1].Path)
	assert.Equal(t, "#000000", results[1].Scheme.Background)
	assert.Equal(t, "#ffffff", results[1].Scheme.Foreground)
}

func TestExtractFilesErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "/ok.png", color.Black, color.White)
	require.NoError(t, afero.WriteFile(fs, "/notes.txt", []byte("plain text"), 0o644))

	tests := []struct {
		name  string
		paths []string
		opts  Options
		isErr error
	}{
		{name: "not an image", paths: []string{"/ok.png", "/notes.txt"}, isErr: imageload.ErrNotImage},
		{name: "missing file", paths: []string{"/missing.png"}},
		{name: "invalid options", paths: []string{"/ok.png"}, opts: Options{ColorCount: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := ExtractFiles(context.Background(), fs, tt.paths, tt.opts)
			require.Error(t, err)
			assert.Nil(t, results)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
		})
	}
}

func TestExtractFilesCanceled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "/a.png", color.Black, color.White)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExtractFiles(ctx, fs, []string{"/a.png"}, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractFilesEmpty(t *testing.T) {
	results, err := ExtractFiles(context.Background(), afero.NewMemMapFs(), nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, results)
}
