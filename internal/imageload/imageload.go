package imageload

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"

	// Register decoders for standard formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/afero"
	"github.com/xlc-dev/chromatic/internal/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrNotImage = errors.New("not a supported image")

// Formats lists the registered decoder names.
var Formats = []string{"png", "jpeg", "gif", "webp", "bmp", "tiff"}

// Decode reads a whole image from r. Unknown or corrupt data is reported as
// ErrNotImage.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrNotImage
		}
		return nil, "", fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	return img, format, nil
}

func Load(fs afero.Fs, path string) (image.Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	b := img.Bounds()
	log.Debugf("Decoded %s (%s, %dx%d)", path, format, b.Dx(), b.Dy())
	return img, nil
}
