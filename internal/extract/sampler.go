package extract

import (
	"image"

	"github.com/xlc-dev/chromatic/internal/colorutil"
	"golang.org/x/image/draw"
)

// DefaultSampleTarget bounds how many pixels reach the clusterer.
const DefaultSampleTarget = 10000

// SamplePixels reads RGB triples from a row-major RGBA buffer, skipping
// pixels uniformly so that roughly DefaultSampleTarget samples come out.
func SamplePixels(buf []byte, width, height int) []colorutil.RGB {
	return samplePixels(buf, width, height, DefaultSampleTarget)
}

func samplePixels(buf []byte, width, height, target int) []colorutil.RGB {
	area := width * height
	if width <= 0 || height <= 0 || area <= 0 {
		return nil
	}
	if target <= 0 {
		target = DefaultSampleTarget
	}

	rate := area / target
	if rate < 1 {
		rate = 1
	}
	stride := 4 * rate

	pixels := make([]colorutil.RGB, 0, len(buf)/stride+1)
	for i := 0; i+2 < len(buf); i += stride {
		pixels = append(pixels, colorutil.RGB{R: buf[i], G: buf[i+1], B: buf[i+2]})
	}
	return pixels
}

// ToNRGBA returns img as a tightly packed, non-premultiplied RGBA image
// anchored at the origin, the same layout a canvas hands out.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if nrgba, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && nrgba.Stride == 4*b.Dx() {
		// A sub-image shares its parent's buffer up to the parent's end, so
		// the pixels are clipped to the bounds before they are handed out.
		n := nrgba.Stride * b.Dy()
		if len(nrgba.Pix) == n {
			return nrgba
		}
		if len(nrgba.Pix) > n {
			return &image.NRGBA{Pix: nrgba.Pix[:n:n], Stride: nrgba.Stride, Rect: b}
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func SampleImage(img image.Image) []colorutil.RGB {
	return sampleImage(img, DefaultSampleTarget)
}

func sampleImage(img image.Image, target int) []colorutil.RGB {
	if img == nil {
		return nil
	}
	nrgba := ToNRGBA(img)
	return samplePixels(nrgba.Pix, nrgba.Rect.Dx(), nrgba.Rect.Dy(), target)
}
