package extract

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xlc-dev/chromatic/internal/colorutil"
)

func rgbaBuffer(pixels ...colorutil.RGB) []byte {
	buf := make([]byte, 0, 4*len(pixels))
	for _, p := range pixels {
		buf = append(buf, p.R, p.G, p.B, 255)
	}
	return buf
}

func TestSamplePixelsZeroArea(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{name: "zero width", width: 0, height: 10},
		{name: "zero height", width: 10, height: 0},
		{name: "negative", width: -1, height: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, SamplePixels(make([]byte, 40), tt.width, tt.height))
		})
	}
}

func TestSamplePixelsSkipsAlpha(t *testing.T) {
	buf := []byte{
		1, 2, 3, 0,
		4, 5, 6, 128,
		7, 8, 9, 255,
		10, 11, 12, 64,
	}
	got := SamplePixels(buf, 2, 2)
	assert.Equal(t, []colorutil.RGB{
		{R: 1, G: 2, B: 3},
		{R: 4, G: 5, B: 6},
		{R: 7, G: 8, B: 9},
		{R: 10, G: 11, B: 12},
	}, got)
}

func TestSamplePixelsStride(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		{name: "below target", width: 50, height: 50, want: 2500},
		{name: "just above target", width: 101, height: 100, want: 10100},
		{name: "double target", width: 200, height: 100, want: 10000},
		{name: "megapixel", width: 1000, height: 1000, want: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 4*tt.width*tt.height)
			assert.Len(t, SamplePixels(buf, tt.width, tt.height), tt.want)
		})
	}
}

func TestSamplePixelsStrideOrder(t *testing.T) {
	// 20000 pixels -> every second pixel is read.
	width, height := 200, 100
	buf := make([]byte, 4*width*height)
	for i := 0; i < width*height; i++ {
		buf[4*i] = byte(i % 256)
	}

	got := SamplePixels(buf, width, height)
	require.Len(t, got, 10000)
	assert.Equal(t, uint8(0), got[0].R)
	assert.Equal(t, uint8(2), got[1].R)
	assert.Equal(t, uint8(4), got[2].R)
}

func TestSamplePixelsTruncatedBuffer(t *testing.T) {
	got := SamplePixels([]byte{9, 8, 7, 255, 1, 2}, 2, 1)
	assert.Equal(t, []colorutil.RGB{{R: 9, G: 8, B: 7}}, got)
}

func TestSamplePixelsCustomTarget(t *testing.T) {
	buf := make([]byte, 4*100)
	assert.Len(t, samplePixels(buf, 10, 10, 10), 10)
	assert.Len(t, samplePixels(buf, 10, 10, 0), 100)
}

func TestSampleImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 7, A: 255})
		}
	}

	// A sub-image has a non-zero origin and a wider stride than its width.
	sub := img.SubImage(image.Rect(2, 2, 4, 4))
	got := SampleImage(sub)
	assert.Equal(t, []colorutil.RGB{
		{R: 20, G: 20, B: 7},
		{R: 30, G: 20, B: 7},
		{R: 20, G: 30, B: 7},
		{R: 30, G: 30, B: 7},
	}, got)

	assert.Empty(t, SampleImage(nil))
	assert.Empty(t, SampleImage(image.NewRGBA(image.Rectangle{})))
}

func TestSampleImageCroppedNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{A: 255}
			if y >= 2 {
				c.R = 255
			}
			img.SetNRGBA(x, y, c)
		}
	}

	// The top half starts at the origin with the parent's stride, but its
	// buffer still runs on into the red rows.
	top := img.SubImage(image.Rect(0, 0, 4, 2)).(*image.NRGBA)
	require.Len(t, top.Pix, 64)

	packed := ToNRGBA(top)
	assert.Len(t, packed.Pix, 32)
	assert.Equal(t, image.Rect(0, 0, 4, 2), packed.Bounds())

	got := SampleImage(top)
	assert.Equal(t, repeat(colorutil.RGB{}, 8), got)
}

func TestToNRGBAReusesPackedImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	assert.Same(t, img, ToNRGBA(img))

	converted := ToNRGBA(image.NewGray(image.Rect(0, 0, 3, 2)))
	assert.Equal(t, image.Rect(0, 0, 3, 2), converted.Bounds())
	assert.Len(t, converted.Pix, 4*6)
}
