package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalize_SmallImageKeepsSize(t *testing.T) {
	out, err := Normalize(pngBytes(t, 200, 100))
	assert.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestNormalize_LargeImageScaledToBound(t *testing.T) {
	out, err := Normalize(pngBytes(t, 2048, 1024))
	assert.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, 1024, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestNormalize_PortraitAspectPreserved(t *testing.T) {
	out, err := Normalize(pngBytes(t, 1000, 2000))
	assert.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 1024, img.Bounds().Dy())
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	assert.Error(t, err)
}
