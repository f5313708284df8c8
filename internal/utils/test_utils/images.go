// internal/utils/test_utils/images.go
package test_utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	"github.com/stretchr/testify/require"
)

// PNGBytes is a 1x1 transparent PNG.
var PNGBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// WritePNG writes a small valid PNG into a temp dir and returns its path.
func WritePNG(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leaf.png")
	require.NoError(t, os.WriteFile(path, PNGBytes, 0o600))
	return path
}

// PNGOfSize encodes a w x h leaf-green PNG.
func PNGOfSize(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 34, G: uint8(100 + (x+y)%100), B: 34, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// WriteSizedPNG writes a w x h PNG into a temp dir and returns its path.
func WriteSizedPNG(t testing.TB, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plant.png")
	require.NoError(t, os.WriteFile(path, PNGOfSize(t, w, h), 0o600))
	return path
}

// WriteOversizedPNG writes a PNG header followed by padding up to one byte
// over utils.MaxImageBytes (sparse, so it is cheap).
func WriteOversizedPNG(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "huge.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = f.Write(PNGBytes)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(utils.MaxImageBytes+1))
	require.NoError(t, f.Close())
	return path
}

// WriteTextFile writes a non-image file.
func WriteTextFile(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("water on mondays\n"), 0o600))
	return path
}
