package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes PNG sólido de w×h para los tests.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: 20, G: 60, B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAssetLoader_CargaYReduce(t *testing.T) {
	fsys := fstest.MapFS{
		assetLogo: {Data: pngBytes(t, 1200, 300)},
	}
	l := NewAssetLoader(fsys)

	img, err := l.Load(assetLogo)
	require.NoError(t, err)
	assert.Equal(t, defaultMaxImagePix, img.Width)
	assert.Equal(t, 150, img.Height)

	again, err := l.Load(assetLogo)
	require.NoError(t, err)
	assert.Same(t, img, again, "la segunda carga sale de memoria")
}

func TestAssetLoader_Errores(t *testing.T) {
	l := NewAssetLoader(fstest.MapFS{
		"images/broken.png": {Data: []byte("not a png")},
	})

	_, err := l.Load(assetSignature)
	assert.Error(t, err)

	_, err = l.Load("images/broken.png")
	assert.Error(t, err)

	_, err = NewAssetLoader(nil).Load(assetLogo)
	assert.ErrorIs(t, err, errNoAssets)

	var nilLoader *AssetLoader
	_, err = nilLoader.Load(assetLogo)
	assert.ErrorIs(t, err, errNoAssets)
}
