package imaging

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitSize(t *testing.T) {
	box := image.Pt(800, 400)

	cases := []struct {
		name string
		src  image.Point
		want image.Point
	}{
		{"smaller stays", image.Pt(400, 200), image.Pt(400, 200)},
		{"wide shrinks by width", image.Pt(1600, 400), image.Pt(800, 200)},
		{"tall shrinks by height", image.Pt(400, 1600), image.Pt(100, 400)},
		{"exact fit", image.Pt(800, 400), image.Pt(800, 400)},
		{"degenerate passes through", image.Pt(0, 10), image.Pt(0, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FitSize(tc.src, box))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(40, 20)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())

	r, g, b, _ := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(240), r>>8)
	assert.Equal(t, r, g)
	assert.Equal(t, r, b)

	r, _, _, _ = img.At(0, 0).RGBA()
	assert.Equal(t, uint32(200), r>>8)

	assert.Equal(t, image.Rect(0, 0, DefaultSlideWidth, DefaultSlideHeight), Placeholder(0, 0).Bounds())
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeScalesIntoBox(t *testing.T) {
	img, err := Decode(encodePNG(t, 200, 100), image.Pt(100, 100))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestDecodeFlattensTransparencyOntoWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.NRGBA{A: 0})
		}
	}
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := Decode(buf.Bytes(), image.Pt(10, 10))
	require.NoError(t, err)

	r, g, b, a := img.At(2, 2).RGBA()
	assert.Equal(t, []uint32{255, 255, 255, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})

	r, g, b, _ = img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{255, 0, 0}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(nil, image.Pt(10, 10))
	assert.ErrorIs(t, err, ErrUndecodable)

	_, err = Decode([]byte("not an image"), image.Pt(10, 10))
	assert.ErrorIs(t, err, ErrUndecodable)
}

type fakeFetcher struct {
	data []byte
	err  error
}

func (f fakeFetcher) Fetch(context.Context, string) ([]byte, error) {
	return f.data, f.err
}

func TestSlideLoaderLoad(t *testing.T) {
	loader := NewSlideLoader(fakeFetcher{data: encodePNG(t, 1600, 800)}, image.Point{}, nil)
	assert.Equal(t, image.Pt(DefaultSlideWidth, DefaultSlideHeight), loader.Box())

	img, err := loader.Load(context.Background(), "https://cdn.example.test/a.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 800, 400), img.Bounds())
}

func TestSlideLoaderFetchError(t *testing.T) {
	boom := errors.New("offline")
	loader := NewSlideLoader(fakeFetcher{err: boom}, image.Pt(10, 10), nil)

	_, err := loader.Load(context.Background(), "https://cdn.example.test/a.png")
	assert.ErrorIs(t, err, boom)
}
