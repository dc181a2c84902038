package imaging

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"gocv.io/x/gocv"

	"ofertas-tiempo-real/internal/logger"
)

// Slide box used when the caller does not pass one.
const (
	DefaultSlideWidth  = 800
	DefaultSlideHeight = 400
)

var ErrUndecodable = errors.New("image data could not be decoded")

// Fetcher retrieves raw image bytes.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// SlideLoader downloads listing images and scales them for the carousel.
type SlideLoader struct {
	fetcher Fetcher
	box     image.Point
	logger  logger.Logger
}

func NewSlideLoader(fetcher Fetcher, box image.Point, log logger.Logger) *SlideLoader {
	if box.X <= 0 || box.Y <= 0 {
		box = image.Pt(DefaultSlideWidth, DefaultSlideHeight)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SlideLoader{
		fetcher: fetcher,
		box:     box,
		logger:  log,
	}
}

// Box returns the bounding size slides are scaled into.
func (l *SlideLoader) Box() image.Point {
	return l.box
}

// Load fetches one image URL and returns it scaled to fit the slide box.
func (l *SlideLoader) Load(ctx context.Context, rawURL string) (image.Image, error) {
	start := time.Now()

	data, err := l.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slide %s: %w", rawURL, err)
	}

	img, err := Decode(data, l.box)
	if err != nil {
		return nil, fmt.Errorf("failed to decode slide %s: %w", rawURL, err)
	}

	l.logger.Debug("SlideLoader", "slide loaded", map[string]interface{}{
		"url":         rawURL,
		"bytes":       len(data),
		"width":       img.Bounds().Dx(),
		"height":      img.Bounds().Dy(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return img, nil
}

// Decode reads any format OpenCV understands and shrinks it into box.
// Transparent areas are composited onto white.
func Decode(data []byte, box image.Point) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrUndecodable
	}

	mat, err := decodeMat(data)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	size := image.Pt(mat.Cols(), mat.Rows())
	target := FitSize(size, box)
	if target == size {
		return toOpaqueImage(mat)
	}

	resized := gocv.NewMat()
	defer resized.Close()

	gocv.Resize(mat, &resized, target, 0, 0, gocv.InterpolationArea)
	if resized.Empty() {
		return nil, fmt.Errorf("resize to %dx%d produced an empty image", target.X, target.Y)
	}
	return toOpaqueImage(resized)
}

// decodeMat keeps the alpha channel when the image has one. Types ToImage
// cannot convert (16-bit, two channel) are decoded again as plain BGR.
func decodeMat(data []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err == nil && !mat.Empty() {
		switch mat.Type() {
		case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC3, gocv.MatTypeCV8UC4:
			return mat, nil
		}
	}
	mat.Close()

	mat, err = gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, ErrUndecodable
	}
	return mat, nil
}

func toOpaqueImage(mat gocv.Mat) (image.Image, error) {
	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}
	if mat.Channels() != 4 {
		return img, nil
	}

	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)
	return flat, nil
}

// FitSize scales src down to fit inside box keeping its aspect ratio. It never upscales.
func FitSize(src, box image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 || box.X <= 0 || box.Y <= 0 {
		return src
	}
	if src.X <= box.X && src.Y <= box.Y {
		return src
	}

	scale := min(float64(box.X)/float64(src.X), float64(box.Y)/float64(src.Y))
	w := max(int(float64(src.X)*scale), 1)
	h := max(int(float64(src.Y)*scale), 1)
	return image.Pt(w, h)
}

// Placeholder draws a light gray image with a thin border.
func Placeholder(width, height int) image.Image {
	if width <= 0 || height <= 0 {
		width, height = DefaultSlideWidth, DefaultSlideHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	fill := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	border := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				img.Set(x, y, border)
			} else {
				img.Set(x, y, fill)
			}
		}
	}
	return img
}
