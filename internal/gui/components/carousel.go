package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Horizontal drag distance that counts as a swipe.
const swipeThreshold = 40

// Carousel shows one slide at a time; dragging left moves to the next slide,
// dragging right to the previous one. It does not wrap around.
type Carousel struct {
	widget.BaseWidget

	slides  []fyne.CanvasObject
	images  []*canvas.Image
	index   int
	dragged float32

	onChanged func(index int)
}

var _ fyne.Draggable = (*Carousel)(nil)

func NewCarousel() *Carousel {
	c := &Carousel{}
	c.ExtendBaseWidget(c)
	return c
}

// AddSlide appends an image slide. A non-empty caption is shown under the image.
func (c *Carousel) AddSlide(img image.Image, caption string) int {
	canvasImg := canvas.NewImageFromImage(img)
	canvasImg.FillMode = canvas.ImageFillContain
	canvasImg.ScaleMode = canvas.ImageScaleSmooth

	var slide fyne.CanvasObject = canvasImg
	if caption != "" {
		label := widget.NewLabel(caption)
		label.Alignment = fyne.TextAlignCenter
		label.Wrapping = fyne.TextWrapWord
		slide = container.NewBorder(nil, label, nil, nil, canvasImg)
	}

	c.images = append(c.images, canvasImg)
	c.slides = append(c.slides, slide)
	c.Refresh()
	return len(c.slides) - 1
}

// SetSlideImage replaces the picture of an existing slide.
func (c *Carousel) SetSlideImage(i int, img image.Image) bool {
	if i < 0 || i >= len(c.images) {
		return false
	}
	c.images[i].Image = img
	c.images[i].Refresh()
	return true
}

// Clear removes every slide.
func (c *Carousel) Clear() {
	c.slides = nil
	c.images = nil
	c.index = 0
	c.Refresh()
}

func (c *Carousel) Len() int {
	return len(c.slides)
}

func (c *Carousel) Index() int {
	return c.index
}

// SetOnChanged registers a callback for slide changes.
func (c *Carousel) SetOnChanged(fn func(index int)) {
	c.onChanged = fn
}

// Next moves one slide forward. It reports false at the last slide.
func (c *Carousel) Next() bool {
	return c.show(c.index + 1)
}

// Previous moves one slide back. It reports false at the first slide.
func (c *Carousel) Previous() bool {
	return c.show(c.index - 1)
}

func (c *Carousel) show(i int) bool {
	if i < 0 || i >= len(c.slides) || i == c.index {
		return false
	}
	c.index = i
	c.Refresh()
	if c.onChanged != nil {
		c.onChanged(i)
	}
	return true
}

func (c *Carousel) Dragged(e *fyne.DragEvent) {
	c.dragged += e.Dragged.DX
}

func (c *Carousel) DragEnd() {
	switch {
	case c.dragged <= -swipeThreshold:
		c.Next()
	case c.dragged >= swipeThreshold:
		c.Previous()
	}
	c.dragged = 0
}

func (c *Carousel) current() fyne.CanvasObject {
	if c.index < 0 || c.index >= len(c.slides) {
		return nil
	}
	return c.slides[c.index]
}

func (c *Carousel) CreateRenderer() fyne.WidgetRenderer {
	r := &carouselRenderer{
		carousel:   c,
		background: canvas.NewRectangle(color.White),
	}
	r.objects = r.collect()
	return r
}

type carouselRenderer struct {
	carousel   *Carousel
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *carouselRenderer) collect() []fyne.CanvasObject {
	if slide := r.carousel.current(); slide != nil {
		return []fyne.CanvasObject{r.background, slide}
	}
	return []fyne.CanvasObject{r.background}
}

func (r *carouselRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if slide := r.carousel.current(); slide != nil {
		slide.Move(fyne.NewPos(0, 0))
		slide.Resize(size)
	}
}

func (r *carouselRenderer) MinSize() fyne.Size {
	size := fyne.NewSize(100, 50)
	if slide := r.carousel.current(); slide != nil {
		size = size.Max(slide.MinSize())
	}
	return size
}

func (r *carouselRenderer) Refresh() {
	r.objects = r.collect()
	r.Layout(r.carousel.Size())
	for _, obj := range r.objects {
		obj.Refresh()
	}
}

func (r *carouselRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *carouselRenderer) Destroy() {}
