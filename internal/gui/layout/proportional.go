package layout

import (
	"fyne.io/fyne/v2"
)

// ProportionalLayout stacks objects vertically and shares the height between
// them by weight. Weights are normalised, so 0.1/0.6/0.1/0.1 behaves like 1/6/1/1.
type ProportionalLayout struct {
	weights []float32
	padding float32
	spacing float32
}

func NewProportionalLayout(padding, spacing float32, weights ...float32) *ProportionalLayout {
	return &ProportionalLayout{
		weights: weights,
		padding: padding,
		spacing: spacing,
	}
}

// weight returns the weight of row i; rows without one get 1.
func (pl *ProportionalLayout) weight(i int) float32 {
	if i < len(pl.weights) && pl.weights[i] > 0 {
		return pl.weights[i]
	}
	return 1
}

func visible(objects []fyne.CanvasObject) []int {
	rows := make([]int, 0, len(objects))
	for i, obj := range objects {
		if obj.Visible() {
			rows = append(rows, i)
		}
	}
	return rows
}

func (pl *ProportionalLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	rows := visible(objects)
	if len(rows) == 0 {
		return
	}

	total := float32(0)
	for _, i := range rows {
		total += pl.weight(i)
	}

	width := containerSize.Width - 2*pl.padding
	available := containerSize.Height - 2*pl.padding - pl.spacing*float32(len(rows)-1)
	if available < 0 {
		available = 0
	}

	y := pl.padding
	for _, i := range rows {
		height := available * pl.weight(i) / total
		objects[i].Resize(fyne.NewSize(width, height))
		objects[i].Move(fyne.NewPos(pl.padding, y))
		y += height + pl.spacing
	}
}

func (pl *ProportionalLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	rows := visible(objects)
	if len(rows) == 0 {
		return fyne.NewSize(2*pl.padding, 2*pl.padding)
	}

	// Every row must reach its MinSize, so the tallest min/weight ratio sets the height.
	total := float32(0)
	for _, i := range rows {
		total += pl.weight(i)
	}

	maxWidth := float32(0)
	perWeight := float32(0)
	for _, i := range rows {
		objMin := objects[i].MinSize()
		maxWidth = fyne.Max(maxWidth, objMin.Width)
		perWeight = fyne.Max(perWeight, objMin.Height/pl.weight(i))
	}

	height := perWeight*total + pl.spacing*float32(len(rows)-1) + 2*pl.padding
	return fyne.NewSize(maxWidth+2*pl.padding, height)
}
