package layout

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
)

func rect(minW, minH float32) *canvas.Rectangle {
	r := canvas.NewRectangle(nil)
	r.SetMinSize(fyne.NewSize(minW, minH))
	return r
}

func TestProportionalLayoutSharesHeightByWeight(t *testing.T) {
	objs := []fyne.CanvasObject{rect(0, 0), rect(0, 0), rect(0, 0), rect(0, 0)}
	l := NewProportionalLayout(10, 10, 0.1, 0.6, 0.1, 0.1)

	// 2*10 padding + 3*10 spacing leaves 900 of height to share.
	l.Layout(objs, fyne.NewSize(500, 950))

	assert.InDelta(t, 100, objs[0].Size().Height, 0.01)
	assert.InDelta(t, 600, objs[1].Size().Height, 0.01)
	assert.InDelta(t, 100, objs[2].Size().Height, 0.01)
	assert.InDelta(t, 100, objs[3].Size().Height, 0.01)

	assert.Equal(t, float32(480), objs[0].Size().Width)
	assert.Equal(t, fyne.NewPos(10, 10), objs[0].Position())
	assert.InDelta(t, 120, objs[1].Position().Y, 0.01)
	assert.InDelta(t, 730, objs[2].Position().Y, 0.01)
}

func TestProportionalLayoutSkipsHidden(t *testing.T) {
	hidden := rect(0, 0)
	hidden.Hide()
	objs := []fyne.CanvasObject{rect(0, 0), hidden, rect(0, 0)}

	NewProportionalLayout(0, 0, 1, 5, 1).Layout(objs, fyne.NewSize(100, 200))

	assert.InDelta(t, 100, objs[0].Size().Height, 0.01)
	assert.InDelta(t, 100, objs[2].Size().Height, 0.01)
}

func TestProportionalLayoutMinSize(t *testing.T) {
	objs := []fyne.CanvasObject{rect(50, 30), rect(120, 60)}
	l := NewProportionalLayout(5, 10, 1, 1)

	size := l.MinSize(objs)
	assert.Equal(t, float32(130), size.Width)
	// Both rows need 60 to satisfy the taller one at equal weight.
	assert.Equal(t, float32(60*2+10+10), size.Height)

	assert.Equal(t, fyne.NewSize(10, 10), l.MinSize(nil))
}
