package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays a single line of status under the menu.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Cargando ofertas...")
	sb.statusLabel.Importance = widget.LowImportance
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(sb.statusLabel)
}

// SetStatus updates the status message. Call from the UI goroutine.
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
