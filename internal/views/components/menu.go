package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	TitleText         = "🔥 Ofertas en Tiempo Real 🔥"
	TitleSize         = 30
	SearchPlaceholder = "🔍 Buscar ofertas..."
	SectionPersonal   = "Particulares 🛒"
	SectionBusiness   = "Negocios 🏪"
)

// NewTitle builds the bold black heading.
func NewTitle() *canvas.Text {
	title := canvas.NewText(TitleText, color.Black)
	title.TextSize = TitleSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	return title
}

// SearchBar is the search entry. It has no search behaviour; the handler only observes input.
type SearchBar struct {
	entry   *widget.Entry
	handler func(string)
}

func NewSearchBar() *SearchBar {
	sb := &SearchBar{entry: widget.NewEntry()}
	sb.entry.SetPlaceHolder(SearchPlaceholder)
	sb.entry.OnSubmitted = func(text string) {
		if sb.handler != nil {
			sb.handler(text)
		}
	}
	return sb
}

// SetSubmitHandler sets the observer called when the user presses enter.
func (sb *SearchBar) SetSubmitHandler(handler func(string)) {
	sb.handler = handler
}

func (sb *SearchBar) Entry() *widget.Entry {
	return sb.entry
}

// MenuBar holds the two section buttons side by side.
type MenuBar struct {
	container *fyne.Container
	personal  *widget.Button
	business  *widget.Button
	handler   func(section string)
}

func NewMenuBar() *MenuBar {
	mb := &MenuBar{}
	mb.personal = widget.NewButton(SectionPersonal, func() { mb.tapped(SectionPersonal) })
	mb.business = widget.NewButton(SectionBusiness, func() { mb.tapped(SectionBusiness) })
	mb.container = container.New(layout.NewGridLayoutWithColumns(2), mb.personal, mb.business)
	return mb
}

func (mb *MenuBar) tapped(section string) {
	if mb.handler != nil {
		mb.handler(section)
	}
}

// SetSectionHandler sets the observer called when a section button is tapped.
func (mb *MenuBar) SetSectionHandler(handler func(section string)) {
	mb.handler = handler
}

func (mb *MenuBar) Buttons() []*widget.Button {
	return []*widget.Button{mb.personal, mb.business}
}

// GetContainer returns the menu container
func (mb *MenuBar) GetContainer() *fyne.Container {
	return mb.container
}
