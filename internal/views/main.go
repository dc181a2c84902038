package views

import (
	"fmt"
	"image"
	"image/color"

	"ofertas-tiempo-real/internal/gui/components"
	"ofertas-tiempo-real/internal/gui/layout"
	"ofertas-tiempo-real/internal/models"
	viewcomponents "ofertas-tiempo-real/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// Row weights and spacing of the main column.
const (
	titleWeight    = 0.1
	carouselWeight = 0.6
	searchWeight   = 0.1
	menuWeight     = 0.1
	layoutPadding  = 10
	layoutSpacing  = 10
)

// MainView is the single window of the application.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	title         *canvas.Text
	carousel      *components.Carousel
	searchBar     *viewcomponents.SearchBar
	menuBar       *viewcomponents.MenuBar
	statusBar     *viewcomponents.StatusBar

	showCaptions bool
	placeholder  image.Image
}

// NewMainView builds the widget tree and sets it as the window content.
// Captions under slides stay off unless showCaptions is set.
func NewMainView(window fyne.Window, showCaptions bool, placeholder image.Image) *MainView {
	view := &MainView{
		window:       window,
		showCaptions: showCaptions,
		placeholder:  placeholder,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.title = viewcomponents.NewTitle()
	mv.carousel = components.NewCarousel()
	mv.searchBar = viewcomponents.NewSearchBar()
	mv.menuBar = viewcomponents.NewMenuBar()
	mv.statusBar = viewcomponents.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	column := container.New(
		layout.NewProportionalLayout(layoutPadding, layoutSpacing,
			titleWeight, carouselWeight, searchWeight, menuWeight),
		container.NewCenter(mv.title),
		mv.carousel,
		mv.searchBar.Entry(),
		mv.menuBar.GetContainer(),
	)

	mv.mainContainer = container.NewStack(
		canvas.NewRectangle(color.White),
		container.NewBorder(nil, mv.statusBar.GetContainer(), nil, nil, column),
	)

	mv.window.SetContent(mv.mainContainer)
}

// SetSearchHandler sets the observer for submitted searches
func (mv *MainView) SetSearchHandler(handler func(string)) {
	mv.searchBar.SetSubmitHandler(handler)
}

// SetSectionHandler sets the observer for the menu buttons
func (mv *MainView) SetSectionHandler(handler func(string)) {
	mv.menuBar.SetSectionHandler(handler)
}

// SetListings replaces the carousel with one placeholder slide per listing.
func (mv *MainView) SetListings(listings []models.Listing) {
	fyne.Do(func() {
		mv.carousel.Clear()
		for _, l := range listings {
			caption := ""
			if mv.showCaptions {
				caption = fmt.Sprintf("%s · %s", l.Name, l.Price)
			}
			mv.carousel.AddSlide(mv.placeholder, caption)
		}
	})
}

// SetSlideImage swaps the loaded picture into slide i.
func (mv *MainView) SetSlideImage(i int, img image.Image) {
	fyne.Do(func() {
		mv.carousel.SetSlideImage(i, img)
	})
}

// UpdateStatus updates the status line
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// GetCarousel returns the carousel widget
func (mv *MainView) GetCarousel() *components.Carousel {
	return mv.carousel
}

// GetSearchBar returns the search bar component
func (mv *MainView) GetSearchBar() *viewcomponents.SearchBar {
	return mv.searchBar
}

// GetMenuBar returns the menu component
func (mv *MainView) GetMenuBar() *viewcomponents.MenuBar {
	return mv.menuBar
}

// GetTitle returns the heading text
func (mv *MainView) GetTitle() *canvas.Text {
	return mv.title
}

// GetStatus returns the current status line
func (mv *MainView) GetStatus() string {
	return mv.statusBar.GetStatus()
}
