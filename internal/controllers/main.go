package controllers

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"ofertas-tiempo-real/internal/logger"
	"ofertas-tiempo-real/internal/models"
)

// CatalogSource produces the listings shown at startup.
type CatalogSource interface {
	Scrape(ctx context.Context) (*models.Catalog, error)
}

// SlideSource turns an image URL into a picture for the carousel.
type SlideSource interface {
	Load(ctx context.Context, rawURL string) (image.Image, error)
}

// View is the part of the main view the controller drives.
type View interface {
	SetListings(listings []models.Listing)
	SetSlideImage(i int, img image.Image)
	UpdateStatus(status string)
	ShowError(err error)
	SetSearchHandler(handler func(string))
	SetSectionHandler(handler func(string))
}

// MainController loads the catalog once and feeds it to the view.
type MainController struct {
	catalogs CatalogSource
	slides   SlideSource
	view     View
	logger   logger.Logger

	mu      sync.RWMutex
	catalog *models.Catalog
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewMainController(catalogs CatalogSource, slides SlideSource, log logger.Logger) *MainController {
	if log == nil {
		log = logger.Nop()
	}
	return &MainController{
		catalogs: catalogs,
		slides:   slides,
		logger:   log,
	}
}

// SetMainView associates the view and attaches the observers for its inert controls.
func (mc *MainController) SetMainView(view View) {
	mc.view = view

	view.SetSearchHandler(func(query string) {
		mc.logger.Debug("MainController", "search submitted", map[string]interface{}{
			"query": query,
		})
	})
	view.SetSectionHandler(func(section string) {
		mc.logger.Debug("MainController", "section tapped", map[string]interface{}{
			"section": section,
		})
	})
}

// LoadCatalog scrapes once and fills the carousel with placeholder slides.
// On failure the carousel stays empty, the error is shown and returned.
func (mc *MainController) LoadCatalog(ctx context.Context) error {
	catalog, err := mc.catalogs.Scrape(ctx)
	if err != nil {
		mc.logger.Error("MainController", err, map[string]interface{}{
			"stage": "load_catalog",
		})
		mc.view.SetListings(nil)
		mc.view.UpdateStatus("No se pudieron cargar las ofertas")
		mc.view.ShowError(fmt.Errorf("no se pudieron cargar las ofertas: %w", err))
		return err
	}

	mc.mu.Lock()
	mc.catalog = catalog
	mc.mu.Unlock()

	mc.view.SetListings(catalog.Listings())
	mc.view.UpdateStatus(statusLine(catalog))
	return nil
}

func statusLine(c *models.Catalog) string {
	switch c.Len() {
	case 0:
		return "No hay ofertas disponibles"
	case 1:
		return fmt.Sprintf("1 oferta · %s", c.FetchedAt.Format(time.TimeOnly))
	default:
		return fmt.Sprintf("%d ofertas · %s", c.Len(), c.FetchedAt.Format(time.TimeOnly))
	}
}

// StartSlides downloads the slide images in order in the background.
// Slides that fail keep their placeholder.
func (mc *MainController) StartSlides(ctx context.Context) {
	mc.mu.Lock()
	if mc.cancel != nil || mc.catalog == nil {
		mc.mu.Unlock()
		return
	}
	loadCtx, cancel := context.WithCancel(ctx)
	mc.cancel = cancel
	urls := mc.catalog.Images()
	mc.mu.Unlock()

	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		mc.loadSlides(loadCtx, urls)
	}()
}

func (mc *MainController) loadSlides(ctx context.Context, urls []string) {
	loaded := 0
	for i, u := range urls {
		if ctx.Err() != nil {
			return
		}

		img, err := mc.slides.Load(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			mc.logger.Warning("MainController", "slide image unavailable", map[string]interface{}{
				"index": i,
				"url":   u,
				"error": err.Error(),
			})
			continue
		}

		mc.view.SetSlideImage(i, img)
		loaded++
	}

	mc.logger.Info("MainController", "slides loaded", map[string]interface{}{
		"loaded": loaded,
		"total":  len(urls),
	})
}

// Catalog returns the catalog loaded at startup, or nil.
func (mc *MainController) Catalog() *models.Catalog {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.catalog
}

// Wait blocks until background slide loading has finished.
func (mc *MainController) Wait() {
	mc.wg.Wait()
}

// Shutdown stops slide loading and waits for it to exit.
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	if mc.cancel != nil {
		mc.cancel()
	}
	mc.mu.Unlock()
	mc.wg.Wait()
}
