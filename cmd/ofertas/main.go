package main

import (
	"context"
	"image"
	"log"
	"runtime"
	"time"

	"ofertas-tiempo-real/internal/config"
	"ofertas-tiempo-real/internal/controllers"
	"ofertas-tiempo-real/internal/imaging"
	"ofertas-tiempo-real/internal/logger"
	"ofertas-tiempo-real/internal/scraper"
	"ofertas-tiempo-real/internal/shutdown"
	"ofertas-tiempo-real/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Ofertas en Tiempo Real"
	AppID      = "cl.ofertas.tiempo-real"
	AppVersion = "1.0.0"
)

// Application owns the Fyne app and the components wired into it.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	shutdown   *shutdown.Manager

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(ctx, cfg)
	application.shutdown.Listen(cancel)

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// NewApplication builds the window, scraper, controller and view.
func NewApplication(ctx context.Context, cfg *config.Config) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(views.WhiteTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	appCtx, appCancel := context.WithCancel(ctx)

	appLogger := logger.NewStructuredLogger(cfg.LogLevel)
	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"source_url": cfg.SourceURL,
		"fetch_mode": cfg.FetchMode,
		"limit":      cfg.Limit,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
	})

	promoScraper := scraper.FromConfig(cfg, appLogger)

	// Images always go through plain HTTP, even when the page itself is rendered by a browser.
	imageFetcher := scraper.NewHTTPFetcher(cfg.UserAgent, cfg.Timeout, appLogger)
	slideBox := image.Pt(int(cfg.WindowWidth), int(cfg.WindowHeight*0.6))
	slideLoader := imaging.NewSlideLoader(imageFetcher, slideBox, appLogger)

	mainView := views.NewMainView(window, cfg.ShowCaption, imaging.Placeholder(400, 200))
	mainController := controllers.NewMainController(promoScraper, slideLoader, appLogger)
	mainController.SetMainView(mainView)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("controller", mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: mainController,
		shutdown:   shutdownManager,
		ctx:        appCtx,
		cancel:     appCancel,
	}

	application.setupWindowEvents()
	return application
}

// Run scrapes once, shows the window and blocks in the Fyne event loop.
func (app *Application) Run(ctx context.Context) error {
	start := time.Now()

	// The page is fetched before the window shows; a failure leaves an empty carousel.
	if err := app.controller.LoadCatalog(app.ctx); err != nil {
		app.logger.Warning("Application", "starting without listings", map[string]interface{}{
			"error": err.Error(),
		})
	}

	app.fyneApp.Lifecycle().SetOnStarted(func() {
		app.controller.StartSlides(app.ctx)
	})

	go func() {
		<-app.ctx.Done()
		if ctx.Err() != nil {
			app.logger.Info("Application", "context cancelled, quitting", nil)
			fyne.Do(app.fyneApp.Quit)
		}
	}()

	app.logger.Info("Application", "showing window", map[string]interface{}{
		"startup_ms": time.Since(start).Milliseconds(),
	})

	app.window.ShowAndRun()
	return nil
}

func (app *Application) setupWindowEvents() {
	app.window.SetOnClosed(func() {
		app.logger.Info("Application", "window closed", nil)
		app.cancel()
		app.shutdown.Shutdown()
	})
}
