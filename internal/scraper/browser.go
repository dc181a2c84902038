package scraper

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"

	"ofertas-tiempo-real/internal/logger"
)

// Wait after DOM ready so client-side rendering can fill the product grid.
const browserSettleDelay = 2 * time.Second

// BrowserFetcher renders the page in headless Chrome and returns its HTML.
type BrowserFetcher struct {
	userAgent string
	timeout   time.Duration
	logger    logger.Logger
}

func NewBrowserFetcher(userAgent string, timeout time.Duration, log logger.Logger) *BrowserFetcher {
	if log == nil {
		log = logger.Nop()
	}
	return &BrowserFetcher{
		userAgent: userAgent,
		timeout:   timeout,
		logger:    log,
	}
}

func (f *BrowserFetcher) allocatorOptions() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(f.userAgent),
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1366, 900),
	)
}

func (f *BrowserFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, f.allocatorOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if f.timeout > 0 {
		var cancelTimeout context.CancelFunc
		browserCtx, cancelTimeout = context.WithTimeout(browserCtx, f.timeout)
		defer cancelTimeout()
	}

	start := time.Now()
	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(browserSettleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("BrowserFetcher", "page rendered", map[string]interface{}{
		"url":         rawURL,
		"bytes":       len(html),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if html == "" {
		return nil, ErrNoContent
	}
	return []byte(html), nil
}
