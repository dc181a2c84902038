package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly"

	"ofertas-tiempo-real/internal/logger"
)

// Fetcher retrieves the raw bytes behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// HTTPFetcher performs a plain GET through a colly collector.
type HTTPFetcher struct {
	userAgent string
	timeout   time.Duration
	logger    logger.Logger
}

// NewHTTPFetcher creates a fetcher. A zero timeout keeps colly's default.
func NewHTTPFetcher(userAgent string, timeout time.Duration, log logger.Logger) *HTTPFetcher {
	if log == nil {
		log = logger.Nop()
	}
	return &HTTPFetcher{
		userAgent: userAgent,
		timeout:   timeout,
		logger:    log,
	}
}

// Fetch issues one GET. Non-2xx responses and empty bodies are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.AllowURLRevisit(),
	)
	c.WithTransport(&contextTransport{ctx: ctx, next: http.DefaultTransport})
	if f.timeout > 0 {
		c.SetRequestTimeout(f.timeout)
	}

	var (
		body   []byte
		status int
	)
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
		status = r.StatusCode
	})
	c.OnError(func(r *colly.Response, err error) {
		f.logger.Debug("HTTPFetcher", "request failed", map[string]interface{}{
			"url":    rawURL,
			"status": r.StatusCode,
			"error":  err.Error(),
		})
	})

	start := time.Now()
	if err := c.Visit(rawURL); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("GET %s: %w", rawURL, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.logger.Debug("HTTPFetcher", "response received", map[string]interface{}{
		"url":         rawURL,
		"status":      status,
		"bytes":       len(body),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if len(body) == 0 {
		return nil, ErrNoContent
	}
	return body, nil
}

// contextTransport binds every request of one collector to ctx, so
// cancelling ctx aborts a request that is already in flight.
type contextTransport struct {
	ctx  context.Context
	next http.RoundTripper
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.next.RoundTrip(req.WithContext(t.ctx))
}
