package scraper

import (
	"bytes"
	"context"
	"net/url"
	"time"

	"ofertas-tiempo-real/internal/config"
	"ofertas-tiempo-real/internal/logger"
	"ofertas-tiempo-real/internal/models"
)

// Options configures a Scraper.
type Options struct {
	URL       string
	Selectors Selectors
	Limit     int
}

// Scraper fetches the promotions page once and turns it into a Catalog.
type Scraper struct {
	fetcher Fetcher
	opts    Options
	logger  logger.Logger
}

func New(fetcher Fetcher, opts Options, log logger.Logger) *Scraper {
	if log == nil {
		log = logger.Nop()
	}
	return &Scraper{
		fetcher: fetcher,
		opts:    opts,
		logger:  log,
	}
}

// NewFetcher picks the fetch backend named by the configuration.
func NewFetcher(cfg *config.Config, log logger.Logger) Fetcher {
	if cfg.FetchMode == config.FetchModeBrowser {
		return NewBrowserFetcher(cfg.UserAgent, cfg.Timeout, log)
	}
	return NewHTTPFetcher(cfg.UserAgent, cfg.Timeout, log)
}

// FromConfig builds a scraper and its fetcher from the application config.
func FromConfig(cfg *config.Config, log logger.Logger) *Scraper {
	return New(NewFetcher(cfg, log), Options{
		URL:   cfg.SourceURL,
		Limit: cfg.Limit,
		Selectors: Selectors{
			ContainerClass: cfg.ContainerClass,
			Title:          cfg.TitleSelector,
			Image:          cfg.ImageSelector,
			ImageAttr:      cfg.ImageAttr,
			Price:          cfg.PriceSelector,
		},
	}, log)
}

// Scrape performs one fetch and extraction.
func (s *Scraper) Scrape(ctx context.Context) (*models.Catalog, error) {
	start := time.Now()

	s.logger.Info("Scraper", "fetching promotions", map[string]interface{}{
		"url":   s.opts.URL,
		"limit": s.opts.Limit,
	})

	body, err := s.fetcher.Fetch(ctx, s.opts.URL)
	if err != nil {
		return nil, &ScrapeError{Stage: StageFetch, URL: s.opts.URL, Err: err}
	}

	listings, err := Extract(bytes.NewReader(body), s.opts.Selectors, s.opts.Limit)
	if err != nil {
		return nil, &ScrapeError{Stage: StageParse, URL: s.opts.URL, Err: err}
	}

	if base, err := url.Parse(s.opts.URL); err == nil {
		ResolveImages(listings, base)
	}

	catalog := models.NewCatalog(s.opts.URL, listings, start, time.Since(start))
	stats := catalog.Stats()

	s.logger.Info("Scraper", "listings extracted", map[string]interface{}{
		"count":         stats.Total,
		"missing_name":  stats.MissingName,
		"missing_price": stats.MissingPrice,
		"missing_image": stats.MissingImage,
		"duration_ms":   catalog.Duration.Milliseconds(),
	})
	if stats.Total == 0 {
		s.logger.Warning("Scraper", "no product tiles matched", map[string]interface{}{
			"container_class": s.opts.Selectors.ContainerClass,
		})
	}

	return catalog, nil
}
