package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ofertas-tiempo-real/internal/config"
	"ofertas-tiempo-real/internal/models"
)

type stubFetcher struct {
	body []byte
	err  error
	urls []string
}

func (s *stubFetcher) Fetch(_ context.Context, rawURL string) ([]byte, error) {
	s.urls = append(s.urls, rawURL)
	return s.body, s.err
}

func TestScrapeBuildsCatalog(t *testing.T) {
	fetcher := &stubFetcher{body: []byte(page(
		tile{title: "Notebook", image: "/img/nb.jpg", price: "$499.990"},
		tile{title: "Audífonos", image: "https://cdn.example.test/a.jpg", noPrice: true},
	))}
	s := New(fetcher, Options{
		URL:       "https://www.example.test/tecnologia/",
		Selectors: DefaultSelectors(),
		Limit:     5,
	}, nil)

	catalog, err := s.Scrape(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"https://www.example.test/tecnologia/"}, fetcher.urls)
	assert.Equal(t, "https://www.example.test/tecnologia/", catalog.SourceURL)
	assert.Equal(t, []models.Listing{
		{Name: "Notebook", Price: "$499.990", Image: "https://www.example.test/img/nb.jpg"},
		{Name: "Audífonos", Price: models.DefaultPrice, Image: "https://cdn.example.test/a.jpg"},
	}, catalog.Listings())
}

func TestScrapeFetchErrorCarriesStage(t *testing.T) {
	boom := errors.New("connection refused")
	s := New(&stubFetcher{err: boom}, Options{URL: "https://x.test", Selectors: DefaultSelectors(), Limit: 5}, nil)

	_, err := s.Scrape(context.Background())
	require.Error(t, err)

	var scrapeErr *ScrapeError
	require.ErrorAs(t, err, &scrapeErr)
	assert.Equal(t, StageFetch, scrapeErr.Stage)
	assert.ErrorIs(t, err, boom)
}

func TestScrapeEmptyPage(t *testing.T) {
	s := New(&stubFetcher{body: []byte("<html></html>")}, Options{URL: "https://x.test", Selectors: DefaultSelectors(), Limit: 5}, nil)

	catalog, err := s.Scrape(context.Background())
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
}

func TestFromConfigEndToEnd(t *testing.T) {
	tiles := make([]tile, 0, 7)
	for i := 0; i < 7; i++ {
		tiles = append(tiles, complete(i))
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "Mozilla/5.0" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(page(tiles...)))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.SourceURL = srv.URL

	catalog, err := FromConfig(cfg, nil).Scrape(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, catalog.Len())
	assert.Equal(t, "Producto 4", catalog.Listings()[4].Name)
}

func TestNewFetcherFollowsMode(t *testing.T) {
	cfg := config.Default()
	assert.IsType(t, &HTTPFetcher{}, NewFetcher(cfg, nil))

	cfg.FetchMode = config.FetchModeBrowser
	assert.IsType(t, &BrowserFetcher{}, NewFetcher(cfg, nil))
}
