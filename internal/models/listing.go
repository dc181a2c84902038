package models

import "time"

// Placeholder values substituted when a product tile lacks the matching element.
const (
	DefaultName  = "Sin título"
	DefaultPrice = "Precio no disponible"
	DefaultImage = "https://via.placeholder.com/400x200.png"
)

// Listing is one scraped product. All three fields are always set.
type Listing struct {
	Name  string
	Price string
	Image string
}

// HasDefaults reports which fields carry placeholder values.
func (l Listing) HasDefaults() (name, price, image bool) {
	return l.Name == DefaultName, l.Price == DefaultPrice, l.Image == DefaultImage
}

// Catalog is the result of one fetch, in document order.
type Catalog struct {
	SourceURL string
	FetchedAt time.Time
	Duration  time.Duration

	listings []Listing
}

// NewCatalog copies listings so later changes to the caller's slice don't leak in.
func NewCatalog(sourceURL string, listings []Listing, fetchedAt time.Time, duration time.Duration) *Catalog {
	owned := make([]Listing, len(listings))
	copy(owned, listings)
	return &Catalog{
		SourceURL: sourceURL,
		FetchedAt: fetchedAt,
		Duration:  duration,
		listings:  owned,
	}
}

// Len returns the number of listings; nil catalogs are empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.listings)
}

// Listings returns a copy of the listings.
func (c *Catalog) Listings() []Listing {
	if c == nil {
		return nil
	}
	out := make([]Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

// Images returns the image URL of every listing in order.
func (c *Catalog) Images() []string {
	if c == nil {
		return nil
	}
	urls := make([]string, len(c.listings))
	for i, l := range c.listings {
		urls[i] = l.Image
	}
	return urls
}

// CatalogStats counts how many listings fell back to placeholders.
type CatalogStats struct {
	Total        int
	MissingName  int
	MissingPrice int
	MissingImage int
}

func (c *Catalog) Stats() CatalogStats {
	stats := CatalogStats{Total: c.Len()}
	if c == nil {
		return stats
	}
	for _, l := range c.listings {
		name, price, image := l.HasDefaults()
		if name {
			stats.MissingName++
		}
		if price {
			stats.MissingPrice++
		}
		if image {
			stats.MissingImage++
		}
	}
	return stats
}
