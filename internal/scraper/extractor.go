package scraper

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ofertas-tiempo-real/internal/models"
)

// Selectors describes where a product tile keeps its title, image and price.
type Selectors struct {
	// ContainerClass is matched as a substring of a div's class attribute.
	ContainerClass string
	Title          string
	Image          string
	ImageAttr      string
	Price          string
}

// DefaultSelectors matches the retailer's product-tile markup.
func DefaultSelectors() Selectors {
	return Selectors{
		ContainerClass: "product-tile__item",
		Title:          "a.link",
		Image:          "img.tile-image",
		ImageAttr:      "src",
		Price:          "span.price-value",
	}
}

// Extract parses an HTML document and returns at most limit listings in
// document order. Fields missing from a tile are replaced by the model defaults.
func Extract(r io.Reader, sel Selectors, limit int) ([]models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return ExtractDocument(doc.Selection, sel, limit), nil
}

// ExtractDocument runs the extraction over an already parsed selection.
func ExtractDocument(root *goquery.Selection, sel Selectors, limit int) []models.Listing {
	listings := make([]models.Listing, 0, max(limit, 0))
	if limit <= 0 {
		return listings
	}

	root.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		if !ok || !strings.Contains(class, sel.ContainerClass) {
			return true
		}
		listings = append(listings, extractListing(s, sel))
		return len(listings) < limit
	})

	return listings
}

func extractListing(tile *goquery.Selection, sel Selectors) models.Listing {
	listing := models.Listing{
		Name:  models.DefaultName,
		Price: models.DefaultPrice,
		Image: models.DefaultImage,
	}

	if title := nodeText(tile.Find(sel.Title).First()); title != "" {
		listing.Name = title
	}
	if price := nodeText(tile.Find(sel.Price).First()); price != "" {
		listing.Price = price
	}

	attr := sel.ImageAttr
	if attr == "" {
		attr = "src"
	}
	if src, ok := tile.Find(sel.Image).First().Attr(attr); ok && strings.TrimSpace(src) != "" {
		listing.Image = strings.TrimSpace(src)
	}

	return listing
}

// nodeText trims every text node under s and joins them without a
// separator, so "$ <sup>299</sup>.990" reads "$299.990". Whitespace runs
// inside a single node collapse to one space.
func nodeText(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, c *goquery.Selection) {
			switch goquery.NodeName(c) {
			case "#text":
				b.WriteString(strings.Join(strings.Fields(c.Text()), " "))
			case "#comment", "script", "style":
			default:
				walk(c)
			}
		})
	}
	walk(s)
	return b.String()
}

// ResolveImages rewrites relative and protocol-relative image URLs against base.
func ResolveImages(listings []models.Listing, base *url.URL) {
	if base == nil {
		return
	}
	for i := range listings {
		ref, err := url.Parse(listings[i].Image)
		if err != nil || ref.IsAbs() {
			continue
		}
		listings[i].Image = base.ResolveReference(ref).String()
	}
}
