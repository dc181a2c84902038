package scraper

import (
	"errors"
	"fmt"
)

// ErrNoContent is returned when a fetch succeeds but the body is empty.
var ErrNoContent = errors.New("empty response body")

const (
	StageFetch = "fetch"
	StageParse = "parse"
)

// ScrapeError records which step of a scrape failed and for which URL.
type ScrapeError struct {
	Stage string
	URL   string
	Err   error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.URL, e.Err)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}
