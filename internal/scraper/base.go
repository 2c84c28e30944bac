package scraper

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"techbbswatcher/helpers"
)

// BaseScraper provides common functionality for all scrapers
type BaseScraper struct {
	BaseURL string
	Fetcher *helpers.Fetcher
}

// createDocument creates a goquery document from a reader
func (b *BaseScraper) createDocument(reader io.Reader) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(reader)
}

// ResolveURL resolves a possibly relative href against the scraper's base URL
func (b *BaseScraper) ResolveURL(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if strings.HasPrefix(href, "/") {
		return b.BaseURL + href
	}
	return href
}
