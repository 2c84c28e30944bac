package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"techbbswatcher/helpers"
	"techbbswatcher/logger"
	"techbbswatcher/pkg/errors"
)

// SectionScraper scrapes one forum section's listing page, driven by selectors
type SectionScraper struct {
	BaseScraper
	Name        string
	URL         string
	Category    string
	SalePrefix  string
	Keywords    []string
	Selectors   Selectors
	IDExtractor IDExtractorFunc
	log         *logger.Logger
}

// NewSectionScraper creates a new section scraper from a configuration
func NewSectionScraper(config SectionConfig, fetcher *helpers.Fetcher) *SectionScraper {
	return &SectionScraper{
		BaseScraper: BaseScraper{
			BaseURL: config.BaseURL,
			Fetcher: fetcher,
		},
		Name:        config.Name,
		URL:         config.URL,
		Category:    config.Category,
		SalePrefix:  config.SalePrefix,
		Keywords:    config.Keywords,
		Selectors:   config.Selectors,
		IDExtractor: config.IDExtractor,
		log:         logger.ForComponent("scraper").WithField("section", config.Name),
	}
}

// GetName returns the scraper name
func (s *SectionScraper) GetName() string {
	return s.Name
}

// FetchListings fetches the section page and returns listings that carry the
// for-sale prefix and contain a wanted keyword.
func (s *SectionScraper) FetchListings() ([]Listing, error) {
	body, err := s.Fetcher.Fetch(s.URL)
	if err != nil {
		return nil, errors.NewNetwork(s.Name, "failed to fetch listing page", err)
	}

	doc, err := s.createDocument(body)
	if err != nil {
		return nil, errors.NewParsing(s.Name, "failed to parse listing page", err)
	}

	threads := doc.Find(s.Selectors.ThreadList)
	if threads.Length() == 0 {
		// Markup drift is a loud failure, not an empty result
		return nil, errors.NewParsing(s.Name, "thread list selector matched nothing; markup may have changed", nil)
	}

	var listings []Listing
	threads.Each(func(i int, sel *goquery.Selection) {
		if listing := s.processThread(sel); listing != nil {
			listings = append(listings, *listing)
		}
	})

	s.log.Debug().
		Int("threads", threads.Length()).
		Int("matched", len(listings)).
		Msg("Section scraped")

	return listings, nil
}

// processThread extracts a single listing from a thread row, returning nil
// for rows that are not for-sale threads or match no wanted keyword.
func (s *SectionScraper) processThread(sel *goquery.Selection) *Listing {
	main := sel.Find(s.Selectors.MainCell)
	links := main.Find("a")
	if links.Length() < 2 {
		return nil
	}

	// The first link carries the prefix label, the second the thread title
	prefix := helpers.CleanString(links.Eq(0).Find("span").Text())
	if prefix == "" || !strings.Contains(s.SalePrefix, prefix) {
		return nil
	}

	title := helpers.CleanString(links.Eq(1).Text())
	if title == "" {
		return nil
	}

	keyword, ok := MatchAny(title, s.Keywords)
	if !ok {
		return nil
	}

	href, exists := links.Eq(1).Attr("href")
	if !exists || strings.TrimSpace(href) == "" {
		return nil
	}
	url := s.ResolveURL(strings.TrimSpace(href))

	id, err := s.IDExtractor(url)
	if err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("Skipping thread without extractable id")
		return nil
	}

	postedAt, _ := sel.Find(s.Selectors.PostedAt).Attr("datetime")

	return &Listing{
		ID:       id,
		Title:    title,
		URL:      url,
		PostedAt: postedAt,
		Category: s.Category,
		Keyword:  keyword,
	}
}

// FetchDetails fetches a thread page and parses the ad fields from its first post
func (s *SectionScraper) FetchDetails(url string) (*ListingDetails, error) {
	body, err := s.Fetcher.Fetch(url)
	if err != nil {
		return nil, errors.NewNetwork(s.Name, "failed to fetch thread page", err)
	}
	return ParseDetails(body)
}
