package scraper

import (
	"techbbswatcher/config"
	"techbbswatcher/helpers"
	"techbbswatcher/pkg/errors"
)

// techbbsSelectors matches the XenForo thread list markup used by the forum
var techbbsSelectors = Selectors{
	ThreadList: "div.structItem.structItem--thread",
	MainCell:   "div.structItem-cell.structItem-cell--main",
	PostedAt:   "div.structItem-cell.structItem-cell--latest a time",
}

// NewSectionScrapers creates a scraper per forum section that has keywords configured
func NewSectionScrapers(cfg *config.Config, fetcher *helpers.Fetcher) []Scraper {
	var scrapers []Scraper

	if len(cfg.CPUs) > 0 {
		scrapers = append(scrapers, NewSectionScraper(SectionConfig{
			Name:        "techbbs-cpu",
			URL:         cfg.ForumURL + cfg.CPUForumPath,
			BaseURL:     cfg.ForumURL,
			Category:    "prossu",
			SalePrefix:  "Myydään",
			Keywords:    cfg.CPUs,
			Selectors:   techbbsSelectors,
			IDExtractor: ThreadID,
		}, fetcher))
	}

	if len(cfg.GPUs) > 0 {
		scrapers = append(scrapers, NewSectionScraper(SectionConfig{
			Name:        "techbbs-gpu",
			URL:         cfg.ForumURL + cfg.GPUForumPath,
			BaseURL:     cfg.ForumURL,
			Category:    "näyttis",
			SalePrefix:  "Myydään",
			Keywords:    cfg.GPUs,
			Selectors:   techbbsSelectors,
			IDExtractor: ThreadID,
		}, fetcher))
	}

	return scrapers
}

// ThreadID extracts the numeric thread identifier from a XenForo thread URL,
// e.g. ".../threads/myydaan-amd-7800x3d.123456/" yields "123456".
func ThreadID(link string) (string, error) {
	slug := helpers.LastSplitPart(link, "/")
	id := helpers.LastSplitPart(slug, ".")
	if !hasDigitsOnly(id) {
		return "", errors.NewParsing("techbbs", "no thread id in link: "+link, nil)
	}
	return id, nil
}

func hasDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
