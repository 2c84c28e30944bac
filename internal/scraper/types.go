package scraper

// Listing represents a single marketplace thread scraped from the forum
type Listing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	PostedAt string `json:"posted_at,omitempty"`
	Category string `json:"category"`
	Keyword  string `json:"keyword,omitempty"`
}

// ListingDetails holds the structured ad fields parsed from a thread's first post
type ListingDetails struct {
	Model    string
	Price    string
	Bought   string
	Warranty string
}

// Scraper is the boundary between the pipeline and the site-specific markup:
// page content in, listings out.
type Scraper interface {
	// FetchListings retrieves matching listings from a forum section
	FetchListings() ([]Listing, error)

	// FetchDetails retrieves the ad fields from a thread page, nil if the
	// post structure is not recognized
	FetchDetails(url string) (*ListingDetails, error)

	// GetName returns the scraper's name for logging and identification
	GetName() string
}

// IDExtractorFunc defines the function signature for extracting a thread
// identifier from its URL
type IDExtractorFunc func(link string) (string, error)

// Selectors contains CSS selectors for the elements of a section listing page
type Selectors struct {
	ThreadList string
	MainCell   string
	PostedAt   string
}

// SectionConfig contains configuration for one forum section scraper
type SectionConfig struct {
	Name        string
	URL         string
	BaseURL     string
	Category    string
	SalePrefix  string
	Keywords    []string
	Selectors   Selectors
	IDExtractor IDExtractorFunc
}
