package notifier

import "techbbswatcher/internal/scraper"

// Alert carries everything needed to format one notification
type Alert struct {
	Listing scraper.Listing
	Details *scraper.ListingDetails
}

// Notifier defines the contract for alert delivery
type Notifier interface {
	// Send delivers one alert message
	Send(alert Alert) error

	// Close releases transport resources
	Close() error
}
