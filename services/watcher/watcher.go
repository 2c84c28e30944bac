package watcher

import (
	"time"

	"techbbswatcher/internal/scraper"
	"techbbswatcher/logger"
	"techbbswatcher/services/notifier"
	"techbbswatcher/services/state"
)

// Watcher runs the fetch-parse-filter-notify pipeline once per invocation
type Watcher struct {
	scrapers []scraper.Scraper
	store    state.Store
	notifier notifier.Notifier
	maxAge   time.Duration
	log      *logger.Logger
}

// NewWatcher creates a new watcher
func NewWatcher(
	scrapers []scraper.Scraper,
	store state.Store,
	notif notifier.Notifier,
	maxAge time.Duration,
) *Watcher {
	return &Watcher{
		scrapers: scrapers,
		store:    store,
		notifier: notif,
		maxAge:   maxAge,
		log:      logger.ForComponent("watcher"),
	}
}

type match struct {
	listing scraper.Listing
	source  scraper.Scraper
}

// Run executes one pass of the pipeline. Fetch and parse failures abort the
// run before the state file is touched. A notification failure stops further
// sends but still persists the identifiers that were alerted, so a re-run
// never double-alerts.
func (w *Watcher) Run() error {
	if err := w.store.Load(); err != nil {
		return err
	}
	pruned := w.store.Prune(w.maxAge)

	var matches []match
	for _, s := range w.scrapers {
		w.log.Info().Str("scraper", s.GetName()).Msg("Checking for valid threads")
		listings, err := s.FetchListings()
		if err != nil {
			return err
		}
		for _, listing := range listings {
			matches = append(matches, match{listing: listing, source: s})
		}
	}

	sent := 0
	var sendErr error
	for _, m := range matches {
		if w.store.Has(m.listing.ID) {
			continue
		}

		details, err := m.source.FetchDetails(m.listing.URL)
		if err != nil {
			// Degrade to a title-only alert rather than losing the match
			w.log.Warn().Err(err).Str("thread", m.listing.ID).Msg("Falling back to title-only alert")
			details = nil
		}

		if err := w.notifier.Send(notifier.Alert{Listing: m.listing, Details: details}); err != nil {
			sendErr = err
			break
		}
		w.store.Add(m.listing.ID, time.Now())
		sent++
	}

	if err := w.store.Save(); err != nil {
		if sendErr == nil {
			return err
		}
		w.log.Error().Err(err).Msg("Failed to persist state after send failure")
	}

	w.log.Info().
		Int("matches", len(matches)).
		Int("alerts", sent).
		Int("pruned", pruned).
		Msg("Run finished")

	return sendErr
}
