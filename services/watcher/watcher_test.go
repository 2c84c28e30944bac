package watcher

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"techbbswatcher/helpers"
	"techbbswatcher/internal/scraper"
	"techbbswatcher/pkg/errors"
	"techbbswatcher/services/notifier"
	"techbbswatcher/services/state"
)

// mockScraper is a scraper.Scraper returning canned listings
type mockScraper struct {
	name     string
	listings []scraper.Listing
	err      error
	details  *scraper.ListingDetails
}

var _ scraper.Scraper = (*mockScraper)(nil)

func (m *mockScraper) FetchListings() ([]scraper.Listing, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listings, nil
}

func (m *mockScraper) FetchDetails(url string) (*scraper.ListingDetails, error) {
	return m.details, nil
}

func (m *mockScraper) GetName() string {
	return m.name
}

// mockNotifier records sent alerts and can fail after a number of sends
type mockNotifier struct {
	sent      []notifier.Alert
	failAfter int // fail the (failAfter+1)th send; -1 never fails
}

var _ notifier.Notifier = (*mockNotifier)(nil)

func (m *mockNotifier) Send(alert notifier.Alert) error {
	if m.failAfter >= 0 && len(m.sent) >= m.failAfter {
		return errors.NewNotification("mock", "send failed", nil)
	}
	m.sent = append(m.sent, alert)
	return nil
}

func (m *mockNotifier) Close() error { return nil }

func newMockNotifier() *mockNotifier {
	return &mockNotifier{failAfter: -1}
}

func listing(id, title string) scraper.Listing {
	return scraper.Listing{
		ID:       id,
		Title:    title,
		URL:      "https://bbs.io-tech.fi/threads/t." + id + "/",
		Category: "prossu",
		Keyword:  "7800X3D",
	}
}

func tempStore(t *testing.T) (*state.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thread_data.json")
	return state.NewFileStore(path), path
}

func TestRunNewListingAlertsOnce(t *testing.T) {
	store, path := tempStore(t)
	notif := newMockNotifier()
	s := &mockScraper{
		name:     "techbbs-cpu",
		listings: []scraper.Listing{listing("T123", "Selling AMD 7800X3D barely used")},
		details:  &scraper.ListingDetails{Model: "AMD 7800X3D", Price: "250€"},
	}

	w := NewWatcher([]scraper.Scraper{s}, store, notif, 14*24*time.Hour)
	assert.NoError(t, w.Run())

	assert.Len(t, notif.sent, 1)
	assert.Equal(t, "T123", notif.sent[0].Listing.ID)
	assert.Equal(t, "AMD 7800X3D", notif.sent[0].Details.Model)

	// The identifier is persisted
	reloaded := state.NewFileStore(path)
	assert.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Has("T123"))
}

func TestRunAlreadySeenListingIsSilent(t *testing.T) {
	store, _ := tempStore(t)
	assert.NoError(t, store.Load())
	store.Add("T123", time.Now().Add(-24*time.Hour))
	assert.NoError(t, store.Save())

	notif := newMockNotifier()
	s := &mockScraper{
		name:     "techbbs-cpu",
		listings: []scraper.Listing{listing("T123", "Selling AMD 7800X3D barely used")},
	}

	w := NewWatcher([]scraper.Scraper{s}, store, notif, 14*24*time.Hour)
	assert.NoError(t, w.Run())

	assert.Empty(t, notif.sent)
	assert.True(t, store.Has("T123"))
}

func TestRunPrunesOldEntries(t *testing.T) {
	store, path := tempStore(t)
	assert.NoError(t, store.Load())
	store.Add("T001", time.Now().Add(-20*24*time.Hour))
	assert.NoError(t, store.Save())

	w := NewWatcher([]scraper.Scraper{&mockScraper{name: "techbbs-cpu"}}, store, newMockNotifier(), 14*24*time.Hour)
	assert.NoError(t, w.Run())

	reloaded := state.NewFileStore(path)
	assert.NoError(t, reloaded.Load())
	assert.False(t, reloaded.Has("T001"))
}

func TestRunFetchFailureLeavesStateUntouched(t *testing.T) {
	store, path := tempStore(t)
	s := &mockScraper{
		name: "techbbs-cpu",
		err:  errors.NewNetwork("techbbs-cpu", "timeout", nil),
	}

	w := NewWatcher([]scraper.Scraper{s}, store, newMockNotifier(), 14*24*time.Hour)
	err := w.Run()
	assert.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNetwork))

	// No state file is written on a failed run
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunSendFailurePersistsDeliveredAlerts(t *testing.T) {
	store, path := tempStore(t)
	notif := &mockNotifier{failAfter: 1}
	s := &mockScraper{
		name: "techbbs-cpu",
		listings: []scraper.Listing{
			listing("T123", "Selling AMD 7800X3D barely used"),
			listing("T124", "AMD 7800X3D uusi paketissa"),
		},
	}

	w := NewWatcher([]scraper.Scraper{s}, store, notif, 14*24*time.Hour)
	err := w.Run()
	assert.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotification))
	assert.Len(t, notif.sent, 1)

	// The delivered identifier is persisted so a re-run will not double-alert
	reloaded := state.NewFileStore(path)
	assert.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Has("T123"))
	assert.False(t, reloaded.Has("T124"))
}

func TestRunCorruptStateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thread_data.json")
	assert.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	w := NewWatcher([]scraper.Scraper{&mockScraper{name: "techbbs-cpu"}}, state.NewFileStore(path), newMockNotifier(), 14*24*time.Hour)
	err := w.Run()
	assert.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeState))
}

// End-to-end: real section scraper against a fixture server, real file store,
// mock transport. A second run over the same page alerts nothing.
func TestRunEndToEnd(t *testing.T) {
	const sectionHTML = `
<div class="structItem structItem--thread is-prefix1 js-inlineModContainer js-threadListItem-123456">
	<div class="structItem-cell structItem-cell--main">
		<a href="?prefix_id=1"><span class="label">Myydään</span></a>
		<a href="/threads/myydaan-amd-7800x3d.123456/">Selling AMD 7800X3D barely used</a>
	</div>
	<div class="structItem-cell structItem-cell--latest">
		<a href="/threads/myydaan-amd-7800x3d.123456/latest"><time datetime="2026-08-25T10:00:00+0300">Ti</time></a>
	</div>
</div>`
	const threadHTML = `<div class="bbWrapper"><b>Myydään:</b> AMD Ryzen 7 7800X3D<br><b>Hinta:</b> 250€<br></div>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.URL.Path == "/forums/prosessorit-emolevyt-ja-muistit.73/" {
			io.WriteString(w, sectionHTML)
			return
		}
		io.WriteString(w, threadHTML)
	}))
	defer server.Close()

	s := scraper.NewSectionScraper(scraper.SectionConfig{
		Name:       "techbbs-cpu",
		URL:        server.URL + "/forums/prosessorit-emolevyt-ja-muistit.73/",
		BaseURL:    server.URL,
		Category:   "prossu",
		SalePrefix: "Myydään",
		Keywords:   []string{"7800X3D"},
		Selectors: scraper.Selectors{
			ThreadList: "div.structItem.structItem--thread",
			MainCell:   "div.structItem-cell.structItem-cell--main",
			PostedAt:   "div.structItem-cell.structItem-cell--latest a time",
		},
		IDExtractor: scraper.ThreadID,
	}, helpers.NewFetcher(10*time.Second))

	store, path := tempStore(t)
	notif := newMockNotifier()

	w := NewWatcher([]scraper.Scraper{s}, store, notif, 14*24*time.Hour)
	assert.NoError(t, w.Run())
	assert.Len(t, notif.sent, 1)
	assert.Equal(t, "123456", notif.sent[0].Listing.ID)
	assert.NotNil(t, notif.sent[0].Details)
	assert.Equal(t, "AMD Ryzen 7 7800X3D", notif.sent[0].Details.Model)

	// Second run over the same page: nothing new
	store2 := state.NewFileStore(path)
	w2 := NewWatcher([]scraper.Scraper{s}, store2, notif, 14*24*time.Hour)
	assert.NoError(t, w2.Run())
	assert.Len(t, notif.sent, 1)
}
