package client

import (
	"net/url"
	"sync"
	"time"

	"roomshare-server/config"
	"roomshare-server/models"
)

// CountFetcher runs the count query against the backend.
type CountFetcher func(vals url.Values) (models.CountResult, error)

// CountCache memoizes count responses by normalized filter signature.
// It is constructor-injected so the querier stays testable and the
// cache's lifetime is explicit.
type CountCache struct {
	mu      sync.Mutex
	entries map[string]models.CountResult
}

func NewCountCache() *CountCache {
	return &CountCache{entries: make(map[string]models.CountResult)}
}

func (c *CountCache) Get(signature string) (models.CountResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[signature]
	return r, ok
}

func (c *CountCache) Put(signature string, r models.CountResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[signature] = r
}

func (c *CountCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]models.CountResult)
}

// CountDisplay is what the filter panel renders: either a numeric count
// or a "select a location" prompt when BoundsRequired is set.
type CountDisplay struct {
	Count          int
	HasCount       bool
	BoundsRequired bool
}

// CountQuerier drives the live result count behind the filter panel.
// Edits schedule a debounced fetch; the fetch fires only while the panel
// is open, and only the newest issued request may update the display.
type CountQuerier struct {
	mu         sync.Mutex
	fetch      CountFetcher
	cache      *CountCache
	debounce   time.Duration
	timer      *time.Timer
	latestID   uint64
	panelOpen  bool
	display    CountDisplay
	pendingSig string
	pendingVal url.Values
	cfg        config.SearchConfig
}

func NewCountQuerier(fetch CountFetcher, cache *CountCache, cfg config.SearchConfig) *CountQuerier {
	return &CountQuerier{
		fetch:    fetch,
		cache:    cache,
		debounce: time.Duration(cfg.DebounceMillis) * time.Millisecond,
		cfg:      cfg,
	}
}

// SetPanelOpen tracks the filter panel. Closing the panel cancels any
// scheduled fetch and clears a lingering bounds-required prompt so it
// cannot reappear on a later unrelated open.
func (q *CountQuerier) SetPanelOpen(open bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.panelOpen = open
	if !open {
		q.stopTimerLocked()
		q.display.BoundsRequired = false
	}
}

// Reset clears the display. Called when the filter state returns to
// clean, so stale prompts and counts do not carry over.
func (q *CountQuerier) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.stopTimerLocked()
	q.display = CountDisplay{}
}

// Display returns the current render state.
func (q *CountQuerier) Display() CountDisplay {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.display
}

// Schedule registers the latest pending filter values and restarts the
// debounce window. Each restart supersedes the previous schedule; a fetch
// already in flight is ignored at completion if a newer one was issued.
func (q *CountQuerier) Schedule(vals url.Values) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.panelOpen {
		return
	}

	sig, ok := normalizeSignature(vals, q.cfg)
	if !ok {
		return
	}

	q.pendingSig = sig
	q.pendingVal = vals
	q.stopTimerLocked()
	q.timer = time.AfterFunc(q.debounce, q.fire)
}

// Flush fires a scheduled fetch immediately, bypassing the debounce
// delay. Used by tests and by explicit user actions.
func (q *CountQuerier) Flush() {
	q.mu.Lock()
	pending := q.timer != nil
	q.stopTimerLocked()
	q.mu.Unlock()
	if pending {
		q.fire()
	}
}

func (q *CountQuerier) fire() {
	q.mu.Lock()
	sig := q.pendingSig
	vals := q.pendingVal
	if sig == "" {
		q.mu.Unlock()
		return
	}

	if cached, ok := q.cache.Get(sig); ok {
		q.applyLocked(cached)
		q.mu.Unlock()
		return
	}

	q.latestID++
	id := q.latestID
	q.mu.Unlock()

	result, err := q.fetch(vals)

	q.mu.Lock()
	defer q.mu.Unlock()
	if id != q.latestID {
		// A newer request was issued while this one was in flight.
		return
	}
	if err != nil {
		return
	}
	q.cache.Put(sig, result)
	q.applyLocked(result)
}

func (q *CountQuerier) applyLocked(r models.CountResult) {
	if r.BoundsRequired {
		q.display = CountDisplay{BoundsRequired: true}
		return
	}
	q.display = CountDisplay{Count: r.Count, HasCount: true}
}

func (q *CountQuerier) stopTimerLocked() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

// normalizeSignature parses and re-serializes the values so equivalent
// filter sets share one cache entry regardless of param order or casing.
func normalizeSignature(vals url.Values, cfg config.SearchConfig) (string, bool) {
	parsed, err := models.ParseSearchParams(vals, cfg.MaxQueryLength)
	if err != nil {
		return "", false
	}
	return parsed.Filters.ToValues().Encode(), true
}
