// Package client holds the view-side coordination logic used by
// frontends: the filter state machine, the debounced count query, and
// the versioned map data holder. The URL is the single source of truth
// for committed filter state; everything here layers pending edits and
// in-flight fetches on top of it.
package client

import (
	"net/url"
	"sync"

	"roomshare-server/config"
	"roomshare-server/models"
)

// State is the filter editor's position in its lifecycle.
type State string

const (
	// StateClean means applied state matches the URL and there are no
	// pending edits.
	StateClean State = "clean"
	// StateDirtyPending means the user has edited at least one filter
	// field that has not been applied. The URL is untouched.
	StateDirtyPending State = "dirty-pending"
	// StateCommitting is the transient state while pending edits are
	// being flushed into a navigation.
	StateCommitting State = "committing"
	// StateBoundsRequired means the last count response asked for a
	// location before results can be counted.
	StateBoundsRequired State = "bounds-required"
)

// Navigator is the history boundary. Navigate pushes a new query string;
// the FilterState expects a matching OnRouteChange call afterwards, the
// same way it receives one for back/forward navigation.
type Navigator interface {
	Navigate(rawQuery string)
}

// FilterState is the filter editor state machine. Committed state always
// mirrors the URL; pending edits live only here and are discarded on any
// route change that did not come from Apply.
type FilterState struct {
	mu        sync.Mutex
	state     State
	applied   models.FilterParams
	pending   url.Values
	navigator Navigator
	cfg       config.SearchConfig
}

func NewFilterState(navigator Navigator, cfg config.SearchConfig) *FilterState {
	return &FilterState{
		state:     StateClean,
		pending:   url.Values{},
		navigator: navigator,
		cfg:       cfg,
	}
}

// State returns the current lifecycle state.
func (fs *FilterState) State() State {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.state
}

// Applied returns the committed filter params, parsed from the last URL.
func (fs *FilterState) Applied() models.FilterParams {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.applied
}

// SetPending records an edit to a single filter field without touching
// the URL. An empty value clears the field from the pending set.
func (fs *FilterState) SetPending(key, value string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if value == "" {
		fs.pending.Del(key)
	} else {
		fs.pending.Set(key, value)
	}
	fs.state = StateDirtyPending
}

// PendingValues returns the effective filter values: committed state with
// pending edits layered on top. This is what the live count queries.
func (fs *FilterState) PendingValues() url.Values {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.effectiveValuesLocked()
}

func (fs *FilterState) effectiveValuesLocked() url.Values {
	merged := fs.applied.ToValues()
	for key, vals := range fs.pending {
		merged.Del(key)
		for _, v := range vals {
			merged.Add(key, v)
		}
	}
	// Pagination restarts whenever the filter set changes.
	if len(fs.pending) > 0 {
		for _, key := range models.PaginationKeys {
			merged.Del(key)
		}
	}
	return merged
}

// Apply flushes pending edits into a navigation. The pending set is
// cleared; committed state updates when the resulting OnRouteChange
// arrives.
func (fs *FilterState) Apply() {
	fs.mu.Lock()
	if len(fs.pending) == 0 {
		fs.mu.Unlock()
		return
	}
	target := fs.effectiveValuesLocked()
	fs.pending = url.Values{}
	fs.state = StateCommitting
	fs.mu.Unlock()

	fs.navigator.Navigate(target.Encode())
}

// Discard drops all pending edits without navigating.
func (fs *FilterState) Discard() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.pending = url.Values{}
	fs.state = StateClean
}

// OnRouteChange resyncs committed state from the new URL. Uncommitted
// edits never survive a navigation, whether it came from Apply or from
// the browser's back/forward buttons.
func (fs *FilterState) OnRouteChange(vals url.Values) {
	parsed, err := models.ParseSearchParams(vals, fs.cfg.MaxQueryLength)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.pending = url.Values{}
	if err != nil {
		fs.applied = models.FilterParams{}
	} else {
		fs.applied = parsed.Filters
	}
	fs.state = StateClean
}

// MarkBoundsRequired records that the last count response needs a
// location. Cleared by ClearBoundsRequired, Discard, or any route change.
func (fs *FilterState) MarkBoundsRequired() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.state = StateBoundsRequired
}

// ClearBoundsRequired drops the bounds-required flag, returning to clean
// or dirty depending on whether edits are pending.
func (fs *FilterState) ClearBoundsRequired() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.state != StateBoundsRequired {
		return
	}
	if len(fs.pending) > 0 {
		fs.state = StateDirtyPending
	} else {
		fs.state = StateClean
	}
}
