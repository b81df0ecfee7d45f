// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package view holds the state of the search page and the protein page.
//
// Each view records the latest request it issued as a Ticket. A completion
// is committed only if its ticket is still the latest; a response to a
// superseded request is dropped, whatever order responses arrive in. Views
// are safe for concurrent use.
package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/pdiddy/protein-info/internal/logging"
	"github.com/pdiddy/protein-info/internal/present"
	"github.com/pdiddy/protein-info/internal/search"
	"github.com/pdiddy/protein-info/pkg/types"
)

var logger = logging.Logger("view")

// Ticket identifies one issued request. Tickets increase monotonically per view.
type Ticket uint64

// SearchState is the search page state.
type SearchState int

const (
	SearchIdle SearchState = iota
	SearchSearching
	SearchSuccess
	SearchError
)

func (s SearchState) String() string {
	switch s {
	case SearchIdle:
		return "idle"
	case SearchSearching:
		return "searching"
	case SearchSuccess:
		return "success"
	case SearchError:
		return "error"
	default:
		return fmt.Sprintf("SearchState(%d)", int(s))
	}
}

// SearchSnapshot is a read-only copy of the search view.
type SearchSnapshot struct {
	State   SearchState
	Query   string
	Mode    types.SearchMode
	Results []types.SearchResult
	Count   int
	Err     error
}

// SearchView is the search page: Idle, then Searching, then Success or Error.
type SearchView struct {
	mu      sync.Mutex
	latest  Ticket
	state   SearchState
	query   string
	mode    types.SearchMode
	results []types.SearchResult
	count   int
	err     error
}

// NewSearchView returns a view in the Idle state.
func NewSearchView() *SearchView {
	return &SearchView{results: []types.SearchResult{}}
}

// Begin enters Searching for (query, mode), clears any prior error, and
// returns the ticket the completion must present. Results of the previous
// search stay visible until the new one commits.
func (v *SearchView) Begin(query string, mode types.SearchMode) Ticket {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.latest++
	v.state = SearchSearching
	v.query = query
	v.mode = mode
	v.err = nil
	return v.latest
}

// Commit applies the outcome of the request identified by t. It returns false
// and changes nothing if a newer request has been issued since. A failed
// search clears the result list.
func (v *SearchView) Commit(t Ticket, out search.Output, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if t != v.latest {
		logger.Debug("discarding stale search result",
			slog.Uint64("ticket", uint64(t)),
			slog.Uint64("latest", uint64(v.latest)))
		return false
	}

	if err != nil {
		v.state = SearchError
		v.err = err
		v.results = []types.SearchResult{}
		v.count = 0
		return true
	}

	v.state = SearchSuccess
	v.err = nil
	v.results = out.Results
	if v.results == nil {
		v.results = []types.SearchResult{}
	}
	v.count = out.Count
	return true
}

// Submit normalises raw, and if it is non-empty runs one search through svc
// and commits the outcome. An empty query returns search.ErrEmptyQuery and
// leaves the view untouched. The returned bool reports whether the outcome
// was committed.
func (v *SearchView) Submit(ctx context.Context, svc search.Service, raw string, mode types.SearchMode) (bool, error) {
	q, ok := search.NormalizeQuery(raw)
	if !ok {
		return false, search.ErrEmptyQuery
	}
	if !mode.Valid() {
		return false, fmt.Errorf("%w: %q", search.ErrInvalidMode, mode)
	}

	t := v.Begin(q, mode)
	out, err := search.Search(ctx, svc, q, mode)
	return v.Commit(t, out, err), err
}

// Snapshot returns a copy of the current state.
func (v *SearchView) Snapshot() SearchSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	results := make([]types.SearchResult, len(v.results))
	copy(results, v.results)
	return SearchSnapshot{
		State:   v.state,
		Query:   v.query,
		Mode:    v.mode,
		Results: results,
		Count:   v.count,
		Err:     v.err,
	}
}

// RenderSearch writes the page for s: the prompt before any search, a
// progress line while searching, the failure alert, the no-matches notice, or
// the result list.
func RenderSearch(w io.Writer, s SearchSnapshot, format types.OutputFormat) error {
	switch s.State {
	case SearchIdle:
		fmt.Fprintln(w, present.MsgPrompt)
		return nil
	case SearchSearching:
		fmt.Fprintln(w, present.MsgSearching)
		return nil
	case SearchError:
		fmt.Fprintf(w, "error: %s\n", present.MsgSearchFailed)
		return nil
	}

	if len(s.Results) == 0 && (format == types.FormatTable || format == "") {
		fmt.Fprintf(w, "info: %s\n", present.MsgNoMatches)
		return nil
	}
	return search.Write(s.Results, format, w)
}

// IsValidation reports whether err was raised before any request was sent.
func IsValidation(err error) bool {
	return errors.Is(err, search.ErrEmptyQuery) || errors.Is(err, search.ErrInvalidMode)
}
