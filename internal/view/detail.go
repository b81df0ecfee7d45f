// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/pdiddy/protein-info/internal/detail"
	"github.com/pdiddy/protein-info/internal/paginate"
	"github.com/pdiddy/protein-info/internal/present"
	"github.com/pdiddy/protein-info/pkg/types"
)

// DetailState is the protein page state.
type DetailState int

const (
	DetailIdle DetailState = iota
	DetailLoading
	DetailLoaded
	DetailFailed
)

func (s DetailState) String() string {
	switch s {
	case DetailIdle:
		return "idle"
	case DetailLoading:
		return "loading"
	case DetailLoaded:
		return "loaded"
	case DetailFailed:
		return "failed"
	default:
		return fmt.Sprintf("DetailState(%d)", int(s))
	}
}

// DetailSnapshot is a read-only copy of the detail view.
type DetailSnapshot struct {
	State  DetailState
	ID     string
	Detail types.ProteinDetail
	Pager  paginate.Pager
	Err    error
}

// DetailView is the protein page for one id at a time, with the interaction
// pager kept beside the data.
type DetailView struct {
	mu       sync.Mutex
	latest   Ticket
	state    DetailState
	id       string
	detail   types.ProteinDetail
	pager    paginate.Pager
	pageSize int
	err      error
}

// NewDetailView returns an idle view whose pager starts at pageSize.
func NewDetailView(pageSize int) *DetailView {
	p := paginate.NewPager(pageSize)
	return &DetailView{pager: p, pageSize: p.Size}
}

// Begin enters Loading for id and returns the ticket for its completion.
// The previous detail is dropped and the pager returns to page 0.
func (v *DetailView) Begin(id string) Ticket {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.begin(id)
}

func (v *DetailView) begin(id string) Ticket {
	v.latest++
	v.state = DetailLoading
	v.id = id
	v.detail = types.ProteinDetail{}
	v.err = nil
	v.pager = paginate.Pager{Size: v.pageSize}
	return v.latest
}

// Commit applies the outcome of the request identified by t, or returns false
// if a newer request was issued since.
func (v *DetailView) Commit(t Ticket, d types.ProteinDetail, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if t != v.latest {
		logger.Debug("discarding stale detail result",
			slog.Uint64("ticket", uint64(t)),
			slog.Uint64("latest", uint64(v.latest)))
		return false
	}
	if err != nil {
		v.state = DetailFailed
		v.err = err
		v.detail = types.ProteinDetail{}
		return true
	}
	v.state = DetailLoaded
	v.detail = d
	return true
}

// Open loads id through agg unless it is already loaded or loading, in
// which case no request is sent and the pending load keeps its ticket. An
// empty id fails immediately with detail.ErrMissingID and the view shows the
// failure.
func (v *DetailView) Open(ctx context.Context, agg *detail.Aggregator, id string) (bool, error) {
	id = strings.TrimSpace(id)

	v.mu.Lock()
	if id != "" && v.id == id && (v.state == DetailLoaded || v.state == DetailLoading) {
		v.mu.Unlock()
		return false, nil
	}
	t := v.begin(id)
	v.mu.Unlock()

	d, err := agg.Get(ctx, id)
	return v.Commit(t, d, err), err
}

// HasProtein reports whether a protein is loaded, so paging has something
// to act on.
func (v *DetailView) HasProtein() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state == DetailLoaded
}

// SetPageSize switches the interaction page size and resets to page 0.
func (v *DetailView) SetPageSize(size int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.pager.SetPageSize(size); err != nil {
		return err
	}
	v.pageSize = size
	return nil
}

// SetPage moves the interaction pager to page.
func (v *DetailView) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pager.SetPage(page)
}

// NextPage advances the interaction pager if a later page has items.
func (v *DetailView) NextPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.Next(len(v.detail.ProteinInteractions))
}

// PrevPage moves the interaction pager back one page.
func (v *DetailView) PrevPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.Prev()
}

// Snapshot returns a copy of the current state.
func (v *DetailView) Snapshot() DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return DetailSnapshot{
		State:  v.state,
		ID:     v.id,
		Detail: v.detail,
		Pager:  v.pager,
		Err:    v.err,
	}
}

// RenderDetail writes the protein page for s. A failure shows the alert and
// no detail content.
func RenderDetail(w io.Writer, s DetailSnapshot, format types.OutputFormat, opts detail.RenderOptions) error {
	switch s.State {
	case DetailIdle:
		fmt.Fprintln(w, present.MsgMissingID)
		return nil
	case DetailLoading:
		fmt.Fprintln(w, present.MsgLoading)
		return nil
	case DetailFailed:
		if errors.Is(s.Err, detail.ErrMissingID) {
			fmt.Fprintf(w, "error: %s\n", present.MsgMissingID)
			return nil
		}
		fmt.Fprintf(w, "error: %s\n", present.MsgDetailFailed)
		return nil
	}
	return detail.Write(w, s.Detail, s.Pager, format, opts)
}
