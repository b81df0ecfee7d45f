// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search turns a user query and search mode into one request to the
// protein service and the response into an ordered result list. Matching is
// done by the service; this package never filters, re-sorts, or merges.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/protein-info/internal/logging"
	"github.com/pdiddy/protein-info/internal/present"
	"github.com/pdiddy/protein-info/pkg/types"
)

var logger = logging.Logger("search")

var (
	// ErrEmptyQuery is returned when the trimmed query is empty. No request
	// is sent.
	ErrEmptyQuery = errors.New("query is empty: enter a protein identifier or GO term")

	// ErrInvalidMode is returned for a mode outside the closed set.
	ErrInvalidMode = errors.New("invalid search mode")

	// ErrSearchFailed wraps every transport or server failure.
	ErrSearchFailed = errors.New("search failed")
)

// Service is the backend a search is dispatched to. *api.Client implements it.
type Service interface {
	Search(ctx context.Context, query string, mode types.SearchMode) (types.SearchResponse, error)
}

// Output is the result of one search. Count is the backend's count and is
// informational only; it need not equal len(Results).
type Output struct {
	Query   string
	Mode    types.SearchMode
	Results []types.SearchResult
	Count   int
}

// NormalizeQuery trims raw and reports whether anything is left to search for.
func NormalizeQuery(raw string) (string, bool) {
	q := strings.TrimSpace(raw)
	return q, q != ""
}

// Search sends exactly one request for (query, mode) and returns the results
// in the order the service returned them. Zero results is a successful,
// non-nil empty list; any service error is wrapped in ErrSearchFailed.
func Search(ctx context.Context, svc Service, query string, mode types.SearchMode) (Output, error) {
	q, ok := NormalizeQuery(query)
	if !ok {
		return Output{}, ErrEmptyQuery
	}
	if !mode.Valid() {
		return Output{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	resp, err := svc.Search(ctx, q, mode)
	if err != nil {
		logger.Warn("search failed",
			slog.String("query", q),
			slog.String("mode", string(mode)),
			slog.Any("error", err))
		return Output{Query: q, Mode: mode, Results: []types.SearchResult{}}, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	results := resp.Results
	if results == nil {
		results = []types.SearchResult{}
	}
	if resp.Count != len(results) {
		logger.Debug("backend count differs from result length",
			slog.Int("count", resp.Count),
			slog.Int("results", len(results)))
	}
	logger.Info("search complete",
		slog.String("query", q),
		slog.String("mode", string(mode)),
		slog.Int("results", len(results)))

	return Output{Query: q, Mode: mode, Results: results, Count: resp.Count}, nil
}

// FormatTable writes results as a header line followed by one table row per
// protein card. An empty list writes the no-matches message.
func FormatTable(results []types.SearchResult, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, present.MsgNoMatches)
		return
	}

	fmt.Fprintln(w, present.ResultCount(len(results)))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "ID", "Organism", "Identifiers", "Dataset", "Open"})
	for i, r := range results {
		chips := make([]string, len(r.Identifiers))
		for j, id := range r.Identifiers {
			chips[j] = present.IdentifierChip(id)
		}
		t.AppendRow(table.Row{
			i + 1,
			present.DisplayName(r.Protein),
			present.IDText(r.Protein),
			r.Protein.OrganismName,
			strings.Join(chips, "\n"),
			r.Protein.Dataset,
			r.Protein.ID,
		})
	}
	t.Render()
}

// FormatJSON writes the result list as indented JSON.
func FormatJSON(results []types.SearchResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// FormatYAML writes the result list as YAML.
func FormatYAML(results []types.SearchResult, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// Write renders results in the requested format.
func Write(results []types.SearchResult, format types.OutputFormat, w io.Writer) error {
	switch format {
	case types.FormatJSON:
		return FormatJSON(results, w)
	case types.FormatYAML:
		return FormatYAML(results, w)
	case types.FormatTable, "":
		FormatTable(results, w)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}
