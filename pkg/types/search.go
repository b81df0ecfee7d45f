// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// SearchMode selects which identifier namespaces the backend matches a query
// against. The set is closed.
type SearchMode string

const (
	ModeAccession   SearchMode = "accession"
	ModeUnambiguous SearchMode = "unambiguous"
	ModeGoTerm      SearchMode = "go_term"
	ModeAll         SearchMode = "all"
)

// DefaultSearchMode matches across every namespace.
const DefaultSearchMode = ModeAll

// SearchModes returns the closed set of modes in menu order.
func SearchModes() []SearchMode {
	return []SearchMode{ModeAccession, ModeUnambiguous, ModeGoTerm, ModeAll}
}

// Valid reports whether m is one of the known modes.
func (m SearchMode) Valid() bool {
	switch m {
	case ModeAccession, ModeUnambiguous, ModeGoTerm, ModeAll:
		return true
	}
	return false
}

// Label returns the menu label for m, or the raw value for an unknown mode.
func (m SearchMode) Label() string {
	switch m {
	case ModeAccession:
		return "Protein Accession"
	case ModeUnambiguous:
		return "Unambiguous ID"
	case ModeGoTerm:
		return "GO Term"
	case ModeAll:
		return "All Identifiers"
	default:
		return string(m)
	}
}

// ParseSearchMode converts user input to a SearchMode. An empty string yields
// DefaultSearchMode.
func ParseSearchMode(s string) (SearchMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSearchMode, nil
	}
	m := SearchMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown search mode %q: use accession, unambiguous, go_term, or all", s)
	}
	return m, nil
}

// SearchResult is one matched protein with its identifier records.
type SearchResult struct {
	Protein     Protein            `json:"protein" yaml:"protein"`
	Identifiers []IdentifierRecord `json:"identifiers" yaml:"identifiers"`
}

// SearchResponse is the payload of GET /search. Count is informational: the
// backend may truncate Results, so it need not equal len(Results).
type SearchResponse struct {
	Results []SearchResult `json:"results" yaml:"results"`
	Count   int            `json:"count" yaml:"count"`
}
