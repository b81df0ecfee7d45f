// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package present holds the labelling rules shared by the search list and the
// protein detail view. Both views format entities only through this package
// so they never disagree on how the same record is shown.
package present

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdiddy/protein-info/pkg/types"
)

// User-visible messages.
const (
	MsgPrompt        = "Enter a protein identifier or GO term to get started."
	MsgSearching     = "Searching..."
	MsgNoMatches     = "No proteins found matching your search criteria. Try a different identifier or search type."
	MsgSearchFailed  = "Failed to search proteins"
	MsgLoading       = "Loading..."
	MsgDetailFailed  = "Failed to load protein details. The protein may not exist or there was a server error."
	MsgMissingID     = "No protein ID provided"
	MsgNoIdentifiers = "No identifiers available"
	MsgNoAnnotations = "No functional annotations available for this protein"
	MsgNoInteraction = "No protein-protein interactions available for this protein"
	MsgNoDescription = "No description"
	MsgDetailTitle   = "Protein Details"
	MsgOpenFirst     = "Open a protein first: open <n|id>"
)

// ScoreNA is shown in place of an absent score.
const ScoreNA = "N/A"

var nodeTypeLabels = map[types.NodeType]string{
	types.NodeProtein:           "Protein",
	types.NodeMolecularFunction: "Molecular Function",
	types.NodeBiologicalProcess: "Biological Process",
	types.NodeCellularComponent: "Cellular Component",
}

// NodeTypeLabel returns the display label for t. Unknown values are shown as
// is; an absent type is the empty string.
func NodeTypeLabel(t types.NodeType) string {
	if label, ok := nodeTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// DisplayName picks the first non-empty of name, external ID, and ID.
func DisplayName(p types.Protein) string {
	return firstNonEmpty(p.Name, p.ExternalID, p.ID)
}

// DetailTitle is the heading of the protein page: name, else MsgDetailTitle.
func DetailTitle(p types.Protein) string {
	return firstNonEmpty(p.Name, MsgDetailTitle)
}

// PastLastPage tells the user that page (1-based) holds no interactions.
func PastLastPage(page, pages, total int) string {
	return fmt.Sprintf("No interactions on page %d; the last page is %d (%d in total)", page, pages, total)
}

// IDText is the identifier line of a protein card: external ID, else ID.
func IDText(p types.Protein) string {
	return firstNonEmpty(p.ExternalID, p.ID)
}

// GoTermName picks the first non-empty of name, external ID, and ID.
func GoTermName(g types.GoTerm) string {
	return firstNonEmpty(g.Name, g.ExternalID, g.ID)
}

// FormatScore renders score with exactly three decimals, or ScoreNA when the
// score is absent or not finite.
func FormatScore(score *float64) string {
	if score == nil || math.IsNaN(*score) || math.IsInf(*score, 0) {
		return ScoreNA
	}
	return fmt.Sprintf("%.3f", *score)
}

// ResultCount renders the list header, e.g. "1 Protein Found".
func ResultCount(n int) string {
	if n == 1 {
		return "1 Protein Found"
	}
	return fmt.Sprintf("%d Proteins Found", n)
}

// IdentifierChip renders an identifier as "System: external_id".
func IdentifierChip(r types.IdentifierRecord) string {
	return firstNonEmpty(r.System, "ID") + ": " + r.ExternalID
}

// SystemLabel is the namespace column of the identifier table.
func SystemLabel(r types.IdentifierRecord) string {
	return firstNonEmpty(r.System, "Unknown")
}

// OrganismLabel returns the organism display name or "Unknown".
func OrganismLabel(p types.Protein) string {
	return firstNonEmpty(p.OrganismName, "Unknown")
}

// DescriptionLabel returns the GO term description or MsgNoDescription.
func DescriptionLabel(g types.GoTerm) string {
	return firstNonEmpty(g.Description, MsgNoDescription)
}

// SequenceLines splits a residue string into lines of width residues.
func SequenceLines(seq string, width int) []string {
	seq = strings.TrimSpace(seq)
	if seq == "" {
		return nil
	}
	if width <= 0 {
		return []string{seq}
	}
	lines := make([]string, 0, (len(seq)+width-1)/width)
	for len(seq) > width {
		lines = append(lines, seq[:width])
		seq = seq[width:]
	}
	return append(lines, seq)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
