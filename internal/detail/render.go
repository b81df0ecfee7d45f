// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detail

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/protein-info/internal/paginate"
	"github.com/pdiddy/protein-info/internal/present"
	"github.com/pdiddy/protein-info/pkg/types"
)

// sequenceWidth is the number of residues per sequence line.
const sequenceWidth = 60

// emphasisMarker flags emphasized interactions when colour is off.
const emphasisMarker = "*"

// RenderOptions tunes the table output.
type RenderOptions struct {
	// Color highlights emphasized interaction scores with ANSI colour.
	Color bool
}

// Render writes the full detail view: header, basic information,
// identifiers, sequence, functional annotations, and the current page of
// interactions selected by pager.
func Render(w io.Writer, d types.ProteinDetail, pager paginate.Pager, opts RenderOptions) {
	p := d.Protein

	fmt.Fprintln(w, present.DetailTitle(p))
	fmt.Fprintf(w, "ID: %s\n", present.IDText(p))
	if p.OrganismName != "" {
		fmt.Fprintf(w, "Organism: %s\n", p.OrganismName)
	}

	section(w, "Basic Information")
	basic := newTable(w)
	basic.AppendRow(table.Row{"Node Type", present.NodeTypeLabel(p.NodeType)})
	if p.Dataset != "" {
		basic.AppendRow(table.Row{"Dataset", p.Dataset})
	}
	basic.AppendRow(table.Row{"UUID", p.ID})
	basic.Render()

	section(w, "Identifiers")
	if len(d.Identifiers) == 0 {
		fmt.Fprintln(w, present.MsgNoIdentifiers)
	} else {
		ids := newTable(w)
		ids.AppendHeader(table.Row{"System", "Identifier"})
		for _, rec := range d.Identifiers {
			ids.AppendRow(table.Row{present.SystemLabel(rec), rec.ExternalID})
		}
		ids.Render()
	}

	if lines := present.SequenceLines(p.Sequence, sequenceWidth); len(lines) > 0 {
		section(w, fmt.Sprintf("Protein Sequence (%d aa)", len(strings.TrimSpace(p.Sequence))))
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}

	renderAnnotations(w, d.FunctionalAnnotations)
	renderInteractions(w, d.ProteinInteractions, pager, opts)
}

func renderAnnotations(w io.Writer, annotations []types.FunctionalAnnotation) {
	section(w, "Functional Annotations")
	if len(annotations) == 0 {
		fmt.Fprintln(w, present.MsgNoAnnotations)
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"GO Term", "GO ID", "Description", "Type", "Score"})
	for _, a := range annotations {
		t.AppendRow(table.Row{
			present.GoTermName(a.GoTerm),
			a.GoTerm.ExternalID,
			present.DescriptionLabel(a.GoTerm),
			present.NodeTypeLabel(a.GoTerm.NodeType),
			present.FormatScore(a.Score),
		})
	}
	t.Render()
}

func renderInteractions(w io.Writer, interactions []types.ProteinInteraction, pager paginate.Pager, opts RenderOptions) {
	section(w, "Protein-Protein Interactions")
	if len(interactions) == 0 {
		fmt.Fprintln(w, present.MsgNoInteraction)
		return
	}

	page := paginate.Apply(pager, interactions)
	if len(page) == 0 {
		fmt.Fprintln(w, present.PastLastPage(pager.Page+1, pager.PageCount(len(interactions)), len(interactions)))
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Protein Name", "Organism", "ID", "Interaction Score", "Open"})
	for _, in := range page {
		t.AppendRow(table.Row{
			present.DisplayName(in.Protein),
			present.OrganismLabel(in.Protein),
			present.IDText(in.Protein),
			scoreCell(in.Score, opts),
			in.Protein.ID,
		})
	}
	t.Render()

	from, to := pager.Bounds(len(interactions))
	fmt.Fprintf(w, "%d–%d of %d  (page %d/%d, %d per page; %s score > %.1f)\n",
		from, to, len(interactions),
		pager.Page+1, pager.PageCount(len(interactions)), pager.Size,
		emphasisMarker, paginate.EmphasisThreshold)
}

// scoreCell formats an interaction score and applies the emphasis tier.
func scoreCell(score *float64, opts RenderOptions) string {
	s := present.FormatScore(score)
	if paginate.Rank(score) != paginate.TierEmphasized {
		return s
	}
	if opts.Color {
		return text.Colors{text.Bold, text.FgHiBlue}.Sprint(s)
	}
	return s + " " + emphasisMarker
}

func section(w io.Writer, name string) {
	fmt.Fprintf(w, "\n%s\n", name)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// FormatJSON writes the detail payload as indented JSON.
func FormatJSON(d types.ProteinDetail, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// FormatYAML writes the detail payload as YAML.
func FormatYAML(d types.ProteinDetail, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// Write renders d in the requested format. Pagination applies to table
// output only; JSON and YAML carry every interaction.
func Write(w io.Writer, d types.ProteinDetail, pager paginate.Pager, format types.OutputFormat, opts RenderOptions) error {
	switch format {
	case types.FormatJSON:
		return FormatJSON(d, w)
	case types.FormatYAML:
		return FormatYAML(d, w)
	case types.FormatTable, "":
		Render(w, d, pager, opts)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}
