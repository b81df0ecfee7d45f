// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the record shapes shared by the protein-info client:
// the entities returned by the protein search service (Protein, GoTerm, Edge,
// IdentifierRecord), the composite search and detail payloads, and the
// configuration structs for each component.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NodeType classifies a graph node returned by the backend.
type NodeType string

const (
	NodeProtein           NodeType = "Protein"
	NodeMolecularFunction NodeType = "MolecularFunction"
	NodeBiologicalProcess NodeType = "BiologicalProcess"
	NodeCellularComponent NodeType = "CellularComponent"
)

// Protein is a protein node. Only ID is guaranteed to be present.
type Protein struct {
	// ID is the opaque, stable node identifier (a UUID in practice).
	ID string `json:"id" yaml:"id"`

	// Date is the ingestion date reported by the backend, if any.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Name is the human-readable protein name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// ExternalID is the accession in the protein's primary namespace.
	ExternalID string `json:"external_id,omitempty" yaml:"external_id,omitempty"`

	// Sequence is the residue string, one letter per amino acid.
	Sequence string `json:"protein_sequence,omitempty" yaml:"protein_sequence,omitempty"`

	// Dataset tags the source dataset of the node.
	Dataset string `json:"dataset,omitempty" yaml:"dataset,omitempty"`

	// Organism is the organism (taxon) identifier.
	Organism string `json:"organism,omitempty" yaml:"organism,omitempty"`

	// OrganismName is the organism display name.
	OrganismName string `json:"organism_name,omitempty" yaml:"organism_name,omitempty"`

	NodeType NodeType `json:"node_type,omitempty" yaml:"node_type,omitempty"`
}

// GoTerm is a Gene Ontology term node.
type GoTerm struct {
	ID          string   `json:"id" yaml:"id"`
	Date        string   `json:"date,omitempty" yaml:"date,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	ExternalID  string   `json:"external_id,omitempty" yaml:"external_id,omitempty"`
	Dataset     string   `json:"dataset,omitempty" yaml:"dataset,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	NodeType    NodeType `json:"node_type,omitempty" yaml:"node_type,omitempty"`
}

// Edge is a typed relationship between two nodes of the same payload.
// The backend resolves both endpoints; the client never re-checks them.
type Edge struct {
	Source       string `json:"source" yaml:"source"`
	Target       string `json:"target" yaml:"target"`
	Relationship string `json:"relationship" yaml:"relationship"`
	Date         string `json:"date,omitempty" yaml:"date,omitempty"`

	// GoCode is the GO evidence code for annotation edges.
	GoCode string `json:"go_code,omitempty" yaml:"go_code,omitempty"`

	SourceExternalID string     `json:"source_external_id,omitempty" yaml:"source_external_id,omitempty"`
	TargetExternalID string     `json:"target_external_id,omitempty" yaml:"target_external_id,omitempty"`
	SourceType       string     `json:"source_type,omitempty" yaml:"source_type,omitempty"`
	TargetType       string     `json:"target_type,omitempty" yaml:"target_type,omitempty"`
	Dataset          StringList `json:"dataset,omitempty" yaml:"dataset,omitempty"`

	// PredictionScore is the model confidence for predicted annotations.
	PredictionScore *float64 `json:"ML_prediction_score,omitempty" yaml:"ml_prediction_score,omitempty"`

	// CombinedScore is the combined interaction confidence.
	CombinedScore *float64 `json:"string_combined_score,omitempty" yaml:"string_combined_score,omitempty"`
}

// IdentifierRecord maps a protein to one external identifier namespace.
type IdentifierRecord struct {
	// UUID is the ID of the protein this record belongs to.
	UUID string `json:"uuid" yaml:"uuid"`

	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// System is the naming authority of ExternalID (e.g. "UniProtKB").
	System string `json:"external_id_system,omitempty" yaml:"external_id_system,omitempty"`

	ExternalID string `json:"external_id,omitempty" yaml:"external_id,omitempty"`
	EntityType string `json:"entity_type,omitempty" yaml:"entity_type,omitempty"`

	SecondaryIDs          StringList `json:"secondary_ids,omitempty" yaml:"secondary_ids,omitempty"`
	AmbiguousSecondaryIDs StringList `json:"ambiguous_secondary_ids,omitempty" yaml:"ambiguous_secondary_ids,omitempty"`
}

// StringList is an ordered list of strings that the backend may encode as a
// JSON array, a single comma-separated string, or null.
type StringList []string

// UnmarshalJSON accepts an array of strings, a comma-separated string, or null.
// Blank entries are dropped; order is preserved.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	var items []string
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decoding string list: %w", err)
		}
	} else {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding string list: %w", err)
		}
		items = strings.Split(s, ",")
	}

	out := make(StringList, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	*l = out
	return nil
}

// sequenceAlphabet holds the IUPAC amino-acid letters, the ambiguity codes
// B, Z, J, X, the rare residues U and O, the stop symbol and the gap.
const sequenceAlphabet = "ACDEFGHIKLMNPQRSTVWYBZJXUO*-"

// IsProteinSequence reports whether s is a non-empty residue string.
// Lowercase letters are accepted.
func IsProteinSequence(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range strings.ToUpper(s) {
		if !strings.ContainsRune(sequenceAlphabet, r) {
			return false
		}
	}
	return true
}
