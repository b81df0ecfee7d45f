// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FunctionalAnnotation links the protein to a GO term through an edge.
type FunctionalAnnotation struct {
	Edge   Edge   `json:"edge" yaml:"edge"`
	GoTerm GoTerm `json:"go_term" yaml:"go_term"`

	// Score is the annotation confidence in [0,1], nil when absent.
	Score *float64 `json:"score,omitempty" yaml:"score,omitempty"`

	// AnnotationType is the GO aspect derived from the edge relationship
	// (BiologicalProcess, MolecularFunction, CellularComponent), if known.
	AnnotationType NodeType `json:"annotation_type,omitempty" yaml:"annotation_type,omitempty"`
}

// ProteinInteraction links the protein to an interaction partner.
type ProteinInteraction struct {
	Edge Edge `json:"edge" yaml:"edge"`

	// Protein is the partner, already resolved by the backend.
	Protein Protein `json:"protein" yaml:"protein"`

	// Score is the interaction confidence in [0,1], nil when absent.
	Score *float64 `json:"score,omitempty" yaml:"score,omitempty"`
}

// ProteinDetail is the payload of GET /protein/{id} and the only aggregate
// handed to the detail view.
type ProteinDetail struct {
	Protein               Protein                `json:"protein" yaml:"protein"`
	Identifiers           []IdentifierRecord     `json:"identifiers" yaml:"identifiers"`
	FunctionalAnnotations []FunctionalAnnotation `json:"functional_annotations" yaml:"functional_annotations"`
	ProteinInteractions   []ProteinInteraction   `json:"protein_interactions" yaml:"protein_interactions"`
}
