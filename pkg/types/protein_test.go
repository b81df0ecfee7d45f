// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"array", `["P12345", "Q99999"]`, StringList{"P12345", "Q99999"}},
		{"comma string", `"P12345, Q99999"`, StringList{"P12345", "Q99999"}},
		{"single string", `"P12345"`, StringList{"P12345"}},
		{"blanks dropped", `["", " A ", "B"]`, StringList{"A", "B"}},
		{"empty string", `""`, StringList{}},
		{"null", `null`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringListUnmarshalRejectsNumbers(t *testing.T) {
	var got StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestIdentifierRecordDecodesMixedLists(t *testing.T) {
	raw := `{
		"uuid": "u-1",
		"external_id_system": "UniProtKB",
		"external_id": "P12345",
		"secondary_ids": "A0A000,B1B111",
		"ambiguous_secondary_ids": ["GENE1"]
	}`
	var rec IdentifierRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	assert.Equal(t, "UniProtKB", rec.System)
	assert.Equal(t, StringList{"A0A000", "B1B111"}, rec.SecondaryIDs)
	assert.Equal(t, StringList{"GENE1"}, rec.AmbiguousSecondaryIDs)
}

func TestEdgeScoresAreOptional(t *testing.T) {
	var e Edge
	require.NoError(t, json.Unmarshal([]byte(`{"source":"a","target":"b","relationship":"r","string_combined_score":0.912}`), &e))
	assert.Nil(t, e.PredictionScore)
	require.NotNil(t, e.CombinedScore)
	assert.InDelta(t, 0.912, *e.CombinedScore, 1e-9)
}

func TestIsProteinSequence(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"MKTAYIAKQR", true},
		{"mktayiakqr", true},
		{"MKTXBZ*", true},
		{"MKT-AYI", true},
		{"", false},
		{"MKT AYI", false},
		{"MKT1", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsProteinSequence(tt.in))
		})
	}
}

func TestParseSearchMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SearchMode
		wantErr bool
	}{
		{"", ModeAll, false},
		{"accession", ModeAccession, false},
		{" GO_TERM ", ModeGoTerm, false},
		{"unambiguous", ModeUnambiguous, false},
		{"all", ModeAll, false},
		{"fuzzy", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSearchMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchModesClosedSet(t *testing.T) {
	modes := SearchModes()
	assert.Len(t, modes, 4)
	for _, m := range modes {
		assert.True(t, m.Valid(), m)
		assert.NotEqual(t, string(m), m.Label())
	}
	assert.False(t, SearchMode("fuzzy").Valid())
	assert.Equal(t, "fuzzy", SearchMode("fuzzy").Label())
}
