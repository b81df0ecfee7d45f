// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/protein-info/internal/logging"
	"github.com/pdiddy/protein-info/pkg/types"
)

func init() {
	logging.Discard()
}

const sampleSearchJSON = `{
  "results": [
    {
      "protein": {
        "id": "6f1c0f5e-0000-4000-8000-000000000001",
        "name": "P12345_HUMAN",
        "external_id": "P12345",
        "organism_name": "Homo sapiens",
        "dataset": "uniprot",
        "node_type": "Protein"
      },
      "identifiers": [
        {"uuid": "6f1c0f5e-0000-4000-8000-000000000001", "external_id_system": "UniProtKB", "external_id": "P12345",
         "secondary_ids": "Q00001,Q00002", "ambiguous_secondary_ids": ["GENE1"]}
      ]
    },
    {
      "protein": {"id": "6f1c0f5e-0000-4000-8000-000000000002"},
      "identifiers": null
    }
  ],
  "count": 5
}`

const sampleDetailJSON = `{
  "protein": {"id": "abc", "name": "TP53", "external_id": "P04637", "protein_sequence": "MEEPQSDPSV", "node_type": "Protein"},
  "identifiers": [{"uuid": "abc", "external_id_system": "UniProtKB", "external_id": "P04637"}],
  "functional_annotations": [
    {"edge": {"source": "abc", "target": "go1", "relationship": "Protein-GoTerm-FunctionalAnnotation-BiologicalProcess", "ML_prediction_score": 0.42},
     "go_term": {"id": "go1", "name": "apoptotic process", "external_id": "GO:0006915", "node_type": "BiologicalProcess"},
     "score": 0.42, "annotation_type": "BiologicalProcess"}
  ],
  "protein_interactions": [
    {"edge": {"source": "abc", "target": "def", "relationship": "Protein-Protein-ProteinProteinInteraction", "string_combined_score": 0.999, "dataset": ["string", "biogrid"]},
     "protein": {"id": "def", "name": "MDM2"},
     "score": 0.999},
    {"edge": {"source": "ghi", "target": "abc", "relationship": "Protein-Protein-ProteinProteinInteraction"},
     "protein": {"id": "ghi"}}
  ]
}`

func testClient(ts *httptest.Server) *Client {
	c := New(types.APIConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "protein-info/test"},
		BaseURL:    ts.URL + "/api/",
	})
	c.HTTP = ts.Client()
	return c
}

func TestClientSearch(t *testing.T) {
	var got *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleSearchJSON)
	}))
	defer ts.Close()

	resp, err := testClient(ts).Search(context.Background(), "P12345 ", types.ModeAccession)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "/api/search", got.URL.Path)
	assert.Equal(t, "P12345 ", got.URL.Query().Get("query"))
	assert.Equal(t, "accession", got.URL.Query().Get("search_type"))
	assert.Equal(t, "protein-info/test", got.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	_, uuidErr := uuid.Parse(got.Header.Get(RequestIDHeader))
	assert.NoError(t, uuidErr, "request id should be a UUID")

	assert.Equal(t, 5, resp.Count, "count is passed through even when it differs from len(results)")
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "P12345", resp.Results[0].Protein.ExternalID)
	assert.Equal(t, types.NodeProtein, resp.Results[0].Protein.NodeType)
	assert.Equal(t, types.StringList{"Q00001", "Q00002"}, resp.Results[0].Identifiers[0].SecondaryIDs)
	assert.NotNil(t, resp.Results[1].Identifiers)
	assert.Empty(t, resp.Results[1].Identifiers)
}

func TestClientSearchEmptyResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"results": [], "count": 0}`)
	}))
	defer ts.Close()

	resp, err := testClient(ts).Search(context.Background(), "nonexistent", types.ModeAll)
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestClientSearchServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"detail": "boom"}`)
	}))
	defer ts.Close()

	_, err := testClient(ts).Search(context.Background(), "x", types.ModeAll)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestClientSearchMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"results": [`)
	}))
	defer ts.Close()

	_, err := testClient(ts).Search(context.Background(), "x", types.ModeAll)
	assert.ErrorContains(t, err, "parsing protein service response")
}

func TestClientSearchUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	c := testClient(ts)
	ts.Close()

	_, err := c.Search(context.Background(), "x", types.ModeAll)
	assert.ErrorContains(t, err, "protein service request")
}

func TestClientProtein(t *testing.T) {
	var path string
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		path = r.URL.EscapedPath()
		fmt.Fprint(w, sampleDetailJSON)
	}))
	defer ts.Close()

	d, err := testClient(ts).Protein(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "/api/protein/abc", path)

	assert.Equal(t, "TP53", d.Protein.Name)
	require.Len(t, d.FunctionalAnnotations, 1)
	fa := d.FunctionalAnnotations[0]
	assert.Equal(t, "GO:0006915", fa.GoTerm.ExternalID)
	assert.Equal(t, types.NodeBiologicalProcess, fa.AnnotationType)
	require.NotNil(t, fa.Score)
	assert.InDelta(t, 0.42, *fa.Score, 1e-9)

	require.Len(t, d.ProteinInteractions, 2)
	assert.Equal(t, "MDM2", d.ProteinInteractions[0].Protein.Name)
	assert.Equal(t, types.StringList{"string", "biogrid"}, d.ProteinInteractions[0].Edge.Dataset)
	assert.Nil(t, d.ProteinInteractions[1].Score)
	assert.Equal(t, "ghi", d.ProteinInteractions[1].Protein.ID)
}

func TestClientProteinEscapesID(t *testing.T) {
	var path string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		fmt.Fprint(w, `{"protein": {"id": "a/b c"}}`)
	}))
	defer ts.Close()

	d, err := testClient(ts).Protein(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/api/protein/a%2Fb%20c", path)
	assert.NotNil(t, d.Identifiers)
	assert.NotNil(t, d.FunctionalAnnotations)
	assert.NotNil(t, d.ProteinInteractions)
}

func TestClientProteinNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail": "Protein with ID zzz not found"}`)
	}))
	defer ts.Close()

	_, err := testClient(ts).Protein(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewDefaults(t *testing.T) {
	c := New(types.APIConfig{})
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Zero(t, c.MaxRetries)
	require.NotNil(t, c.HTTP)
}
