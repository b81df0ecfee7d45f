// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/protein-info/internal/detail"
	"github.com/pdiddy/protein-info/internal/logging"
	"github.com/pdiddy/protein-info/internal/present"
	"github.com/pdiddy/protein-info/pkg/types"
)

type fakeService struct {
	calls []types.SearchMode
	resp  types.SearchResponse
	err   error
}

func (f *fakeService) Search(_ context.Context, _ string, mode types.SearchMode) (types.SearchResponse, error) {
	f.calls = append(f.calls, mode)
	return f.resp, f.err
}

type fakeFetcher struct {
	ids     []string
	details map[string]types.ProteinDetail
}

func (f *fakeFetcher) Protein(_ context.Context, id string) (types.ProteinDetail, error) {
	f.ids = append(f.ids, id)
	d, ok := f.details[id]
	if !ok {
		return types.ProteinDetail{}, errors.New("not found")
	}
	return d, nil
}

func interactions(n int) []types.ProteinInteraction {
	out := make([]types.ProteinInteraction, n)
	for i := range out {
		out[i] = types.ProteinInteraction{Protein: types.Protein{ID: fmt.Sprintf("partner-%02d", i+1)}}
	}
	return out
}

func newTestShell(t *testing.T) (*shell, *fakeService, *fakeFetcher, *bytes.Buffer) {
	t.Helper()
	svc := &fakeService{resp: types.SearchResponse{
		Results: []types.SearchResult{
			{Protein: types.Protein{ID: "n1", Name: "Cellular tumor antigen p53", ExternalID: "P04637"}},
			{Protein: types.Protein{ID: "n2", ExternalID: "Q00987"}},
		},
		Count: 2,
	}}
	f := &fakeFetcher{details: map[string]types.ProteinDetail{
		"n1": {
			Protein:             types.Protein{ID: "n1", Name: "Cellular tumor antigen p53", ExternalID: "P04637"},
			ProteinInteractions: interactions(37),
		},
	}}
	var out bytes.Buffer
	c := types.Config{Display: types.DisplayConfig{PageSize: 10, Format: types.FormatTable}}
	return newShell(svc, detail.NewAggregator(f), c, &out), svc, f, &out
}

func TestShellSearchAndOpenByIndex(t *testing.T) {
	sh, svc, f, out := newTestShell(t)

	err := sh.run(context.Background(), strings.NewReader("mode accession\nsearch P04637\nopen 1\nnext\nnext\nnext\nquit\n"))
	require.NoError(t, err)

	assert.Equal(t, []types.SearchMode{types.ModeAccession}, svc.calls)
	assert.Equal(t, []string{"n1"}, f.ids)
	s := out.String()
	assert.Contains(t, s, "search mode: Protein Accession")
	assert.Contains(t, s, "2 Proteins Found")
	assert.Contains(t, s, "1–10 of 37")
	assert.Contains(t, s, "31–37 of 37")
}

func TestShellReopenDoesNotFetch(t *testing.T) {
	sh, _, f, _ := newTestShell(t)

	require.NoError(t, sh.run(context.Background(), strings.NewReader("open n1\nopen n1\n")))
	assert.Equal(t, []string{"n1"}, f.ids)
}

func TestShellEmptySearchSendsNothing(t *testing.T) {
	sh, svc, _, out := newTestShell(t)

	require.NoError(t, sh.run(context.Background(), strings.NewReader("search   \n")))
	assert.Empty(t, svc.calls)
	assert.Contains(t, out.String(), present.MsgPrompt)
}

func TestShellSearchFailureShowsAlert(t *testing.T) {
	sh, svc, _, out := newTestShell(t)
	svc.err = errors.New("connection refused")

	require.NoError(t, sh.run(context.Background(), strings.NewReader("search P04637\n")))
	assert.Contains(t, out.String(), "error: "+present.MsgSearchFailed)
	assert.NotContains(t, out.String(), "connection refused")
}

func TestShellOpenFailureShowsGenericAlert(t *testing.T) {
	sh, _, _, out := newTestShell(t)

	require.NoError(t, sh.run(context.Background(), strings.NewReader("open missing\n")))
	assert.Contains(t, out.String(), "error: "+present.MsgDetailFailed)
}

func TestShellSizeResetsPage(t *testing.T) {
	sh, _, _, out := newTestShell(t)

	require.NoError(t, sh.run(context.Background(), strings.NewReader("open n1\npage 3\nsize 25\nsize 20\n")))
	s := out.String()
	assert.Contains(t, s, "21–30 of 37")
	assert.Contains(t, s, "1–25 of 37")
	assert.Contains(t, s, `error: invalid page size "20"`)
}

func TestShellBackShowsLastResults(t *testing.T) {
	sh, _, _, out := newTestShell(t)

	require.NoError(t, sh.run(context.Background(), strings.NewReader("search p53\nopen 2\nback\n")))
	assert.Equal(t, 2, strings.Count(out.String(), "2 Proteins Found"))
}

func TestShellRejectsUnknownMode(t *testing.T) {
	sh, _, _, out := newTestShell(t)

	require.NoError(t, sh.run(context.Background(), strings.NewReader("mode fuzzy\nmode\n")))
	assert.Contains(t, out.String(), "error:")
	assert.Contains(t, out.String(), "* all")
}

func TestShellPagingBeforeOpenGivesHint(t *testing.T) {
	sh, _, f, out := newTestShell(t)

	require.NoError(t, sh.run(context.Background(), strings.NewReader("next\nprev\npage 2\nsize 25\nopen n1\n")))
	s := out.String()
	assert.Equal(t, 3, strings.Count(s, present.MsgOpenFirst))
	assert.NotContains(t, s, present.MsgMissingID)
	assert.Contains(t, s, "interactions per page: 25")
	assert.Contains(t, s, "1–25 of 37")
	assert.Equal(t, []string{"n1"}, f.ids)
}

func TestShellPageBeyondLast(t *testing.T) {
	sh, _, _, out := newTestShell(t)

	require.NoError(t, sh.run(context.Background(), strings.NewReader("open n1\npage 9\n")))
	s := out.String()
	assert.Contains(t, s, present.PastLastPage(9, 4, 37))
	assert.NotContains(t, s, "0–0 of 37")
}

func TestShellLogsFailuresWithAttributes(t *testing.T) {
	var logs bytes.Buffer
	require.NoError(t, logging.Configure(&logs, "debug", "json"))
	t.Cleanup(logging.Discard)

	sh, svc, _, _ := newTestShell(t)
	svc.err = errors.New("connection refused")

	require.NoError(t, sh.run(context.Background(), strings.NewReader("search P04637\nopen missing\n")))
	out := logs.String()
	assert.Contains(t, out, `"component":"cli"`)
	assert.Contains(t, out, `"query":"P04637"`)
	assert.Contains(t, out, `"mode":"all"`)
	assert.Contains(t, out, `"id":"missing"`)
}
