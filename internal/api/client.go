// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api is the HTTP client for the protein search service. It issues
// exactly one logical request per call and decodes the JSON payloads into
// pkg/types records; it performs no matching, ranking, or cross-checking of
// its own.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/protein-info/internal/httputil"
	"github.com/pdiddy/protein-info/internal/logging"
	"github.com/pdiddy/protein-info/pkg/types"
)

var logger = logging.Logger("api")

// DefaultBaseURL is the API root of a locally running protein service.
const DefaultBaseURL = "http://localhost:8000/api"

// RequestIDHeader carries a per-request UUID for correlating client and
// server logs.
const RequestIDHeader = "X-Request-ID"

// ErrNotFound matches a StatusError for HTTP 404.
var ErrNotFound = errors.New("not found")

// StatusError reports a non-200 response. The body is not parsed.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.URL, e.Code)
}

// Is lets errors.Is(err, ErrNotFound) match a 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Client queries the protein service.
type Client struct {
	HTTP       *http.Client
	BaseURL    string
	UserAgent  string
	MaxRetries int
}

// New returns a client for cfg. A zero timeout leaves the http.Client without
// a deadline; an empty base URL falls back to DefaultBaseURL.
func New(cfg types.APIConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		BaseURL:    strings.TrimRight(base, "/"),
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}
}

// Search issues GET /search?query=...&search_type=... and returns the decoded
// response. Results keep the server's order.
func (c *Client) Search(ctx context.Context, query string, mode types.SearchMode) (types.SearchResponse, error) {
	params := url.Values{
		"query":       {query},
		"search_type": {string(mode)},
	}
	reqURL := c.BaseURL + "/search?" + params.Encode()

	var out types.SearchResponse
	if err := c.getJSON(ctx, reqURL, &out); err != nil {
		return types.SearchResponse{}, err
	}
	if out.Results == nil {
		out.Results = []types.SearchResult{}
	}
	for i := range out.Results {
		normalizeIdentifiers(&out.Results[i].Identifiers)
	}
	return out, nil
}

// Protein issues GET /protein/{id}. The id is path-escaped.
func (c *Client) Protein(ctx context.Context, id string) (types.ProteinDetail, error) {
	reqURL := c.BaseURL + "/protein/" + url.PathEscape(id)

	var out types.ProteinDetail
	if err := c.getJSON(ctx, reqURL, &out); err != nil {
		return types.ProteinDetail{}, err
	}
	normalizeIdentifiers(&out.Identifiers)
	if out.FunctionalAnnotations == nil {
		out.FunctionalAnnotations = []types.FunctionalAnnotation{}
	}
	if out.ProteinInteractions == nil {
		out.ProteinInteractions = []types.ProteinInteraction{}
	}
	if s := out.Protein.Sequence; s != "" && !types.IsProteinSequence(s) {
		logger.Warn("protein sequence contains non-residue characters",
			slog.String("protein_id", out.Protein.ID))
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	log := logger.With(slog.String("request_id", requestID), slog.String("url", req.URL.Redacted()))
	start := time.Now()

	resp, err := httputil.DoWithRetry(ctx, c.httpClient(), req, c.MaxRetries)
	if err != nil {
		log.Warn("request failed", slog.Any("error", err))
		return fmt.Errorf("protein service request: %w", err)
	}
	defer resp.Body.Close()

	log.Debug("response received",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, URL: req.URL.Redacted()}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("parsing protein service response: %w", err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func normalizeIdentifiers(ids *[]types.IdentifierRecord) {
	if *ids == nil {
		*ids = []types.IdentifierRecord{}
	}
}
