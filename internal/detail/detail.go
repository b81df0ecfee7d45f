// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detail loads one protein with its identifiers, functional
// annotations, and interactions, and renders it for display.
//
// The service resolves every annotation's GO term and every interaction's
// partner protein before responding. This package takes those pairings as
// given and does not check edge endpoints against any registry.
package detail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pdiddy/protein-info/internal/logging"
	"github.com/pdiddy/protein-info/pkg/types"
)

var logger = logging.Logger("detail")

var (
	// ErrMissingID is returned for an empty protein id. No request is sent.
	ErrMissingID = errors.New("missing protein identifier")

	// ErrLoadFailed wraps every fetch failure, including a backend 404.
	ErrLoadFailed = errors.New("failed to load protein detail")
)

// Fetcher retrieves the detail payload for one protein. *api.Client
// implements it.
type Fetcher interface {
	Protein(ctx context.Context, id string) (types.ProteinDetail, error)
}

// Aggregator assembles a ProteinDetail from a Fetcher.
type Aggregator struct {
	fetcher Fetcher
}

// NewAggregator returns an aggregator backed by f.
func NewAggregator(f Fetcher) *Aggregator {
	return &Aggregator{fetcher: f}
}

// Get fetches the detail for id with exactly one request. Lists missing from
// the payload come back empty, never nil.
func (a *Aggregator) Get(ctx context.Context, id string) (types.ProteinDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return types.ProteinDetail{}, ErrMissingID
	}

	d, err := a.fetcher.Protein(ctx, id)
	if err != nil {
		logger.Warn("detail fetch failed", slog.String("protein_id", id), slog.Any("error", err))
		return types.ProteinDetail{}, fmt.Errorf("%w: %s: %w", ErrLoadFailed, id, err)
	}

	if d.Identifiers == nil {
		d.Identifiers = []types.IdentifierRecord{}
	}
	if d.FunctionalAnnotations == nil {
		d.FunctionalAnnotations = []types.FunctionalAnnotation{}
	}
	if d.ProteinInteractions == nil {
		d.ProteinInteractions = []types.ProteinInteraction{}
	}

	logger.Info("detail loaded",
		slog.String("protein_id", id),
		slog.Int("identifiers", len(d.Identifiers)),
		slog.Int("annotations", len(d.FunctionalAnnotations)),
		slog.Int("interactions", len(d.ProteinInteractions)))
	return d, nil
}
