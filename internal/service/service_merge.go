// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-sub-merger/internal/adapter"
	"github.com/MKhiriev/go-sub-merger/internal/logger"
	"github.com/MKhiriev/go-sub-merger/internal/merger"
	"github.com/MKhiriev/go-sub-merger/models"
)

type mergeService struct {
	sourceAdapter adapter.SourceAdapter
	merger        *merger.Merger

	logger *logger.Logger
}

func NewMergeService(sourceAdapter adapter.SourceAdapter, m *merger.Merger, logger *logger.Logger) (MergeService, error) {
	if sourceAdapter == nil {
		return nil, ErrNilAdapter
	}
	if m == nil {
		m = merger.NewMerger()
	}

	return &mergeService{
		sourceAdapter: sourceAdapter,
		merger:        m,
		logger:        logger,
	}, nil
}

// Merge fetches the template and the node list concurrently and merges them
// once both are available. The first failed fetch cancels the other one and
// no merge is attempted.
func (s *mergeService) Merge(ctx context.Context, request models.MergeRequest) (models.Document, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	var template, nodes any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := s.fetch(gctx, request, models.SourceTemplate)
		template = doc
		return err
	})
	g.Go(func() error {
		doc, err := s.fetch(gctx, request, models.SourceNodes)
		nodes = doc
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Document{}, err
	}

	merged, err := s.merger.Merge(template, nodes)
	if err != nil {
		return models.Document{}, fmt.Errorf("merge documents: %w", err)
	}

	log.Debug().Dur("duration", time.Since(start)).Msg("documents merged")

	return models.Document{Root: merged}, nil
}

func (s *mergeService) fetch(ctx context.Context, request models.MergeRequest, source models.Source) (any, error) {
	doc, err := s.sourceAdapter.FetchJSON(ctx, request.URL(source))
	if err != nil {
		return nil, fmt.Errorf("fetch %s document: %w", source, err)
	}
	return doc, nil
}
