package service

import (
	"fmt"

	"github.com/MKhiriev/go-sub-merger/internal/adapter"
	"github.com/MKhiriev/go-sub-merger/internal/config"
	"github.com/MKhiriev/go-sub-merger/internal/logger"
	"github.com/MKhiriev/go-sub-merger/internal/merger"
)

type Services struct {
	MergeService MergeService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	sourceAdapter := adapter.NewHTTPSourceAdapter(cfg.Adapter, logger)

	mergeService, err := NewMergeService(sourceAdapter, merger.NewMerger(cfg.Merge.SelectorTags...), logger)
	if err != nil {
		return nil, fmt.Errorf("create merge service: %w", err)
	}

	return &Services{
		MergeService: NewMergeValidationService().Wrap(mergeService),
	}, nil
}
