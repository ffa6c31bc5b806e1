package service

import (
	"context"

	"github.com/MKhiriev/go-sub-merger/models"
)

// MergeService produces a merged sing-box configuration from the two
// documents referenced by a [models.MergeRequest].
type MergeService interface {
	Merge(ctx context.Context, request models.MergeRequest) (models.Document, error)
}

// MergeServiceWrapper defines middleware composition for MergeService.
// Implementations wrap an existing MergeService to add behavior such as
// logging or validating.
type MergeServiceWrapper interface {
	Wrap(MergeService) MergeService // returns a decorated MergeService applying additional behavior
}
