package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sub-merger/internal/validators"
	"github.com/MKhiriev/go-sub-merger/models"
)

type MergeValidationService struct {
	inner     MergeService
	validator validators.Validator
}

func NewMergeValidationService() MergeServiceWrapper {
	return &MergeValidationService{
		validator: validators.NewMergeRequestValidator(),
	}
}

func (v *MergeValidationService) Merge(ctx context.Context, request models.MergeRequest) (models.Document, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Document{}, fmt.Errorf("merge request validation: %w", err)
	}

	return v.inner.Merge(ctx, request)
}

func (v *MergeValidationService) Wrap(wrapped MergeService) MergeService {
	v.inner = wrapped
	return v
}
