// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-sub-merger/models"
)

// Field names accepted by [MergeRequestValidator]. They match the query
// parameter names of the merge endpoint.
const (
	// FieldTemplateURL targets the URL of the sing-box template document.
	FieldTemplateURL = "template"

	// FieldNodesURL targets the URL of the node list document.
	FieldNodesURL = "nodes"
)

// MergeRequestValidator checks that both source URLs of a
// [models.MergeRequest] are present, absolute and use http or https.
type MergeRequestValidator struct {
}

func NewMergeRequestValidator() Validator {
	return &MergeRequestValidator{}
}

func (v *MergeRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MergeRequest:
		return v.validateMergeRequest(ctx, value, fields...)
	case *models.MergeRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateMergeRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *MergeRequestValidator) validateMergeRequest(_ context.Context, request models.MergeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTemplateURL, FieldNodesURL}
	}

	for _, f := range fields {
		switch f {
		case FieldTemplateURL:
			if err := validateSourceURL(request.TemplateURL, ErrMissingTemplateURL, ErrInvalidTemplateURL); err != nil {
				return err
			}
		case FieldNodesURL:
			if err := validateSourceURL(request.NodesURL, ErrMissingNodesURL, ErrInvalidNodesURL); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateSourceURL(raw string, errMissing, errInvalid error) error {
	if raw == "" {
		return errMissing
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalid, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", errInvalid)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", errInvalid)
	}

	return nil
}
