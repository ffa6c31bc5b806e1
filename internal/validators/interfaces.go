// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound requests before they reach the merge
// pipeline.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - MergeRequestValidator: checks the template and nodes URLs of a
//     merge request.
//
// Validators are injected into service decorators (see
// service.MergeValidationService), which keeps validation out of the
// transport layer. Every error returned here is matched by
// [IsValidationError] and reported to the caller as a bad request.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
