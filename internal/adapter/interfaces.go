// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the upstream documents
// a merge is built from.
//
// The primary abstraction is [SourceAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPSourceAdapter]) built on resty.
//
// Error values defined in errors.go classify every failure (bad URL,
// transport, non-2xx status, oversized body, undecodable body) so that
// callers can use [errors.Is] to tell them apart.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/source_adapter_mock.go -package=mock

// SourceAdapter fetches a remote JSON document.
type SourceAdapter interface {
	// FetchJSON retrieves rawURL and decodes the body into the generic
	// encoding/json value space (map[string]any, []any, string,
	// json.Number, bool, nil). Cancelling ctx aborts the request.
	FetchJSON(ctx context.Context, rawURL string) (any, error)
}
