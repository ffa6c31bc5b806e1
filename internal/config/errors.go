package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid fetcher settings
	// (for example, a negative retry count or a non-positive body limit).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidMergeConfigs indicates invalid merge settings
	// (for example, an empty selector tag).
	ErrInvalidMergeConfigs = errors.New("invalid merge configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
