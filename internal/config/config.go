// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-sub-merger service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound HTTP client that fetches the
	// template and node documents.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Merge holds settings of the merge engine.
	Merge Merge `envPrefix:"MERGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is the minimum zerolog level that is emitted
	// (trace, debug, info, warn, error, fatal, panic, disabled).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3002").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a whole merge request, both fetches included.
	// Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadHeaderTimeout is the time allowed to read request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout is how long in-flight requests may run after a stop
	// signal before the server is closed.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds settings of the outbound document fetcher.
type Adapter struct {
	// RequestTimeout is the per-fetch client timeout. Zero means the
	// client never times out on its own.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of extra attempts for a failed fetch.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// MaxRedirects caps followed redirects. Zero keeps the client default.
	// Env: ADAPTER_MAX_REDIRECTS
	MaxRedirects int `env:"MAX_REDIRECTS"`

	// MaxBodyBytes caps the size of a fetched document.
	// Env: ADAPTER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// UserAgent is sent with every fetch.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// AllowComments makes the fetcher accept JSON with comments and
	// trailing commas, as found in hand-written sing-box templates.
	// Env: ADAPTER_ALLOW_COMMENTS
	AllowComments bool `env:"ALLOW_COMMENTS"`
}

// Merge holds settings of the merge engine.
type Merge struct {
	// SelectorTags lists the template groups that receive node tags.
	// Env: MERGE_SELECTOR_TAGS (comma separated)
	SelectorTags []string `env:"SELECTOR_TAGS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields are then filled with defaults. Returns a fully populated
// *StructuredConfig or an error if any source fails to load or the final
// config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
