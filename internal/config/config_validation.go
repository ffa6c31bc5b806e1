// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-sub-merger/internal/merger"
)

const (
	defaultHTTPAddress       = "0.0.0.0:3002"
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultMaxBodyBytes      = 10 << 20
	defaultUserAgent         = "go-sub-merger"
	defaultLogLevel          = "debug"
)

// applyDefaults fills every field left unset by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = defaultReadHeaderTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Adapter.MaxBodyBytes == 0 {
		cfg.Adapter.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Adapter.UserAgent == "" {
		cfg.Adapter.UserAgent = defaultUserAgent
	}

	if len(cfg.Merge.SelectorTags) == 0 {
		cfg.Merge.SelectorTags = append([]string(nil), merger.DefaultSelectorTags...)
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// errors wrapped with the offending field otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ReadHeaderTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RetryCount < 0 || cfg.Adapter.MaxRedirects < 0 {
		return fmt.Errorf("%w: negative retry or redirect count", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: body limit must be positive", ErrInvalidAdapterConfigs)
	}

	for _, tag := range cfg.Merge.SelectorTags {
		if tag == "" {
			return fmt.Errorf("%w: empty selector tag", ErrInvalidMergeConfigs)
		}
	}

	return nil
}
