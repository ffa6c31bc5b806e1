// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import "errors"

var (
	// ErrNoNodeList is returned when the nodes document is neither an object
	// with an "outbounds" array nor an array itself.
	ErrNoNodeList = errors.New("no node list found")

	// ErrTemplateNotObject is returned when the template root is a scalar or
	// an array, so no "outbounds" field can be attached to it.
	ErrTemplateNotObject = errors.New("template document is not a JSON object")
)
