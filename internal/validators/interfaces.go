// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// sanitising of user supplied text.
//
// Core concepts:
//   - Validator: generic interface to validate request structures.
//     Supports optional field-level scoping for targeted validation.
//   - Sanitizer: strips markup from free text before it is stored or shown.
//
// This package decouples validation logic from transport layers and storage,
// so the same rules apply to REST and gRPC requests.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Sanitizer cleans untrusted text.
type Sanitizer interface {
	// Text returns s with every HTML element removed and surrounding
	// whitespace trimmed.
	Text(s string) string
}
