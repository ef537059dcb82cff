// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors reported by the auth middleware while reading the bearer token.
// They are logged only; the client always receives the generic
// "Token is expired or invalid" message.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("`Authorization` header is not in `Bearer <token>` form")
	ErrEmptyToken                 = errors.New("empty bearer token")
)
