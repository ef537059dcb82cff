// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the anime-saver
// user-service.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, response compression and bearer authentication of the
// admin routes are handled in this package before requests are delegated to
// the service layer.
package http
