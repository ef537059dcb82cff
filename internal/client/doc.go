// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It checks the stored session once at start-up, picks the first screen
// accordingly and hands control to the terminal UI.
package client
