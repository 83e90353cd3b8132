// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interop

import "errors"

// Package errors for interop recipes.
var (
	// ErrEmulatedBackend is returned when the GL context is driven by a
	// translation layer that cannot share resources through the native
	// interop path.
	ErrEmulatedBackend = errors.New("interop: emulated GL backend does not support CL-GL sharing")
)
