// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package interop assembles the platform-specific property lists that
// bind an OpenCL context to a live OpenGL context.
//
// Each windowing flavor is one Recipe: CGL share groups on macOS, WGL
// handles on Windows, and the EGL/GLX pair on X11-like systems. Recipes
// are registered by name and the per-OS default is selected at build
// time; tests exercise every recipe on any host since the recipes are
// pure property-list builders.
package interop

import (
	"sync"

	"github.com/gogpu/clgl/cl"
	"github.com/gogpu/clgl/glctx"
)

// Source supplies the graphics-side inputs a recipe needs: the backend
// classification and native windowing handles. It is satisfied by the
// negotiating context in clgl.
type Source interface {
	// Backend classifies the backend driving the current GL context.
	Backend() glctx.BackendKind

	// NativeHandle returns the named native resource, or zero when it
	// is unavailable.
	NativeHandle(kind glctx.ResourceKind) uintptr
}

// Recipe assembles an interop property list from a chosen platform and
// the current GL context. The list embeds native handles that are only
// valid while that context is current, so a fresh list is built for
// every context-creation attempt and never retained.
type Recipe interface {
	// Name returns the recipe identifier (e.g. "cgl", "wgl", "eglglx").
	Name() string

	// Properties returns the property list for one creation attempt.
	// A zero native handle inside the returned list is allowed; the
	// runtime's create call is the arbiter. A non-nil error means the
	// attempt must not proceed at all.
	Properties(platform cl.PlatformID, src Source) ([]cl.ContextProperty, error)
}

// registry holds registered recipes.
var (
	registryMu sync.RWMutex
	recipes    = make(map[string]Recipe)
)

func init() {
	Register(CGL())
	Register(WGL())
	Register(EGLGLX())
}

// Register registers a recipe under its name. A recipe with the same
// name is replaced; this is useful for tests.
func Register(r Recipe) {
	registryMu.Lock()
	defer registryMu.Unlock()
	recipes[r.Name()] = r
}

// Get returns a recipe by name, or nil if none is registered.
func Get(name string) Recipe {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return recipes[name]
}

// Available returns the registered recipe names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	return names
}

// Default returns the recipe for the build target.
func Default() Recipe {
	return Get(defaultRecipeName)
}
