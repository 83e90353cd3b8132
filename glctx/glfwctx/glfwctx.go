// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glfwctx adapts a GLFW window to the glctx collaborator
// interfaces.
//
// The provider answers context queries through GLFW and the GL bindings,
// so its methods must run on the thread where the window's context is
// current. The Go GLFW binding does not surface native windowing handles
// (EGLContext, HGLRC, ...); hosts that can reach them install a lookup
// with WithNativeHandles, otherwise property assembly proceeds with the
// handles it has.
package glfwctx

import (
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/clgl/glctx"
)

// HandleFunc resolves a native windowing resource for the window.
// Returning zero means the resource is unavailable.
type HandleFunc func(kind glctx.ResourceKind) uintptr

// Provider implements glctx.Provider and glctx.NativeHandler for a GLFW
// window.
type Provider struct {
	win     *glfw.Window
	handles HandleFunc

	initGL sync.Once
	glErr  error
}

// Option configures a Provider.
type Option func(*Provider)

// WithNativeHandles installs a native resource lookup, typically backed
// by platform calls the host links in itself.
func WithNativeHandles(fn HandleFunc) Option {
	return func(p *Provider) { p.handles = fn }
}

// New wraps a GLFW window. The window's context does not need to be
// current yet; it must be current whenever the provider is queried.
func New(win *glfw.Window, opts ...Option) *Provider {
	p := &Provider{win: win}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Current implements glctx.Provider. It reports the wrapped window's
// context when that context is current on this thread, and zero
// otherwise, including when some other window's context is current.
func (p *Provider) Current() glctx.Handle {
	cur := glfw.GetCurrentContext()
	if cur == nil || cur != p.win {
		return 0
	}
	return glctx.Handle(uintptr(unsafe.Pointer(cur)))
}

// VendorString implements glctx.Provider. The empty string is returned
// when no context is current or the GL bindings cannot be initialized.
func (p *Provider) VendorString() string {
	if glfw.GetCurrentContext() == nil {
		return ""
	}
	p.initGL.Do(func() { p.glErr = gl.Init() })
	if p.glErr != nil {
		return ""
	}
	ptr := gl.GetString(gl.VENDOR)
	if ptr == nil {
		return ""
	}
	return gl.GoStr(ptr)
}

// Backend implements glctx.Provider. GLFW windows created with the
// OpenGL ES client API run on translation layers like ANGLE on desktop
// systems, which the interop path has to treat as emulated.
func (p *Provider) Backend() glctx.BackendKind {
	if p.win != nil && p.win.GetAttrib(glfw.ClientAPI) == int(glfw.OpenGLESAPI) {
		return glctx.BackendEmulated
	}
	return glctx.BackendNative
}

// NativeHandle implements glctx.NativeHandler through the installed
// lookup. Without one every resource reports unavailable.
func (p *Provider) NativeHandle(kind glctx.ResourceKind) uintptr {
	if p.handles == nil {
		return 0
	}
	return p.handles(kind)
}

var (
	_ glctx.Provider      = (*Provider)(nil)
	_ glctx.NativeHandler = (*Provider)(nil)
)
