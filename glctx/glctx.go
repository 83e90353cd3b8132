// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glctx defines the collaborator interfaces through which clgl
// observes the host application's OpenGL context and windowing system.
//
// clgl RECEIVES the graphics context from the host, it does NOT create
// one. The host windowing layer (GLFW, SDL, a custom EGL setup, ...)
// implements [Provider] and, where native handles are reachable,
// [NativeHandler], and hands them to clgl. glctx/glfwctx provides a
// ready-made implementation for GLFW windows.
package glctx

import "os"

// Handle is an opaque reference to the host's OpenGL context object.
// The zero value means "no context is current".
type Handle uintptr

// BackendKind classifies the OpenGL backend driving the current context.
type BackendKind int

const (
	// BackendNative is a desktop OpenGL context backed by the vendor
	// driver. Interop property negotiation is supported.
	BackendNative BackendKind = iota

	// BackendEmulated is a GLES-on-something translation layer (for
	// example ANGLE on Windows). Such backends cannot share resources
	// with OpenCL through the native interop path.
	BackendEmulated
)

// String returns the backend kind name.
func (k BackendKind) String() string {
	switch k {
	case BackendNative:
		return "native"
	case BackendEmulated:
		return "emulated"
	default:
		return "unknown"
	}
}

// ResourceKind names a native windowing resource that an interop property
// list may need to embed.
type ResourceKind int

const (
	// IntegrationEGLDisplay is the windowing integration's EGLDisplay,
	// independent of any particular context.
	IntegrationEGLDisplay ResourceKind = iota

	// IntegrationX11Display is the integration's X11 Display pointer.
	IntegrationX11Display

	// ContextEGL is the EGLContext underlying the current GL context.
	ContextEGL

	// ContextGLX is the GLXContext underlying the current GL context.
	ContextGLX

	// ContextWGL is the HGLRC underlying the current GL context.
	ContextWGL

	// ContextHDC is the device context (HDC) of the current GL surface.
	ContextHDC

	// ContextCGLShareGroup is the CGLShareGroupObj of the current GL
	// context on Apple platforms.
	ContextCGLShareGroup
)

// String returns the resource kind name.
func (k ResourceKind) String() string {
	switch k {
	case IntegrationEGLDisplay:
		return "egldisplay"
	case IntegrationX11Display:
		return "display"
	case ContextEGL:
		return "eglcontext"
	case ContextGLX:
		return "glxcontext"
	case ContextWGL:
		return "wglcontext"
	case ContextHDC:
		return "hdc"
	case ContextCGLShareGroup:
		return "cglsharegroup"
	default:
		return "unknown"
	}
}

// Provider supplies the state of the host's OpenGL context. All methods
// must be called from the thread on which the GL context is current.
type Provider interface {
	// Current returns a handle to the thread-current GL context, or
	// zero when none is current.
	Current() Handle

	// VendorString returns the GL_VENDOR string of the current context,
	// or the empty string when it cannot be queried.
	VendorString() string

	// Backend classifies the backend driving the current context.
	Backend() BackendKind
}

// NativeHandler exposes native windowing resources for interop property
// assembly. Returning zero for a kind means the resource is not
// available; callers treat that as a recoverable condition.
type NativeHandler interface {
	NativeHandle(kind ResourceKind) uintptr
}

// FileProvider loads kernel source files for the program builder.
type FileProvider interface {
	// ReadFile returns the full contents of the named file.
	ReadFile(name string) ([]byte, error)
}

// OSFiles is the default FileProvider, reading from the host filesystem.
type OSFiles struct{}

// ReadFile implements FileProvider using os.ReadFile.
func (OSFiles) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
