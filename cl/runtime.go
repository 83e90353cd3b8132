// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cl defines the OpenCL runtime surface used by clgl.
//
// The package contains opaque handle types, the constants of the GL
// sharing extensions, runtime status codes, and the Runtime interface
// through which all OpenCL calls are made. The production implementation
// in cl/dyncl binds to the installed OpenCL library; tests substitute a
// fake.
package cl

// Runtime is the OpenCL call surface required for interop context
// negotiation and program building. Implementations must be usable from
// the thread that holds the current OpenGL context; no call suspends or
// reschedules.
//
// All methods that can fail return an error wrapping the runtime's
// numeric status code as an [Error], retrievable with [Code].
type Runtime interface {
	// GetPlatformIDs enumerates the available platforms.
	// An empty result is returned as-is; classifying it is the caller's
	// concern.
	GetPlatformIDs() ([]PlatformID, error)

	// GetPlatformInfo queries a string property of a platform.
	GetPlatformInfo(p PlatformID, info PlatformInfo) (string, error)

	// GetDeviceIDs enumerates the devices of a platform matching the
	// given device type.
	GetDeviceIDs(p PlatformID, dt DeviceType) ([]DeviceID, error)

	// GetDeviceInfo queries a string property of a device.
	GetDeviceInfo(d DeviceID, info DeviceInfo) (string, error)

	// CreateContextFromType creates a context for all devices of the
	// given type that are compatible with the property list. The
	// property list may embed native GL handles; it is only valid for
	// this one call.
	CreateContextFromType(props []ContextProperty, dt DeviceType) (Context, error)

	// ReleaseContext decrements the context's reference count.
	ReleaseContext(c Context) error

	// GetGLContextDevice asks which device currently backs the live GL
	// context described by the property list, through the
	// clGetGLContextInfoKHR extension (or its Apple equivalent).
	// Returns an error wrapping [ErrExtensionUnavailable] when the
	// extension cannot be located.
	GetGLContextDevice(props []ContextProperty) (DeviceID, error)

	// CreateProgramWithSource creates a program object from OpenCL C
	// source text.
	CreateProgramWithSource(c Context, src string) (Program, error)

	// BuildProgram compiles and links the program for exactly one
	// device with the given build options.
	BuildProgram(prog Program, d DeviceID, options string) error

	// GetProgramBuildLog retrieves the compiler diagnostics recorded
	// for the device in the last BuildProgram call.
	GetProgramBuildLog(prog Program, d DeviceID) (string, error)

	// ReleaseProgram decrements the program's reference count.
	ReleaseProgram(prog Program) error
}
