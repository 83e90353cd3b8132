// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cl

import (
	"errors"
	"fmt"
)

// Package errors for the cl runtime surface.
var (
	// ErrUnavailable is returned when no OpenCL implementation can be
	// loaded on this system.
	ErrUnavailable = errors.New("cl: OpenCL implementation not available")

	// ErrExtensionUnavailable is returned when a required extension
	// function cannot be located in the loaded implementation.
	ErrExtensionUnavailable = errors.New("cl: extension function not available")
)

// Error is an OpenCL runtime status code. The zero value is Success;
// failures are negative, matching the cl_int error codes.
type Error int32

// Runtime status codes used by this module.
const (
	Success              Error = 0
	DeviceNotFound       Error = -1
	DeviceNotAvailable   Error = -2
	CompilerNotAvailable Error = -3
	OutOfResources       Error = -5
	OutOfHostMemory      Error = -6
	BuildProgramFailure  Error = -11
	InvalidValue         Error = -30
	InvalidDeviceType    Error = -31
	InvalidPlatform      Error = -32
	InvalidDevice        Error = -33
	InvalidContext       Error = -34
	InvalidBinary        Error = -42
	InvalidBuildOptions  Error = -43
	InvalidProgram       Error = -44
	InvalidOperation     Error = -59
	InvalidProperty      Error = -64

	// InvalidGLShareGroupKHR signals a rejected GL sharing property list.
	InvalidGLShareGroupKHR Error = -1000

	// PlatformNotFoundKHR signals that the ICD loader found no
	// implementations at all.
	PlatformNotFoundKHR Error = -1001
)

var errorNames = map[Error]string{
	Success:                "CL_SUCCESS",
	DeviceNotFound:         "CL_DEVICE_NOT_FOUND",
	DeviceNotAvailable:     "CL_DEVICE_NOT_AVAILABLE",
	CompilerNotAvailable:   "CL_COMPILER_NOT_AVAILABLE",
	OutOfResources:         "CL_OUT_OF_RESOURCES",
	OutOfHostMemory:        "CL_OUT_OF_HOST_MEMORY",
	BuildProgramFailure:    "CL_BUILD_PROGRAM_FAILURE",
	InvalidValue:           "CL_INVALID_VALUE",
	InvalidDeviceType:      "CL_INVALID_DEVICE_TYPE",
	InvalidPlatform:        "CL_INVALID_PLATFORM",
	InvalidDevice:          "CL_INVALID_DEVICE",
	InvalidContext:         "CL_INVALID_CONTEXT",
	InvalidBinary:          "CL_INVALID_BINARY",
	InvalidBuildOptions:    "CL_INVALID_BUILD_OPTIONS",
	InvalidProgram:         "CL_INVALID_PROGRAM",
	InvalidOperation:       "CL_INVALID_OPERATION",
	InvalidProperty:        "CL_INVALID_PROPERTY",
	InvalidGLShareGroupKHR: "CL_INVALID_GL_SHAREGROUP_REFERENCE_KHR",
	PlatformNotFoundKHR:    "CL_PLATFORM_NOT_FOUND_KHR",
}

// Error returns the Khronos name of the code when known, or a numeric
// rendering otherwise.
func (e Error) Error() string {
	if name, ok := errorNames[e]; ok {
		return fmt.Sprintf("%s (%d)", name, int32(e))
	}
	return fmt.Sprintf("cl error %d", int32(e))
}

// Code extracts the runtime status code from an error chain.
// It returns Success and false when no Error is present.
func Code(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return Success, false
}
