package clgl

import "errors"

// Package errors for context negotiation and program building.
// Create stores the failure cause on the context (see [ComputeContext.Err]);
// these sentinels classify it.
var (
	// ErrNoPlatform is returned when zero OpenCL platforms are
	// enumerated, or enumeration itself fails.
	ErrNoPlatform = errors.New("clgl: no OpenCL platform available")

	// ErrNoGLContext is returned when interop is attempted without a
	// current OpenGL context on the calling thread.
	ErrNoGLContext = errors.New("clgl: no current OpenGL context")

	// ErrUnsupportedBackend is returned when the GL backend is an
	// emulation layer that cannot interop with OpenCL natively.
	ErrUnsupportedBackend = errors.New("clgl: GL backend does not support CL-GL interop")

	// ErrContextCreation is returned when the runtime rejects the
	// assembled interop property list.
	ErrContextCreation = errors.New("clgl: OpenCL context creation failed")

	// ErrDeviceResolution is returned when no device backing the GL
	// context could be resolved after context creation.
	ErrDeviceResolution = errors.New("clgl: could not resolve OpenCL device for GL context")

	// ErrProgramCreate is returned when a program object cannot be
	// created from source.
	ErrProgramCreate = errors.New("clgl: program creation failed")

	// ErrProgramBuild is returned when program compilation fails.
	ErrProgramBuild = errors.New("clgl: program build failed")

	// ErrFileOpen is returned when a kernel source file cannot be read.
	ErrFileOpen = errors.New("clgl: cannot open program source file")
)
