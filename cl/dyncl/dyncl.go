// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dyncl implements cl.Runtime on top of the OpenCL library
// installed on the host.
//
// The library is loaded dynamically (no cgo): purego on Unix-like
// systems, the system loader on Windows. If no OpenCL implementation is
// present, New returns an error wrapping cl.ErrUnavailable and the rest
// of the process is unaffected.
package dyncl

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/clgl/cl"
)

// Bounded sizes for string info queries. Platform names are short;
// extension lists and build logs can be large but are capped rather
// than queried twice.
const (
	platformInfoSize = 1024
	deviceInfoSize   = 8192
	buildLogSize     = 8192
)

// Runtime is the production cl.Runtime bound to the installed OpenCL
// implementation.
type Runtime struct {
	lib uintptr

	clGetPlatformIDs              func(uint32, *uintptr, *uint32) int32
	clGetPlatformInfo             func(uintptr, uint32, uintptr, unsafe.Pointer, *uintptr) int32
	clGetDeviceIDs                func(uintptr, uint64, uint32, *uintptr, *uint32) int32
	clGetDeviceInfo               func(uintptr, uint32, uintptr, unsafe.Pointer, *uintptr) int32
	clCreateContextFromType       func(*uintptr, uint64, uintptr, uintptr, *int32) uintptr
	clReleaseContext              func(uintptr) int32
	clCreateProgramWithSource     func(uintptr, uint32, **byte, *uintptr, *int32) uintptr
	clBuildProgram                func(uintptr, uint32, *uintptr, *byte, uintptr, uintptr) int32
	clGetProgramBuildInfo         func(uintptr, uintptr, uint32, uintptr, unsafe.Pointer, *uintptr) int32
	clReleaseProgram              func(uintptr) int32
	clGetExtensionFunctionAddress func(*byte) uintptr

	glInfoOnce sync.Once
	glInfoAddr uintptr
}

// New loads the system OpenCL library and binds the call surface.
// It returns an error wrapping [cl.ErrUnavailable] when no
// implementation can be loaded.
func New() (*Runtime, error) {
	lib, err := openLibrary()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cl.ErrUnavailable, err)
	}
	rt := &Runtime{lib: lib}
	rt.register()
	return rt, nil
}

func (rt *Runtime) register() {
	purego.RegisterLibFunc(&rt.clGetPlatformIDs, rt.lib, "clGetPlatformIDs")
	purego.RegisterLibFunc(&rt.clGetPlatformInfo, rt.lib, "clGetPlatformInfo")
	purego.RegisterLibFunc(&rt.clGetDeviceIDs, rt.lib, "clGetDeviceIDs")
	purego.RegisterLibFunc(&rt.clGetDeviceInfo, rt.lib, "clGetDeviceInfo")
	purego.RegisterLibFunc(&rt.clCreateContextFromType, rt.lib, "clCreateContextFromType")
	purego.RegisterLibFunc(&rt.clReleaseContext, rt.lib, "clReleaseContext")
	purego.RegisterLibFunc(&rt.clCreateProgramWithSource, rt.lib, "clCreateProgramWithSource")
	purego.RegisterLibFunc(&rt.clBuildProgram, rt.lib, "clBuildProgram")
	purego.RegisterLibFunc(&rt.clGetProgramBuildInfo, rt.lib, "clGetProgramBuildInfo")
	purego.RegisterLibFunc(&rt.clReleaseProgram, rt.lib, "clReleaseProgram")
	purego.RegisterLibFunc(&rt.clGetExtensionFunctionAddress, rt.lib, "clGetExtensionFunctionAddress")
}

// GetPlatformIDs implements cl.Runtime.
func (rt *Runtime) GetPlatformIDs() ([]cl.PlatformID, error) {
	var n uint32
	if code := rt.clGetPlatformIDs(0, nil, &n); code != 0 {
		return nil, fmt.Errorf("clGetPlatformIDs: %w", cl.Error(code))
	}
	if n == 0 {
		return nil, nil
	}
	ids := make([]uintptr, n)
	if code := rt.clGetPlatformIDs(n, &ids[0], nil); code != 0 {
		return nil, fmt.Errorf("clGetPlatformIDs: %w", cl.Error(code))
	}
	out := make([]cl.PlatformID, n)
	for i, id := range ids {
		out[i] = cl.PlatformID(id)
	}
	return out, nil
}

// GetPlatformInfo implements cl.Runtime.
func (rt *Runtime) GetPlatformInfo(p cl.PlatformID, info cl.PlatformInfo) (string, error) {
	buf := make([]byte, platformInfoSize)
	var size uintptr
	code := rt.clGetPlatformInfo(uintptr(p), uint32(info), uintptr(len(buf)), unsafe.Pointer(&buf[0]), &size)
	if code != 0 {
		return "", fmt.Errorf("clGetPlatformInfo: %w", cl.Error(code))
	}
	return cstring(buf), nil
}

// GetDeviceIDs implements cl.Runtime.
func (rt *Runtime) GetDeviceIDs(p cl.PlatformID, dt cl.DeviceType) ([]cl.DeviceID, error) {
	var n uint32
	if code := rt.clGetDeviceIDs(uintptr(p), uint64(dt), 0, nil, &n); code != 0 {
		return nil, fmt.Errorf("clGetDeviceIDs: %w", cl.Error(code))
	}
	if n == 0 {
		return nil, nil
	}
	ids := make([]uintptr, n)
	if code := rt.clGetDeviceIDs(uintptr(p), uint64(dt), n, &ids[0], nil); code != 0 {
		return nil, fmt.Errorf("clGetDeviceIDs: %w", cl.Error(code))
	}
	out := make([]cl.DeviceID, n)
	for i, id := range ids {
		out[i] = cl.DeviceID(id)
	}
	return out, nil
}

// GetDeviceInfo implements cl.Runtime.
func (rt *Runtime) GetDeviceInfo(d cl.DeviceID, info cl.DeviceInfo) (string, error) {
	buf := make([]byte, deviceInfoSize)
	var size uintptr
	code := rt.clGetDeviceInfo(uintptr(d), uint32(info), uintptr(len(buf)), unsafe.Pointer(&buf[0]), &size)
	if code != 0 {
		return "", fmt.Errorf("clGetDeviceInfo: %w", cl.Error(code))
	}
	return cstring(buf), nil
}

// CreateContextFromType implements cl.Runtime.
func (rt *Runtime) CreateContextFromType(props []cl.ContextProperty, dt cl.DeviceType) (cl.Context, error) {
	flat := cl.FlattenProperties(props)
	var propPtr *uintptr
	if len(flat) > 0 {
		propPtr = &flat[0]
	}
	var errCode int32
	ctx := rt.clCreateContextFromType(propPtr, uint64(dt), 0, 0, &errCode)
	runtime.KeepAlive(flat)
	if ctx == 0 || errCode != 0 {
		return 0, fmt.Errorf("clCreateContextFromType: %w", cl.Error(errCode))
	}
	return cl.Context(ctx), nil
}

// ReleaseContext implements cl.Runtime.
func (rt *Runtime) ReleaseContext(c cl.Context) error {
	if code := rt.clReleaseContext(uintptr(c)); code != 0 {
		return fmt.Errorf("clReleaseContext: %w", cl.Error(code))
	}
	return nil
}

// glContextInfo resolves clGetGLContextInfoKHR once. A zero address
// means the extension is not exported by this implementation.
func (rt *Runtime) glContextInfo() uintptr {
	rt.glInfoOnce.Do(func() {
		name := append([]byte("clGetGLContextInfoKHR"), 0)
		rt.glInfoAddr = rt.clGetExtensionFunctionAddress(&name[0])
		runtime.KeepAlive(name)
	})
	return rt.glInfoAddr
}

// GetGLContextDevice implements cl.Runtime.
func (rt *Runtime) GetGLContextDevice(props []cl.ContextProperty) (cl.DeviceID, error) {
	fn := rt.glContextInfo()
	if fn == 0 {
		return 0, fmt.Errorf("clGetGLContextInfoKHR: %w", cl.ErrExtensionUnavailable)
	}
	flat := cl.FlattenProperties(props)
	if len(flat) == 0 {
		return 0, fmt.Errorf("clGetGLContextInfoKHR: %w", cl.InvalidProperty)
	}
	var dev uintptr
	var size uintptr
	code, _, _ := purego.SyscallN(fn,
		uintptr(unsafe.Pointer(&flat[0])),
		uintptr(cl.CurrentDeviceForGLContext),
		unsafe.Sizeof(dev),
		uintptr(unsafe.Pointer(&dev)),
		uintptr(unsafe.Pointer(&size)))
	runtime.KeepAlive(flat)
	if int32(code) != 0 {
		return 0, fmt.Errorf("clGetGLContextInfoKHR: %w", cl.Error(int32(code)))
	}
	if dev == 0 {
		return 0, fmt.Errorf("clGetGLContextInfoKHR: no device backs the GL context")
	}
	return cl.DeviceID(dev), nil
}

// CreateProgramWithSource implements cl.Runtime.
func (rt *Runtime) CreateProgramWithSource(c cl.Context, src string) (cl.Program, error) {
	// Null-terminated source, null lengths array: the runtime reads to
	// the terminator.
	buf := append([]byte(src), 0)
	ptr := &buf[0]
	var errCode int32
	prog := rt.clCreateProgramWithSource(uintptr(c), 1, &ptr, nil, &errCode)
	runtime.KeepAlive(buf)
	if prog == 0 || errCode != 0 {
		return 0, fmt.Errorf("clCreateProgramWithSource: %w", cl.Error(errCode))
	}
	return cl.Program(prog), nil
}

// BuildProgram implements cl.Runtime.
func (rt *Runtime) BuildProgram(prog cl.Program, d cl.DeviceID, options string) error {
	dev := uintptr(d)
	var opts *byte
	var optsBuf []byte
	if options != "" {
		optsBuf = append([]byte(options), 0)
		opts = &optsBuf[0]
	}
	code := rt.clBuildProgram(uintptr(prog), 1, &dev, opts, 0, 0)
	runtime.KeepAlive(optsBuf)
	if code != 0 {
		return fmt.Errorf("clBuildProgram: %w", cl.Error(code))
	}
	return nil
}

// GetProgramBuildLog implements cl.Runtime.
func (rt *Runtime) GetProgramBuildLog(prog cl.Program, d cl.DeviceID) (string, error) {
	buf := make([]byte, buildLogSize)
	var size uintptr
	code := rt.clGetProgramBuildInfo(uintptr(prog), uintptr(d), programBuildLog, uintptr(len(buf)), unsafe.Pointer(&buf[0]), &size)
	if code != 0 {
		return "", fmt.Errorf("clGetProgramBuildInfo: %w", cl.Error(code))
	}
	return cstring(buf), nil
}

// ReleaseProgram implements cl.Runtime.
func (rt *Runtime) ReleaseProgram(prog cl.Program) error {
	if code := rt.clReleaseProgram(uintptr(prog)); code != 0 {
		return fmt.Errorf("clReleaseProgram: %w", cl.Error(code))
	}
	return nil
}

// programBuildLog is the cl_program_build_info selector for the build
// log, the only program info query this module needs.
const programBuildLog uint32 = 0x1183

// cstring trims a bounded info buffer at its null terminator.
func cstring(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

var _ cl.Runtime = (*Runtime)(nil)
