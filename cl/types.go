// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cl

// Resource handles
//
// These opaque handles represent OpenCL runtime objects. The values are the
// raw cl_platform_id / cl_device_id / cl_context / cl_program pointers as
// returned by the installed OpenCL implementation. The zero value is always
// invalid and means "no object".

// PlatformID is an opaque handle to an OpenCL platform.
type PlatformID uintptr

// DeviceID is an opaque handle to an OpenCL device.
type DeviceID uintptr

// Context is an opaque handle to an OpenCL context.
type Context uintptr

// Program is an opaque handle to an OpenCL program object.
type Program uintptr

// DeviceType selects classes of devices for enumeration and context
// creation. Values match the cl_device_type bitfield.
type DeviceType uintptr

const (
	// DeviceTypeDefault is the implementation-defined default device.
	DeviceTypeDefault DeviceType = 1 << 0

	// DeviceTypeCPU selects host-processor devices.
	DeviceTypeCPU DeviceType = 1 << 1

	// DeviceTypeGPU selects GPU devices.
	DeviceTypeGPU DeviceType = 1 << 2

	// DeviceTypeAccelerator selects dedicated accelerators.
	DeviceTypeAccelerator DeviceType = 1 << 3

	// DeviceTypeAll selects every available device.
	DeviceTypeAll DeviceType = 0xFFFFFFFF
)

// PlatformInfo selects a platform info query. Values match cl_platform_info.
type PlatformInfo uint32

const (
	// PlatformProfile is the supported OpenCL profile string.
	PlatformProfile PlatformInfo = 0x0900

	// PlatformVersion is the OpenCL version string.
	PlatformVersion PlatformInfo = 0x0901

	// PlatformName is the human-readable platform name.
	PlatformName PlatformInfo = 0x0902

	// PlatformVendor is the platform vendor string.
	PlatformVendor PlatformInfo = 0x0903

	// PlatformExtensions is the space-separated platform extension list.
	PlatformExtensions PlatformInfo = 0x0904
)

// DeviceInfo selects a device info query. Values match cl_device_info.
type DeviceInfo uint32

const (
	// DeviceName is the human-readable device name.
	DeviceName DeviceInfo = 0x102B

	// DeviceVendor is the device vendor string.
	DeviceVendor DeviceInfo = 0x102C

	// DeviceVersion is the OpenCL version supported by the device.
	DeviceVersion DeviceInfo = 0x102F

	// DeviceExtensions is the space-separated device extension list.
	DeviceExtensions DeviceInfo = 0x1030
)

// ContextProperty is one (key, value) pair of an interop context property
// list. Lists are assembled fresh for every context-creation attempt; the
// native handles they embed are only valid while the originating OpenGL
// context is current on the calling thread.
type ContextProperty struct {
	Key   uintptr
	Value uintptr
}

// Context property keys. Values match the cl_context_properties keys from
// the Khronos GL sharing extensions.
const (
	// ContextPlatform names the platform the context is created against.
	ContextPlatform uintptr = 0x1084

	// GLContextKHR carries the native OpenGL context handle
	// (HGLRC, EGLContext or GLXContext).
	GLContextKHR uintptr = 0x2008

	// EGLDisplayKHR carries the EGLDisplay backing the GL context.
	EGLDisplayKHR uintptr = 0x2009

	// GLXDisplayKHR carries the X11 Display backing the GL context.
	GLXDisplayKHR uintptr = 0x200A

	// WGLHDCKHR carries the device context (HDC) of the GL surface.
	WGLHDCKHR uintptr = 0x200B

	// CGLShareGroupKHR carries a CGLShareGroupObj on Apple platforms.
	CGLShareGroupKHR uintptr = 0x200C

	// CGLShareGroupApple is the Apple-specific share group property used
	// with clCreateContext on macOS.
	CGLShareGroupApple uintptr = 0x10000000
)

// GLContextInfo selects a query on a live GL context through the
// cl_khr_gl_sharing extension.
type GLContextInfo uint32

const (
	// CurrentDeviceForGLContext asks which single OpenCL device currently
	// backs the GL context described by a property list.
	CurrentDeviceForGLContext GLContextInfo = 0x2006

	// DevicesForGLContext asks for all devices capable of sharing with
	// the GL context described by a property list.
	DevicesForGLContext GLContextInfo = 0x2007
)

// ChannelOrder describes the layout of channels in an image format.
// Values match cl_channel_order.
type ChannelOrder uint32

const (
	ChannelOrderR         ChannelOrder = 0x10B0
	ChannelOrderA         ChannelOrder = 0x10B1
	ChannelOrderRG        ChannelOrder = 0x10B2
	ChannelOrderRA        ChannelOrder = 0x10B3
	ChannelOrderRGB       ChannelOrder = 0x10B4
	ChannelOrderRGBA      ChannelOrder = 0x10B5
	ChannelOrderBGRA      ChannelOrder = 0x10B6
	ChannelOrderARGB      ChannelOrder = 0x10B7
	ChannelOrderIntensity ChannelOrder = 0x10B8
	ChannelOrderLuminance ChannelOrder = 0x10B9
	ChannelOrderRx        ChannelOrder = 0x10BA
	ChannelOrderRGx       ChannelOrder = 0x10BB
	ChannelOrderRGBx      ChannelOrder = 0x10BC
)

// ChannelType describes the data type of each channel in an image format.
// Values match cl_channel_type.
type ChannelType uint32

const (
	ChannelTypeSnormInt8      ChannelType = 0x10D0
	ChannelTypeSnormInt16     ChannelType = 0x10D1
	ChannelTypeUnormInt8      ChannelType = 0x10D2
	ChannelTypeUnormInt16     ChannelType = 0x10D3
	ChannelTypeUnormShort565  ChannelType = 0x10D4
	ChannelTypeUnormShort555  ChannelType = 0x10D5
	ChannelTypeUnormInt101010 ChannelType = 0x10D6
	ChannelTypeSignedInt8     ChannelType = 0x10D7
	ChannelTypeSignedInt16    ChannelType = 0x10D8
	ChannelTypeSignedInt32    ChannelType = 0x10D9
	ChannelTypeUnsignedInt8   ChannelType = 0x10DA
	ChannelTypeUnsignedInt16  ChannelType = 0x10DB
	ChannelTypeUnsignedInt32  ChannelType = 0x10DC
	ChannelTypeHalfFloat      ChannelType = 0x10DD
	ChannelTypeFloat          ChannelType = 0x10DE
)

// ImageFormat pairs a channel order with a channel data type, matching
// cl_image_format. The zero value is the documented "unrecognized format"
// sentinel.
type ImageFormat struct {
	ChannelOrder ChannelOrder
	ChannelType  ChannelType
}

// FlattenProperties converts a property list to the flat, zero-terminated
// cl_context_properties array layout expected by the runtime. A nil or
// empty list flattens to nil (no properties).
func FlattenProperties(props []ContextProperty) []uintptr {
	if len(props) == 0 {
		return nil
	}
	flat := make([]uintptr, 0, 2*len(props)+1)
	for _, p := range props {
		flat = append(flat, p.Key, p.Value)
	}
	return append(flat, 0)
}
