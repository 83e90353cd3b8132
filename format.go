package clgl

import (
	"encoding/binary"

	"github.com/gogpu/clgl/cl"
)

// PixelFormat identifies a source image pixel layout in the graphics
// image model.
type PixelFormat int32

const (
	// FormatUnknown is the zero value; it translates to the sentinel
	// image format.
	FormatUnknown PixelFormat = iota

	// FormatAlpha8 is an 8-bit alpha-only format.
	FormatAlpha8

	// FormatXRGB32 is packed 32-bit RGB with the high byte unused.
	FormatXRGB32

	// FormatARGB32 is packed 32-bit ARGB.
	FormatARGB32

	// FormatARGB32Premultiplied is packed 32-bit ARGB with
	// premultiplied alpha.
	FormatARGB32Premultiplied

	// FormatRGB565 is 16-bit 5-6-5 RGB.
	FormatRGB565

	// FormatRGB555 is 15-bit 5-5-5 RGB.
	FormatRGB555

	// FormatRGB888 is 24-bit RGB, one byte per channel.
	FormatRGB888

	// FormatRGBX8888 is byte-ordered RGBx.
	FormatRGBX8888

	// FormatRGBA8888 is byte-ordered RGBA.
	FormatRGBA8888

	// FormatRGBA8888Premultiplied is byte-ordered RGBA with
	// premultiplied alpha.
	FormatRGBA8888Premultiplied
)

// String returns the pixel format name.
func (f PixelFormat) String() string {
	switch f {
	case FormatAlpha8:
		return "Alpha8"
	case FormatXRGB32:
		return "XRGB32"
	case FormatARGB32:
		return "ARGB32"
	case FormatARGB32Premultiplied:
		return "ARGB32Premultiplied"
	case FormatRGB565:
		return "RGB565"
	case FormatRGB555:
		return "RGB555"
	case FormatRGB888:
		return "RGB888"
	case FormatRGBX8888:
		return "RGBX8888"
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatRGBA8888Premultiplied:
		return "RGBA8888Premultiplied"
	default:
		return "Unknown"
	}
}

// hostLittleEndian reports the byte order of the host, queried at call
// time. Packed 32-bit formats store their channels in memory in reversed
// order on little-endian hosts.
func hostLittleEndian() bool {
	return binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 1
}

// ToImageFormat returns the OpenCL image format matching the given
// source pixel format.
//
// The mapping is pure and total: equal inputs on equal host byte order
// always produce the same result. Packed 32-bit ARGB/XRGB formats map to
// BGRA channel order on little-endian hosts and ARGB on big-endian
// hosts; this is the only place host architecture affects the output.
// Unrecognized formats produce the zero [cl.ImageFormat] sentinel and a
// logged warning; they never fail the caller.
func ToImageFormat(f PixelFormat) cl.ImageFormat {
	switch f {
	case FormatAlpha8:
		return cl.ImageFormat{ChannelOrder: cl.ChannelOrderA, ChannelType: cl.ChannelTypeUnormInt8}

	case FormatXRGB32, FormatARGB32, FormatARGB32Premultiplied:
		if hostLittleEndian() {
			return cl.ImageFormat{ChannelOrder: cl.ChannelOrderBGRA, ChannelType: cl.ChannelTypeUnormInt8}
		}
		return cl.ImageFormat{ChannelOrder: cl.ChannelOrderARGB, ChannelType: cl.ChannelTypeUnormInt8}

	case FormatRGB565:
		return cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGB, ChannelType: cl.ChannelTypeUnormShort565}

	case FormatRGB555:
		return cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGB, ChannelType: cl.ChannelTypeUnormShort555}

	case FormatRGB888:
		return cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGB, ChannelType: cl.ChannelTypeUnormInt8}

	case FormatRGBX8888:
		return cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGBx, ChannelType: cl.ChannelTypeUnormInt8}

	case FormatRGBA8888, FormatRGBA8888Premultiplied:
		return cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGBA, ChannelType: cl.ChannelTypeUnormInt8}

	default:
		Logger().Warn("unrecognized pixel format", "format", int32(f))
		return cl.ImageFormat{}
	}
}
