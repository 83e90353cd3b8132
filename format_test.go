package clgl

import (
	"testing"

	"github.com/gogpu/clgl/cl"
)

func TestToImageFormat(t *testing.T) {
	packed32 := cl.ImageFormat{ChannelOrder: cl.ChannelOrderARGB, ChannelType: cl.ChannelTypeUnormInt8}
	if hostLittleEndian() {
		packed32.ChannelOrder = cl.ChannelOrderBGRA
	}

	tests := []struct {
		format PixelFormat
		want   cl.ImageFormat
	}{
		{FormatAlpha8, cl.ImageFormat{ChannelOrder: cl.ChannelOrderA, ChannelType: cl.ChannelTypeUnormInt8}},
		{FormatXRGB32, packed32},
		{FormatARGB32, packed32},
		{FormatARGB32Premultiplied, packed32},
		{FormatRGB565, cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGB, ChannelType: cl.ChannelTypeUnormShort565}},
		{FormatRGB555, cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGB, ChannelType: cl.ChannelTypeUnormShort555}},
		{FormatRGB888, cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGB, ChannelType: cl.ChannelTypeUnormInt8}},
		{FormatRGBX8888, cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGBx, ChannelType: cl.ChannelTypeUnormInt8}},
		{FormatRGBA8888, cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGBA, ChannelType: cl.ChannelTypeUnormInt8}},
		{FormatRGBA8888Premultiplied, cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGBA, ChannelType: cl.ChannelTypeUnormInt8}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := ToImageFormat(tt.format); got != tt.want {
				t.Errorf("ToImageFormat(%v) = %+v, want %+v", tt.format, got, tt.want)
			}
		})
	}
}

func TestToImageFormatUnrecognized(t *testing.T) {
	for _, f := range []PixelFormat{FormatUnknown, PixelFormat(999), PixelFormat(-1)} {
		got := ToImageFormat(f)
		if got != (cl.ImageFormat{}) {
			t.Errorf("ToImageFormat(%d) = %+v, want zero sentinel", f, got)
		}
	}
}

func TestToImageFormatDeterministic(t *testing.T) {
	for f := FormatAlpha8; f <= FormatRGBA8888Premultiplied; f++ {
		a := ToImageFormat(f)
		b := ToImageFormat(f)
		if a != b {
			t.Errorf("ToImageFormat(%v) not deterministic: %+v != %+v", f, a, b)
		}
	}
}

func TestPixelFormatString(t *testing.T) {
	if got := FormatRGB565.String(); got != "RGB565" {
		t.Errorf("FormatRGB565.String() = %q, want %q", got, "RGB565")
	}
	if got := PixelFormat(999).String(); got != "Unknown" {
		t.Errorf("PixelFormat(999).String() = %q, want %q", got, "Unknown")
	}
}
