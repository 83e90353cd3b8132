// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cl

import (
	"errors"
	"fmt"
	"testing"
)

func TestFlattenProperties(t *testing.T) {
	tests := []struct {
		name  string
		props []ContextProperty
		want  []uintptr
	}{
		{
			name:  "empty",
			props: nil,
			want:  nil,
		},
		{
			name:  "single pair",
			props: []ContextProperty{{Key: ContextPlatform, Value: 0xA}},
			want:  []uintptr{ContextPlatform, 0xA, 0},
		},
		{
			name: "wgl triple",
			props: []ContextProperty{
				{Key: ContextPlatform, Value: 0xA},
				{Key: GLContextKHR, Value: 0xB},
				{Key: WGLHDCKHR, Value: 0xC},
			},
			want: []uintptr{ContextPlatform, 0xA, GLContextKHR, 0xB, WGLHDCKHR, 0xC, 0},
		},
		{
			name:  "zero value handle is preserved",
			props: []ContextProperty{{Key: GLContextKHR, Value: 0}},
			want:  []uintptr{GLContextKHR, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenProperties(tt.props)
			if len(got) != len(tt.want) {
				t.Fatalf("FlattenProperties() len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FlattenProperties()[%d] = %#x, want %#x", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestErrorNames(t *testing.T) {
	tests := []struct {
		code Error
		want string
	}{
		{Success, "CL_SUCCESS (0)"},
		{BuildProgramFailure, "CL_BUILD_PROGRAM_FAILURE (-11)"},
		{PlatformNotFoundKHR, "CL_PLATFORM_NOT_FOUND_KHR (-1001)"},
		{Error(-9999), "cl error -9999"},
	}
	for _, tt := range tests {
		if got := tt.code.Error(); got != tt.want {
			t.Errorf("Error(%d).Error() = %q, want %q", int32(tt.code), got, tt.want)
		}
	}
}

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("create failed: %w", InvalidGLShareGroupKHR)
	code, ok := Code(wrapped)
	if !ok || code != InvalidGLShareGroupKHR {
		t.Errorf("Code(wrapped) = %v, %v; want %v, true", code, ok, InvalidGLShareGroupKHR)
	}

	code, ok = Code(errors.New("no code here"))
	if ok || code != Success {
		t.Errorf("Code(plain) = %v, %v; want %v, false", code, ok, Success)
	}
}
