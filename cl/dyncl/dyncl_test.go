package dyncl

import (
	"errors"
	"testing"

	"github.com/gogpu/clgl/cl"
)

// New depends on the host having an OpenCL implementation installed.
// Either outcome is fine; what matters is that failure is reported
// through the cl.ErrUnavailable sentinel and never as a panic.
func TestNew(t *testing.T) {
	rt, err := New()
	if err != nil {
		if !errors.Is(err, cl.ErrUnavailable) {
			t.Errorf("New() error = %v, want wrapped cl.ErrUnavailable", err)
		}
		return
	}
	if rt == nil {
		t.Fatal("New() = nil runtime with nil error")
	}
	if rt.clGetPlatformIDs == nil {
		t.Error("New() returned runtime with unbound clGetPlatformIDs")
	}
}

func TestCstring(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte("NVIDIA CUDA\x00\x00\x00"), "NVIDIA CUDA"},
		{[]byte("\x00garbage"), ""},
		{[]byte("no terminator"), "no terminator"},
		{[]byte{}, ""},
	}
	for _, tt := range tests {
		if got := cstring(tt.in); got != tt.want {
			t.Errorf("cstring(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
