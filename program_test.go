package clgl

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/clgl/cl"
)

const kernelSrc = "__kernel void noop() {}"

// captureLogs routes the package logger into a buffer for the duration
// of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func createdContext(t *testing.T, rt *fakeRuntime) *ComputeContext {
	t.Helper()
	cc := newTestContext(rt, newFakeProvider())
	if !cc.Create() {
		t.Fatalf("Create() = false, err = %v", cc.Err())
	}
	return cc
}

func TestBuildProgram(t *testing.T) {
	rt := newFakeRuntime()
	cc := createdContext(t, rt)

	prog := cc.BuildProgram([]byte(kernelSrc))
	if prog == 0 {
		t.Fatalf("BuildProgram() = 0, err = %v", cc.Err())
	}
	// Ownership passed to the caller: nothing released.
	if len(rt.programReleases) != 0 {
		t.Errorf("program releases = %v, want none", rt.programReleases)
	}
}

func TestBuildProgramCreateFailure(t *testing.T) {
	rt := newFakeRuntime()
	cc := createdContext(t, rt)
	rt.createProgErr = cl.InvalidContext
	buf := captureLogs(t)

	if prog := cc.BuildProgram([]byte(kernelSrc)); prog != 0 {
		t.Fatalf("BuildProgram() = %#x, want 0", prog)
	}
	if !errors.Is(cc.Err(), ErrProgramCreate) {
		t.Errorf("Err() = %v, want ErrProgramCreate", cc.Err())
	}
	out := buf.String()
	if !strings.Contains(out, "CL_INVALID_CONTEXT") {
		t.Errorf("log output missing error code, got: %s", out)
	}
	if !strings.Contains(out, "noop") {
		t.Errorf("log output missing program source, got: %s", out)
	}
	if !cc.IsValid() {
		t.Error("IsValid() = false, build failure must not affect context validity")
	}
}

func TestBuildProgramBuildFailure(t *testing.T) {
	rt := newFakeRuntime()
	cc := createdContext(t, rt)
	rt.buildErr = cl.BuildProgramFailure
	rt.buildLog = "kernels.cl:1:10: error: expected ';'"
	buf := captureLogs(t)

	if prog := cc.BuildProgram([]byte(kernelSrc)); prog != 0 {
		t.Fatalf("BuildProgram() = %#x, want 0", prog)
	}
	if !errors.Is(cc.Err(), ErrProgramBuild) {
		t.Errorf("Err() = %v, want ErrProgramBuild", cc.Err())
	}
	out := buf.String()
	if !strings.Contains(out, "CL_BUILD_PROGRAM_FAILURE") {
		t.Errorf("log output missing error code, got: %s", out)
	}
	if !strings.Contains(out, "expected ';'") {
		t.Errorf("log output missing build log, got: %s", out)
	}
	// The failed program object must not leak.
	if got := rt.programReleases[0x200]; got != 1 {
		t.Errorf("failed program released %d times, want 1", got)
	}
	if !cc.IsValid() {
		t.Error("IsValid() = false, build failure must not affect context validity")
	}
}

// fakeFiles is a FileProvider double.
type fakeFiles struct {
	files map[string][]byte
	err   error
}

func (f *fakeFiles) ReadFile(name string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.files[name]
	if !ok {
		return nil, errors.New("file does not exist")
	}
	return data, nil
}

func TestBuildProgramFromFile(t *testing.T) {
	rt := newFakeRuntime()
	cc := newTestContext(rt, newFakeProvider())
	cc.files = &fakeFiles{files: map[string][]byte{"kernels.cl": []byte(kernelSrc)}}
	if !cc.Create() {
		t.Fatalf("Create() = false, err = %v", cc.Err())
	}

	if prog := cc.BuildProgramFromFile("kernels.cl"); prog == 0 {
		t.Errorf("BuildProgramFromFile() = 0, err = %v", cc.Err())
	}
}

func TestBuildProgramFromFileOpenFailure(t *testing.T) {
	rt := newFakeRuntime()
	cc := newTestContext(rt, newFakeProvider())
	cc.files = &fakeFiles{}
	if !cc.Create() {
		t.Fatalf("Create() = false, err = %v", cc.Err())
	}
	buf := captureLogs(t)

	if prog := cc.BuildProgramFromFile("missing.cl"); prog != 0 {
		t.Fatalf("BuildProgramFromFile() = %#x, want 0", prog)
	}
	if !errors.Is(cc.Err(), ErrFileOpen) {
		t.Errorf("Err() = %v, want ErrFileOpen", cc.Err())
	}
	if !strings.Contains(buf.String(), "missing.cl") {
		t.Errorf("log output missing filename, got: %s", buf.String())
	}
	// The runtime must not be reached at all.
	if rt.progCalls != 0 {
		t.Errorf("CreateProgramWithSource called %d times, want 0", rt.progCalls)
	}
}
