package clgl

import (
	"errors"
	"fmt"

	"github.com/gogpu/clgl/cl"
)

// BuildProgram creates and builds an OpenCL program from the source code
// in src, compiling for exactly the device resolved in Create, with no
// extra build options.
//
// It returns the program handle, or zero when creation or compilation
// failed. Error codes, the full source, and the compiler's build log are
// emitted through the package logger; the classified cause is available
// via [ComputeContext.Err]. A failed build never affects the validity of
// the context itself.
//
// Ownership of a non-zero result passes to the caller, who is
// responsible for eventually releasing it.
func (cc *ComputeContext) BuildProgram(src []byte) cl.Program {
	log := Logger()

	prog, err := cc.rt.CreateProgramWithSource(cc.context, string(src))
	if err != nil || prog == 0 {
		if err == nil {
			err = errors.New("runtime returned null program")
		}
		cc.err = fmt.Errorf("%w: %w", ErrProgramCreate, err)
		log.Warn("failed to create OpenCL program", "err", err)
		log.Warn("program source", "source", string(src))
		return 0
	}

	if err := cc.rt.BuildProgram(prog, cc.device, ""); err != nil {
		buildLog, logErr := cc.rt.GetProgramBuildLog(prog, cc.device)
		if logErr != nil {
			buildLog = fmt.Sprintf("<build log unavailable: %v>", logErr)
		}
		cc.err = fmt.Errorf("%w: %w", ErrProgramBuild, err)
		log.Warn("failed to build OpenCL program", "err", err)
		log.Warn("program source", "source", string(src))
		log.Warn("build log", "log", buildLog)
		if rerr := cc.rt.ReleaseProgram(prog); rerr != nil {
			log.Warn("failed to release failed program", "err", rerr)
		}
		return 0
	}

	return prog
}

// BuildProgramFromFile creates and builds an OpenCL program from the
// source file filename, loaded through the configured file provider.
// A file that cannot be read fails immediately, without reaching the
// OpenCL runtime; the filename is logged.
func (cc *ComputeContext) BuildProgramFromFile(filename string) cl.Program {
	src, err := cc.files.ReadFile(filename)
	if err != nil {
		cc.err = fmt.Errorf("%w: %s: %v", ErrFileOpen, filename, err)
		Logger().Warn("failed to open OpenCL program source file", "file", filename, "err", err)
		return 0
	}
	return cc.BuildProgram(src)
}
