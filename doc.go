// Package clgl negotiates OpenCL compute contexts that share resources
// with a live OpenGL rendering context.
//
// # Overview
//
// Applications that render with OpenGL and want GPU-resident compute
// need an OpenCL context bound to the same device and resources as the
// GL driver, so images and buffers can be shared without copies. clgl
// performs that negotiation: it picks the OpenCL platform matching the
// GL driver's vendor, assembles the OS-specific interop property list
// from the live context's native handles, creates the shared context,
// resolves the device actually backing the GL context, and builds
// OpenCL C programs against it.
//
// # Quick Start
//
//	rt, err := dyncl.New()           // bind the installed OpenCL library
//	if err != nil {
//	    // no OpenCL on this system
//	}
//	cc := clgl.New(rt, provider)     // provider: your glctx.Provider
//
//	// With the GL context current on this thread:
//	if !cc.Create() {
//	    log.Fatal(cc.Err())
//	}
//	defer cc.Destroy()
//
//	prog := cc.BuildProgramFromFile("kernels.cl")
//
// # Collaborators
//
// The host supplies its OpenGL state through the interfaces in
// [github.com/gogpu/clgl/glctx]; glfwctx implements them for GLFW
// windows. The OpenCL runtime is reached through
// [github.com/gogpu/clgl/cl.Runtime]; cl/dyncl binds the installed
// implementation without cgo.
//
// # Threading
//
// Everything is synchronous and thread-affine: Create must run on the
// thread holding the current GL context, and the context must remain
// current for the whole call. No goroutines, suspension points or
// cancellation are involved.
//
// # Logging
//
// clgl is silent by default. Call [SetLogger] to receive debug-level
// negotiation traces and warnings for every recoverable anomaly.
package clgl
