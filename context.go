package clgl

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gogpu/clgl/cl"
	"github.com/gogpu/clgl/glctx"
	"github.com/gogpu/clgl/internal/interop"
)

// ComputeContext owns an OpenCL context negotiated to share resources
// with a live OpenGL context. It holds exactly three runtime handles:
// the chosen platform, the device backing the GL context, and the
// context itself. The three are set and cleared together; [IsValid] is
// the single validity predicate.
//
// A ComputeContext is not safe for concurrent use. Create must run on
// the thread on which the OpenGL context is current, and the GL context
// must stay current for the whole call: the native handle queries behind
// property assembly are only valid against the thread-current context.
type ComputeContext struct {
	rt     cl.Runtime
	gfx    glctx.Provider
	native glctx.NativeHandler
	files  glctx.FileProvider
	recipe interop.Recipe

	platform cl.PlatformID
	device   cl.DeviceID
	context  cl.Context

	err error
}

// Option configures a ComputeContext at construction.
type Option func(*ComputeContext)

// WithNativeHandler supplies the windowing native-handle source used for
// interop property assembly. When the graphics provider itself
// implements [glctx.NativeHandler] this option is unnecessary.
func WithNativeHandler(h glctx.NativeHandler) Option {
	return func(cc *ComputeContext) { cc.native = h }
}

// WithFiles replaces the file provider used by BuildProgramFromFile.
// The default reads from the host filesystem.
func WithFiles(fp glctx.FileProvider) Option {
	return func(cc *ComputeContext) { cc.files = fp }
}

// WithRecipe overrides the build-target interop recipe by name
// ("cgl", "wgl" or "eglglx"). Unknown names keep the default.
func WithRecipe(name string) Option {
	return func(cc *ComputeContext) {
		if r := interop.Get(name); r != nil {
			cc.recipe = r
		} else {
			Logger().Warn("unknown interop recipe, keeping default", "recipe", name)
		}
	}
}

// New returns a ComputeContext using the given OpenCL runtime and
// graphics-context provider. No OpenCL initialization takes place
// before calling [ComputeContext.Create].
//
// A finalizer releases leaked contexts as a fallback; callers should
// still call Destroy explicitly for deterministic teardown.
func New(rt cl.Runtime, gfx glctx.Provider, opts ...Option) *ComputeContext {
	cc := &ComputeContext{
		rt:     rt,
		gfx:    gfx,
		files:  glctx.OSFiles{},
		recipe: interop.Default(),
	}
	if nh, ok := gfx.(glctx.NativeHandler); ok {
		cc.native = nh
	}
	for _, opt := range opts {
		opt(cc)
	}
	runtime.SetFinalizer(cc, (*ComputeContext).Destroy)
	return cc
}

// IsValid reports whether the OpenCL context was successfully created
// and has not been destroyed.
func (cc *ComputeContext) IsValid() bool { return cc.context != 0 }

// Platform returns the OpenCL platform chosen in Create, or zero.
func (cc *ComputeContext) Platform() cl.PlatformID { return cc.platform }

// Device returns the OpenCL device resolved in Create, or zero.
func (cc *ComputeContext) Device() cl.DeviceID { return cc.device }

// Context returns the OpenCL context, or zero if not yet created.
func (cc *ComputeContext) Context() cl.Context { return cc.context }

// Err returns the cause of the last failed operation, or nil after a
// successful Create. Failures are classified by the package sentinel
// errors (ErrNoPlatform, ErrNoGLContext, ...).
func (cc *ComputeContext) Err() error { return cc.err }

// Create negotiates a new OpenCL context sharing resources with the
// current OpenGL context.
//
// If a context was already created, it is destroyed first. An OpenGL
// context must be current on the calling thread for the entire call.
// The platform matching the GL driver's vendor is selected, the
// OS-specific interop property list is assembled, the context is
// created for GPU devices, and the device actually backing the GL
// context is resolved.
//
// Create returns false on failure. Diagnostics are logged through the
// package logger and the classified cause is available via [Err]; no
// partial state survives a failed call.
func (cc *ComputeContext) Create() bool {
	cc.Destroy()
	log := Logger()
	log.Debug("creating new OpenCL context")

	if cc.gfx == nil || cc.gfx.Current() == 0 {
		return cc.fail(ErrNoGLContext,
			"attempted CL-GL interop without a current OpenGL context")
	}

	platform, err := cc.selectPlatform()
	if err != nil {
		cc.err = err
		return false
	}

	props, err := cc.recipe.Properties(platform, recipeSource{cc.gfx, cc.native})
	if err != nil {
		if errors.Is(err, interop.ErrEmulatedBackend) {
			return cc.fail(fmt.Errorf("%w: %v", ErrUnsupportedBackend, err),
				"GL backend rejected for interop", "recipe", cc.recipe.Name())
		}
		return cc.fail(fmt.Errorf("%w: %v", ErrContextCreation, err),
			"failed to assemble interop properties", "recipe", cc.recipe.Name(), "err", err)
	}

	ctx, err := cc.rt.CreateContextFromType(props, cl.DeviceTypeGPU)
	if err != nil || ctx == 0 {
		if err == nil {
			err = errors.New("runtime returned null context")
		}
		return cc.fail(fmt.Errorf("%w: %w", ErrContextCreation, err),
			"failed to create OpenCL context", "err", err)
	}
	log.Debug("using context", "context", uintptr(ctx))

	device, err := cc.resolveDevice(platform, props)
	if err != nil {
		// Roll back: the context must not outlive a failed negotiation.
		if rerr := cc.rt.ReleaseContext(ctx); rerr != nil {
			log.Warn("failed to release OpenCL context during rollback", "err", rerr)
		}
		return cc.fail(fmt.Errorf("%w: %w", ErrDeviceResolution, err),
			"failed to resolve OpenCL device for GL context", "err", err)
	}
	log.Debug("using device", "device", uintptr(device))

	cc.platform = platform
	cc.device = device
	cc.context = ctx
	cc.err = nil
	return true
}

// Destroy releases all OpenCL resources held by the context. It is
// idempotent: calling it on an empty or already-destroyed instance is a
// no-op. All three handles are cleared together.
func (cc *ComputeContext) Destroy() {
	if cc.context != 0 {
		Logger().Debug("releasing OpenCL context", "context", uintptr(cc.context))
		if err := cc.rt.ReleaseContext(cc.context); err != nil {
			Logger().Warn("failed to release OpenCL context", "err", err)
		}
		cc.context = 0
	}
	cc.device = 0
	cc.platform = 0
}

// PlatformName returns the human-readable name of the platform in use.
// The value is only meaningful after a successful Create; query errors
// are logged and yield an empty string.
func (cc *ComputeContext) PlatformName() string {
	name, err := cc.rt.GetPlatformInfo(cc.platform, cl.PlatformName)
	if err != nil {
		Logger().Warn("failed to query platform name", "err", err)
		return ""
	}
	return name
}

// DeviceExtensions returns the space-separated extension list of the
// device in use. The value is only meaningful after a successful
// Create; query errors are logged and yield an empty string.
func (cc *ComputeContext) DeviceExtensions() string {
	ext, err := cc.rt.GetDeviceInfo(cc.device, cl.DeviceExtensions)
	if err != nil {
		Logger().Warn("failed to query device extensions", "err", err)
		return ""
	}
	return ext
}

// fail records the classified cause, logs the warning and reports
// failure to Create's caller.
func (cc *ComputeContext) fail(err error, msg string, args ...any) bool {
	cc.err = err
	Logger().Warn(msg, args...)
	return false
}

// deviceAttempt is one step of the device resolution fallback chain.
type deviceAttempt struct {
	name string
	fn   func() (cl.DeviceID, error)
}

// resolveDevice finds the device backing the live GL context. The
// extension query is authoritative; when it is unavailable or fails,
// the first GPU device of the platform is used. Attempts are tried in
// order until one yields a device.
func (cc *ComputeContext) resolveDevice(platform cl.PlatformID, props []cl.ContextProperty) (cl.DeviceID, error) {
	attempts := []deviceAttempt{
		{name: "gl-context-query", fn: func() (cl.DeviceID, error) {
			return cc.rt.GetGLContextDevice(props)
		}},
		{name: "first-gpu", fn: func() (cl.DeviceID, error) {
			devices, err := cc.rt.GetDeviceIDs(platform, cl.DeviceTypeGPU)
			if err != nil {
				return 0, err
			}
			if len(devices) == 0 {
				return 0, cl.DeviceNotFound
			}
			return devices[0], nil
		}},
	}

	var errs []error
	for _, at := range attempts {
		dev, err := at.fn()
		if err == nil && dev == 0 {
			err = errors.New("returned null device")
		}
		if err == nil {
			return dev, nil
		}
		Logger().Warn("device resolution attempt failed", "attempt", at.name, "err", err)
		errs = append(errs, fmt.Errorf("%s: %w", at.name, err))
	}
	return 0, errors.Join(errs...)
}

// recipeSource adapts the context's collaborators to the interop
// recipe input interface.
type recipeSource struct {
	gfx    glctx.Provider
	native glctx.NativeHandler
}

func (s recipeSource) Backend() glctx.BackendKind { return s.gfx.Backend() }

func (s recipeSource) NativeHandle(kind glctx.ResourceKind) uintptr {
	if s.native == nil {
		return 0
	}
	return s.native.NativeHandle(kind)
}
