// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interop

import (
	"github.com/gogpu/clgl/cl"
	"github.com/gogpu/clgl/glctx"
)

// eglglxRecipe builds the X11-family property list. The windowing
// integration is probed for an EGLDisplay first; when one exists the GL
// context is EGL-backed and the EGL display property is composed.
// Otherwise the GLX pair is used. In both sub-cases a missing native
// context handle is logged but NOT fatal: the list is still assembled
// with whatever was obtained, and the runtime's create call decides.
type eglglxRecipe struct{}

// EGLGLX returns the X11 recipe with the EGL-before-GLX fallback.
func EGLGLX() Recipe { return eglglxRecipe{} }

func (eglglxRecipe) Name() string { return "eglglx" }

func (eglglxRecipe) Properties(platform cl.PlatformID, src Source) ([]cl.ContextProperty, error) {
	if dpy := src.NativeHandle(glctx.IntegrationEGLDisplay); dpy != 0 {
		glc := src.NativeHandle(glctx.ContextEGL)
		if glc == 0 {
			logger().Warn("failed to get the underlying EGL context from the current GL context")
		}
		return []cl.ContextProperty{
			{Key: cl.ContextPlatform, Value: uintptr(platform)},
			{Key: cl.GLContextKHR, Value: glc},
			{Key: cl.EGLDisplayKHR, Value: dpy},
		}, nil
	}

	dpy := src.NativeHandle(glctx.IntegrationX11Display)
	glc := src.NativeHandle(glctx.ContextGLX)
	if glc == 0 {
		logger().Warn("failed to get the underlying GLX context from the current GL context")
	}
	return []cl.ContextProperty{
		{Key: cl.ContextPlatform, Value: uintptr(platform)},
		{Key: cl.GLContextKHR, Value: glc},
		{Key: cl.GLXDisplayKHR, Value: dpy},
	}, nil
}
