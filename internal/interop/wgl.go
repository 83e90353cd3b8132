// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interop

import (
	"github.com/gogpu/clgl/cl"
	"github.com/gogpu/clgl/glctx"
)

// wglRecipe builds the Windows property list from the WGL context and
// surface device context. GLES translation layers (ANGLE) render through
// D3D and have no WGL handles to share, so they are rejected outright.
type wglRecipe struct{}

// WGL returns the Windows recipe.
func WGL() Recipe { return wglRecipe{} }

func (wglRecipe) Name() string { return "wgl" }

func (wglRecipe) Properties(platform cl.PlatformID, src Source) ([]cl.ContextProperty, error) {
	if src.Backend() == glctx.BackendEmulated {
		return nil, ErrEmulatedBackend
	}
	return []cl.ContextProperty{
		{Key: cl.ContextPlatform, Value: uintptr(platform)},
		{Key: cl.GLContextKHR, Value: src.NativeHandle(glctx.ContextWGL)},
		{Key: cl.WGLHDCKHR, Value: src.NativeHandle(glctx.ContextHDC)},
	}, nil
}
