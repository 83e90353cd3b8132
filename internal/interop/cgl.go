// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interop

import (
	"github.com/gogpu/clgl/cl"
	"github.com/gogpu/clgl/glctx"
)

// cglRecipe builds the Apple share-group property list. The share group
// already names the GL context's resources, so no platform property is
// needed.
type cglRecipe struct{}

// CGL returns the macOS share-group recipe.
func CGL() Recipe { return cglRecipe{} }

func (cglRecipe) Name() string { return "cgl" }

func (cglRecipe) Properties(platform cl.PlatformID, src Source) ([]cl.ContextProperty, error) {
	group := src.NativeHandle(glctx.ContextCGLShareGroup)
	if group == 0 {
		logger().Warn("failed to get the CGL share group of the current GL context")
	}
	return []cl.ContextProperty{
		{Key: cl.CGLShareGroupApple, Value: group},
	}, nil
}
