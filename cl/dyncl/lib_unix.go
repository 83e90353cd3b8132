//go:build linux || freebsd

package dyncl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// The ICD loader is the usual install; a vendor library linked directly
// as libOpenCL.so works the same way.
var libraryNames = []string{"libOpenCL.so.1", "libOpenCL.so"}

func openLibrary() (uintptr, error) {
	var lastErr error
	for _, name := range libraryNames {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return lib, nil
		}
		lastErr = err
	}
	return 0, fmt.Errorf("dlopen: %v", lastErr)
}
