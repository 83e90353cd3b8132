package dyncl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

const frameworkPath = "/System/Library/Frameworks/OpenCL.framework/OpenCL"

func openLibrary() (uintptr, error) {
	lib, err := purego.Dlopen(frameworkPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("dlopen: %v", err)
	}
	return lib, nil
}
