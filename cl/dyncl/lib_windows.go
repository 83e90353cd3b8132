package dyncl

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func openLibrary() (uintptr, error) {
	// System32 only: OpenCL.dll is the Khronos ICD loader shipped with
	// the GPU driver, never something to pick up from the working
	// directory.
	lib, err := windows.LoadLibraryEx("OpenCL.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return 0, fmt.Errorf("LoadLibraryEx: %v", err)
	}
	return uintptr(lib), nil
}
