package clgl

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gogpu/clgl/cl"
)

// vendorClass classifies a GL driver vendor string.
type vendorClass int

const (
	vendorUnknown vendorClass = iota
	vendorNVIDIA
	vendorIntel
	vendorAMD
)

// platformSubstring is the substring looked for in platform names per
// vendor class (e.g. "NVIDIA CUDA", "Intel(R) OpenCL", "AMD Accelerated
// Parallel Processing").
var platformSubstring = map[vendorClass]string{
	vendorNVIDIA: "NVIDIA",
	vendorIntel:  "Intel",
	vendorAMD:    "AMD",
}

// classifyVendor maps a GL_VENDOR string to a vendor class by
// case-sensitive substring containment, in priority order. AMD drivers
// historically report "ATI Technologies Inc.", so both spellings match.
// An empty or unmatched string classifies as unknown.
func classifyVendor(vendor string) vendorClass {
	switch {
	case vendor == "":
		return vendorUnknown
	case strings.Contains(vendor, "NVIDIA"):
		return vendorNVIDIA
	case strings.Contains(vendor, "Intel"):
		return vendorIntel
	case strings.Contains(vendor, "AMD"), strings.Contains(vendor, "ATI"):
		return vendorAMD
	default:
		return vendorUnknown
	}
}

// selectPlatform picks the OpenCL platform matching the GL driver.
//
// The first enumerated platform is the default. When the GL vendor
// classifies to a known vendor, every platform whose name contains that
// vendor's substring overrides the selection; the scan does not stop at
// the first match, so with several platforms of the same vendor the
// last enumerated one is kept. An unknown or empty vendor keeps the
// default unconditionally.
func (cc *ComputeContext) selectPlatform() (cl.PlatformID, error) {
	log := Logger()

	platforms, err := cc.rt.GetPlatformIDs()
	if err != nil {
		log.Warn("failed to enumerate OpenCL platforms", "err", err)
		if code, ok := cl.Code(err); ok && code == cl.PlatformNotFoundKHR {
			hint := "could not find OpenCL implementation; ICD missing?"
			if runtime.GOOS == "linux" {
				hint += " Check /etc/OpenCL/vendors."
			}
			log.Warn(hint)
		}
		return 0, fmt.Errorf("%w: %w", ErrNoPlatform, err)
	}
	if len(platforms) == 0 {
		log.Warn("no OpenCL platform found")
		return 0, ErrNoPlatform
	}

	selected := platforms[0]
	vendor := cc.gfx.VendorString()
	log.Debug("GL_VENDOR", "vendor", vendor)
	match := platformSubstring[classifyVendor(vendor)]

	log.Debug("found OpenCL platforms", "count", len(platforms))
	for _, p := range platforms {
		name, err := cc.rt.GetPlatformInfo(p, cl.PlatformName)
		if err != nil {
			log.Warn("failed to query platform name", "platform", uintptr(p), "err", err)
			continue
		}
		log.Debug("platform", "id", uintptr(p), "name", name)
		if match != "" && strings.Contains(name, match) {
			selected = p
		}
	}

	log.Debug("using platform", "platform", uintptr(selected))
	return selected, nil
}
