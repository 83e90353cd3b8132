// Command clinfo lists the OpenCL platforms and devices visible to the
// installed implementation, the view clgl negotiates against.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/clgl"
	"github.com/gogpu/clgl/cl"
	"github.com/gogpu/clgl/cl/dyncl"
)

func main() {
	var (
		extensions = flag.Bool("extensions", false, "print device extension lists")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		clgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rt, err := dyncl.New()
	if err != nil {
		log.Fatalf("Failed to load OpenCL: %v", err)
	}

	platforms, err := rt.GetPlatformIDs()
	if err != nil {
		log.Fatalf("Failed to enumerate platforms: %v", err)
	}
	if len(platforms) == 0 {
		fmt.Println("No OpenCL platforms found")
		return
	}

	for i, p := range platforms {
		name, err := rt.GetPlatformInfo(p, cl.PlatformName)
		if err != nil {
			name = fmt.Sprintf("<unreadable: %v>", err)
		}
		version, err := rt.GetPlatformInfo(p, cl.PlatformVersion)
		if err != nil {
			version = "unknown version"
		}
		fmt.Printf("Platform %d: %s (%s)\n", i, name, version)

		listDevices(rt, p, *extensions)
	}
}

func listDevices(rt *dyncl.Runtime, p cl.PlatformID, extensions bool) {
	devices, err := rt.GetDeviceIDs(p, cl.DeviceTypeAll)
	if err != nil {
		fmt.Printf("  device enumeration failed: %v\n", err)
		return
	}
	for j, d := range devices {
		name, err := rt.GetDeviceInfo(d, cl.DeviceName)
		if err != nil {
			name = fmt.Sprintf("<unreadable: %v>", err)
		}
		version, err := rt.GetDeviceInfo(d, cl.DeviceVersion)
		if err != nil {
			version = "unknown version"
		}
		fmt.Printf("  Device %d: %s (%s)\n", j, name, version)

		if !extensions {
			continue
		}
		exts, err := rt.GetDeviceInfo(d, cl.DeviceExtensions)
		if err != nil {
			fmt.Printf("    extensions unavailable: %v\n", err)
			continue
		}
		for _, ext := range strings.Fields(exts) {
			fmt.Printf("    %s\n", ext)
		}
	}
}
