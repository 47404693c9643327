package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build metadata, overridable via -ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = ""
)

func printVersion() {
	fmt.Printf("tagform %s", Version)
	if Build != "unknown" && Build != "" {
		fmt.Printf(" (%s)", Build)
	}
	if BuildTime != "" {
		fmt.Printf(" built %s", BuildTime)
	}
	fmt.Println()

	fmt.Printf("%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	// Development builds report the VCS revision when the build info has it.
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
					fmt.Printf("commit %s\n", setting.Value[:7])
					break
				}
			}
		}
	}
}
