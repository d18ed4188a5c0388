package version

import (
	"os"
	"runtime/debug"
)

// Version returns the short commit the binary was built from: COMMIT_SHA if
// set, otherwise the VCS revision stamped by the toolchain, otherwise
// "unknown".
func Version() string {
	version, ok := os.LookupEnv("COMMIT_SHA")
	if !ok {
		version = buildRevision()
	}
	if len(version) > 7 {
		version = version[:7]
	}
	return version
}

func buildRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return "unknown"
}
