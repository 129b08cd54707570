// Package buildinfo reports diagnostics about the running binary. Everything
// comes from process-embedded constants; collection never fails and performs
// no I/O.
package buildinfo

import (
	"runtime"
	"runtime/debug"
)

// Overridden at release time via -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = ""
)

// Collect returns a flat key/value view of the build. Keys are stable so
// output diffs cleanly between versions.
func Collect() map[string]string {
	info := map[string]string{
		"build_version": Version,
		"build_commit":  Commit,
		"build_os":      runtime.GOOS,
		"build_arch":    runtime.GOARCH,
		"go_version":    runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info["build_commit"] == "" {
					info["build_commit"] = setting.Value
				}
			case "vcs.time":
				info["build_time"] = setting.Value
			case "vcs.modified":
				info["build_dirty"] = setting.Value
			}
		}
	}
	return info
}
