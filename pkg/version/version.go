// Package version reports the build version, from ldflags or VCS metadata.
package version

import "runtime/debug"

// Version is set via ldflags at release time.
var Version string

// Get returns the release version if set, otherwise the VCS revision.
func Get() string {
	if Version != "" {
		return Version
	}

	return revision()
}

func revision() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	dirty := false

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}

		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if dirty {
		rev += "-dirty"
	}

	return rev
}
