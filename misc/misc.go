// Package misc keeps build identification used in logs, reports and the
// --version output. Values are stamped at link time, with a best effort
// fallback to whatever the Go toolchain recorded in the binary.
package misc

import "runtime/debug"

var (
	appName = "codicon-inspector"
	version = "development"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	if version != "development" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
