package cmd

import "runtime/debug"

// version is overridden at link time: -ldflags "-X github.com/dmoj-submit/dmoj-submit/cmd.version=v1.2.3"
var version string

func buildVersion() string {
	if version != "" {
		return version
	}
	// installed by go install: use the module version
	inf, ok := debug.ReadBuildInfo()
	if !ok || inf.Main.Version == "" {
		return "unable to get version"
	}
	return inf.Main.Version
}
