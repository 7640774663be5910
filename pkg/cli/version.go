package cli

// version is set by the main package at startup
var version = "dev"

// SetVersionInfo records the build version for user-facing output
func SetVersionInfo(v string) {
	if v != "" {
		version = v
	}
}

// Version returns the recorded build version
func Version() string {
	return version
}
