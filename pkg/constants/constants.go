package constants

// CLIName is the binary name used in user-facing output
const CLIName = "clash-lint"

// ConfigExtensions lists the file extensions treated as Clash
// configuration files by file discovery and watch mode.
var ConfigExtensions = []string{".yaml", ".yml"}
