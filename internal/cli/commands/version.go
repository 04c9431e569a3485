package commands

// Version is set via ldflags at build time.
var Version = "1.0"

const versionTemplate = "grep version {{.Version}}\n"
