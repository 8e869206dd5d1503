// Package buildinfo holds values injected with -ldflags at build time.
// It has no imports so that any package can depend on it.
package buildinfo

// Updated by linker flags during build, e.g.
//
//	-X github.com/zbiljic/aitools/internal/buildinfo.Version=1.2.3
var (
	Version   string = "0.0.0"
	GitCommit string
	BuildDate string
	BuiltBy   string
)
