// Package settings provides build metadata, runtime configuration, and
// context helpers used across the gridcol library packages.
package settings

// LibraryName is the canonical name of this module.
const LibraryName = "gridcol"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single embedding of the engine.
// It includes options for logging, color handling in rendered output, and
// whether cell construction validates input by default.
type Run struct {
	MinLogLevel       int8
	IsQuiet           bool
	NoColor           bool
	ValidateOnConvert bool
}

// NewEmbedParams initializes and returns a pointer to a Run struct with
// default parameters for an embedding host: logging level 0, colored
// output, and validation enabled during cell construction.
func NewEmbedParams() *Run {
	return &Run{
		MinLogLevel:       0,
		IsQuiet:           false,
		NoColor:           false,
		ValidateOnConvert: true,
	}
}
