// Package version carries build metadata, set at link time with
// -ldflags "-X github.com/harlequix/hamenc/version.Version=...".
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
	OsArch    = fmt.Sprintf("%s / %s", runtime.GOOS, runtime.GOARCH)
)
