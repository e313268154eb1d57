// Package buildinfo holds the version stamped into roguegrid binaries.
//
//	go build -ldflags "-X github.com/matzehuels/roguegrid/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/roguegrid/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

// Set by the linker.
var (
	Version = "dev"
	Commit  = "none"
)

// Fields returns the build stamp as reported by the HTTP health check.
func Fields() map[string]string {
	return map[string]string{"version": Version, "commit": Commit}
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s)\n", Version, Commit)
}
