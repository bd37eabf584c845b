// Package buildinfo holds version information stamped in at build time:
//
//	go build -ldflags "-X github.com/alphapapa/graph.el/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/alphapapa/graph.el/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/alphapapa/graph.el/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/graphel
package buildinfo

import "fmt"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the git revision.
	Commit = "none"
	// Date is the UTC build time.
	Date = "unknown"
)

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

// CacheScope returns the cache key prefix for this build. Development builds
// include the commit so that layout changes between commits are not masked by
// stale entries.
func CacheScope() string {
	if Version == "dev" {
		return fmt.Sprintf("dev-%s:", Commit)
	}
	return Version + ":"
}
