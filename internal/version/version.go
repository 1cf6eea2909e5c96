// Package version describes the running build and the cache format it
// reads and writes.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
)

// Set from main at startup.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is what "sentimen version" reports.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit,omitempty"`
	Built       string `json:"built,omitempty"`
	Go          string `json:"go"`
	Platform    string `json:"platform"`
	CacheSchema int    `json:"cache_schema"`
}

// Current collects Info for this binary. Commit and build date are left
// empty for dev builds.
func Current() Info {
	info := Info{
		Version:     Version,
		Go:          runtime.Version(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		CacheSchema: dataset.SchemaVersion,
	}
	if Version != "dev" {
		info.Commit, info.Built = Commit, Date
	}
	return info
}

func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sentimen %s\n", i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&b, "  commit:       %s\n", i.Commit)
		fmt.Fprintf(&b, "  built:        %s\n", i.Built)
	}
	fmt.Fprintf(&b, "  go:           %s (%s)\n", i.Go, i.Platform)
	fmt.Fprintf(&b, "  cache schema: v%d\n", i.CacheSchema)
	return b.String()
}

// Short is the one-line title shown in the TUI.
func Short() string {
	return "Sentimen " + Version
}
