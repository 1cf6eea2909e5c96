package main

import (
	"os"

	"github.com/akbaralfaidah/sentimen-splitbill/cmd"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/version"
)

// Set with -ldflags "-X main.buildVersion=..."
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func init() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
