// FILE: lixenwraith/cliconf/cli/version.go
package cli

import (
	_ "embed"
	"fmt"
	"os"
	"runtime"
	"strings"
)

//go:embed version.txt
var versionTemplate string

// Build identifiers, overridden with -ldflags "-X github.com/lixenwraith/cliconf/cli.Version=..."
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
)

// VersionID returns the compact build identifier, e.g. ledgerd/v0.1.0-dev-unknown/linux/go1.24.5
func VersionID() string {
	return fmt.Sprintf("%s/v%s-%s/%s/%s", ProgramName, Version, Commit, runtime.GOOS, runtime.Version())
}

// VersionString formats the version banner. It is pure and usable before any parsing.
func VersionString() string {
	return strings.TrimRight(fmt.Sprintf(versionTemplate, VersionID()), "\n")
}

// PrintVersion writes the version banner to stdout
func PrintVersion() {
	fmt.Fprintln(os.Stdout, VersionString())
}
