// FILE: lixenwraith/cliconf/cmd/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/cliconf"
	"github.com/lixenwraith/cliconf/cli"
)

// ledgerd demo: resolves the command line, prints the resolved Args as TOML
// followed by the source of every value.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	values, err := cli.NewBuilder().WithLogger(logger).Build()
	if err != nil {
		cliconf.Exit(err)
	}

	args := cli.FromValues(values)
	if err := toml.NewEncoder(os.Stdout).Encode(args); err != nil {
		logger.Error("Failed to encode resolved configuration", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("# sources")
	fmt.Print(values.Debug())
}
