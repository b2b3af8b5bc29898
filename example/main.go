// FILE: lixenwraith/cliconf/example/main.go
package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/cliconf"
	"github.com/lixenwraith/cliconf/cli"
)

func ptr[T any](v T) *T { return &v }

func main() {
	dir, err := os.MkdirTemp("", "ledgerd-example")
	if err != nil {
		log.Fatalf("Failed to create working directory: %v", err)
	}
	defer os.RemoveAll(dir)

	// PART 1: write a config file into the base directory
	log.Println("---")
	log.Println("PART 1: Writing config file...")
	doc := &cli.Document{
		Network: &cli.Network{Port: ptr[uint16](30305), Warp: ptr(false)},
		Misc:    &cli.Misc{Logging: ptr("sync=trace")},
	}
	configPath := filepath.Join(dir, "config.toml")
	if err := cliconf.SaveDocument(configPath, doc); err != nil {
		log.Fatalf("Failed to save config: %v", err)
	}
	log.Printf("Saved %s", configPath)

	// PART 2: the default $BASE/config.toml now resolves to that file
	log.Println("---")
	log.Println("PART 2: Resolving with the default config location...")
	args, err := cli.ParseWith(cli.NewBuilder().
		WithArgs([]string{cli.ProgramName, "--port", "30310", "account", "import", "a.json", "b.json"}).
		WithBaseDir(dir))
	if err != nil {
		log.Fatalf("Resolution failed: %v", err)
	}
	log.Printf("port=%d (command line wins over the file)", args.Port)
	log.Printf("logging=%s (from the file)", *args.Logging)
	log.Printf("no_warp=%t (warp = false in the file)", args.NoWarp)
	log.Printf("account import paths=%v", args.AccountImportPath)

	// PART 3: --no-config ignores the file even though it exists
	log.Println("---")
	log.Println("PART 3: Resolving with --no-config...")
	args, err = cli.ParseWith(cli.NewBuilder().
		WithArgs([]string{cli.ProgramName, "--no-config"}).
		WithBaseDir(dir))
	if err != nil {
		log.Fatalf("Resolution failed: %v", err)
	}
	log.Printf("port=%d (compiled default)", args.Port)

	// PART 4: an explicit missing file is fatal, unlike the default location
	log.Println("---")
	log.Println("PART 4: Requesting a missing config file...")
	_, err = cli.ParseWith(cli.NewBuilder().
		WithArgs([]string{cli.ProgramName, "--config", filepath.Join(dir, "missing.toml")}).
		WithBaseDir(dir))
	if errors.Is(err, cliconf.ErrConfigIO) {
		log.Println("Got the expected config read error:")
		cliconf.Render(err, os.Stdout, os.Stderr)
	} else {
		log.Fatalf("Expected a config read error, got %v", err)
	}
}
