// FILE: lixenwraith/cliconf/errors.go
package cliconf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Resolution errors
var (
	// ErrSyntax indicates the command line did not match the declared grammar,
	// or help or version output was requested.
	ErrSyntax = errors.New("command line syntax error")

	// ErrDecode indicates a config file was read but could not be deserialized.
	ErrDecode = errors.New("config file decode error")

	// ErrConfigIO indicates an explicitly requested config file could not be read.
	ErrConfigIO = errors.New("config file read error")
)

// Exit statuses used by Render
const (
	ExitOK     = 0
	ExitSyntax = 1
	ExitConfig = 2
)

// SyntaxKind distinguishes help and version requests from real usage errors
type SyntaxKind int

const (
	SyntaxUsage SyntaxKind = iota
	SyntaxHelp
	SyntaxVersion
)

// SyntaxError carries the grammar engine's formatted output.
type SyntaxError struct {
	Kind   SyntaxKind
	Output string // Text to print: help, version, or the error with a usage hint
	Err    error  // Underlying grammar error, nil for help and version
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case SyntaxHelp:
		return "help requested"
	case SyntaxVersion:
		return "version requested"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return strings.TrimSpace(e.Output)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// DecodeError wraps a deserializer failure for the config file at Path.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode config file '%s': %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ConfigError wraps an I/O failure on an explicitly requested config file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("failed to read config file '%s': %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigIO
}

// Render writes the diagnostic for err and returns the process exit status.
// Help and version output go to stdout with status 0.
func Render(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var syntaxErr *SyntaxError
	var decodeErr *DecodeError
	var configErr *ConfigError

	switch {
	case errors.As(err, &syntaxErr):
		if syntaxErr.Kind == SyntaxHelp || syntaxErr.Kind == SyntaxVersion {
			fmt.Fprint(stdout, syntaxErr.Output)
			return ExitOK
		}
		fmt.Fprint(stderr, syntaxErr.Output)
		return ExitSyntax

	case errors.As(err, &decodeErr):
		fmt.Fprintln(stderr, "You might have supplied invalid parameters in config file.")
		fmt.Fprintln(stderr, decodeErr.Err)
		return ExitConfig

	case errors.As(err, &configErr):
		fmt.Fprintf(stderr, "There was an error reading your config file at: %s\n", configErr.Path)
		fmt.Fprintln(stderr, configErr.Err)
		return ExitConfig

	default:
		fmt.Fprintln(stderr, err)
		return ExitSyntax
	}
}

// Exit renders err and terminates the process. It is the only function
// in this package that ends the process.
func Exit(err error) {
	os.Exit(Render(err, os.Stdout, os.Stderr))
}
