// FILE: lixenwraith/cliconf/kind.go
package cliconf

// Kind classifies a declared value by the way it is merged across sources
type Kind int

const (
	// Plain values are copied from the command line; absent means the type's zero value
	Plain Kind = iota
	// Defaulted values resolve CLI, then config document, then compiled default
	Defaulted
	// OptionalPassthrough values resolve CLI, then config document, else remain absent
	OptionalPassthrough
	// CommandFlag reports whether a root command was selected
	CommandFlag
	// SubCommandFlag reports whether a nested command was selected
	SubCommandFlag
	// ScopedArgument values exist only inside their owning command's namespace
	ScopedArgument
	// UsageDefaulted is Defaulted with the flag surface declared by a usage string
	UsageDefaulted
	// UsageFlag is a boolean resolved as CLI presence OR config OR default
	UsageFlag
)

// String returns the kind name used in diagnostics
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Defaulted:
		return "defaulted"
	case OptionalPassthrough:
		return "optional"
	case CommandFlag:
		return "command"
	case SubCommandFlag:
		return "subcommand"
	case ScopedArgument:
		return "scoped"
	case UsageDefaulted:
		return "usage-defaulted"
	case UsageFlag:
		return "usage-flag"
	default:
		return "unknown"
	}
}

// Source identifies where a resolved value came from
type Source string

const (
	// SourceDefault marks a compiled default or a type zero value
	SourceDefault Source = "default"
	// SourceFile marks a value taken from the config document
	SourceFile Source = "file"
	// SourceCLI marks a value taken from the command line
	SourceCLI Source = "cli"
)
