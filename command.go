// FILE: lixenwraith/cliconf/command.go
package cliconf

import (
	"strings"
)

// Command is a node of the command tree. Its selection is reported as a
// CommandFlag (root level) or SubCommandFlag (nested) under Key.
type Command[D any] struct {
	Key   string
	Name  string
	About string

	// Args are scoped arguments, only populated while this command is on the matched path
	Args []Decl[D]

	Commands []*Command[D]
}

// walk visits every command depth-first, parents before children
func walkCommands[D any](cmds []*Command[D], depth int, fn func(c *Command[D], depth int)) {
	for _, c := range cmds {
		fn(c, depth)
		walkCommands(c.Commands, depth+1, fn)
	}
}

// commandKind reports the flag kind of a command at the given depth
func commandKind(depth int) Kind {
	if depth == 0 {
		return CommandFlag
	}
	return SubCommandFlag
}

// use renders the cobra Use line: name followed by positional placeholders
func (c *Command[D]) use() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, a := range c.positionals() {
		spec, _ := a.flag()
		_, required, variadic := a.positional()
		placeholder := strings.ToUpper(spec.name)
		if variadic {
			placeholder += "..."
		}
		if required {
			b.WriteString(" <" + placeholder + ">")
		} else {
			b.WriteString(" [" + placeholder + "]")
		}
	}
	return b.String()
}

// positionals returns the positional scoped arguments ordered by index
func (c *Command[D]) positionals() []Decl[D] {
	var out []Decl[D]
	for i := 1; ; i++ {
		found := false
		for _, a := range c.Args {
			if idx, _, _ := a.positional(); idx == i {
				out = append(out, a)
				found = true
				break
			}
		}
		if !found {
			return out
		}
	}
}

// flagArgs returns the scoped arguments exposed as flags
func (c *Command[D]) flagArgs() []Decl[D] {
	var out []Decl[D]
	for _, a := range c.Args {
		if idx, _, _ := a.positional(); idx == 0 {
			out = append(out, a)
		}
	}
	return out
}
