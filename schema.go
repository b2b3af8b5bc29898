// FILE: lixenwraith/cliconf/schema.go
package cliconf

import (
	"fmt"
	"sort"
	"strings"
)

// Schema is the static declaration of a program's configurable surface:
// global fields, the command tree, and the fields that locate the config file.
type Schema[D any] struct {
	// Name is the program name used in help output and for the default data directory
	Name  string
	About string

	// Version produces the version string printed by --version
	Version func() string

	Fields   []Decl[D]
	Commands []*Command[D]

	// ConfigPath locates the config file; its default may contain $BASE or $HOME markers
	ConfigPath *Field[D, string]

	// NoConfig disables config file loading when it resolves to true
	NoConfig *Field[D, bool]
}

// Names that the grammar engine owns on every command
var reservedFlags = map[string]bool{"help": true, "version": true}
var reservedShorts = map[string]bool{"h": true, "v": true}
var reservedCommands = map[string]bool{"help": true, "completion": true}

// NewSchema validates the declaration and returns it ready for parsing.
// Any error is a defect in the declaration, not in user input.
func NewSchema[D any](s Schema[D]) (*Schema[D], error) {
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid schema %q: %w", s.Name, err)
	}
	return &s, nil
}

// MustSchema is like NewSchema but panics on an invalid declaration
func MustSchema[D any](s Schema[D]) *Schema[D] {
	schema, err := NewSchema(s)
	if err != nil {
		panic(err)
	}
	return schema
}

// Keys returns every field and command key in declaration order
func (s *Schema[D]) Keys() []string {
	var keys []string
	for _, f := range s.Fields {
		keys = append(keys, f.key())
	}
	walkCommands(s.Commands, 0, func(c *Command[D], _ int) {
		keys = append(keys, c.Key)
		for _, a := range c.Args {
			keys = append(keys, a.key())
		}
	})
	return keys
}

// flagScope tracks long and short flag names visible on one command
type flagScope struct {
	names  map[string]string
	shorts map[string]string
}

func newFlagScope() flagScope {
	return flagScope{names: make(map[string]string), shorts: make(map[string]string)}
}

func (fs flagScope) clone() flagScope {
	c := newFlagScope()
	for k, v := range fs.names {
		c.names[k] = v
	}
	for k, v := range fs.shorts {
		c.shorts[k] = v
	}
	return c
}

func (fs flagScope) add(key string, spec flagSpec) error {
	if reservedFlags[spec.name] {
		return fmt.Errorf("field %s: flag --%s is reserved", key, spec.name)
	}
	if owner, exists := fs.names[spec.name]; exists {
		return fmt.Errorf("field %s: flag --%s already declared by %s", key, spec.name, owner)
	}
	fs.names[spec.name] = key
	if spec.short != "" {
		if reservedShorts[spec.short] {
			return fmt.Errorf("field %s: short flag -%s is reserved", key, spec.short)
		}
		if owner, exists := fs.shorts[spec.short]; exists {
			return fmt.Errorf("field %s: short flag -%s already declared by %s", key, spec.short, owner)
		}
		fs.shorts[spec.short] = key
	}
	return nil
}

func (s *Schema[D]) validate() error {
	if s.Name == "" {
		return fmt.Errorf("schema has no program name")
	}

	var errs []string
	keys := make(map[string]string)
	claim := func(key, owner string) {
		if key == "" {
			errs = append(errs, fmt.Sprintf("%s has an empty key", owner))
			return
		}
		if prev, exists := keys[key]; exists {
			errs = append(errs, fmt.Sprintf("key %q declared by both %s and %s", key, prev, owner))
			return
		}
		keys[key] = owner
	}

	root := newFlagScope()
	fieldKinds := make(map[string]Kind)
	for _, f := range s.Fields {
		claim(f.key(), "field "+f.key())
		if err := f.validate(); err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if f.kind() == ScopedArgument {
			errs = append(errs, fmt.Sprintf("field %s: scoped arguments belong to a command", f.key()))
			continue
		}
		fieldKinds[f.key()] = f.kind()
		spec, _ := f.flag()
		if err := root.add(f.key(), spec); err != nil {
			errs = append(errs, err.Error())
		}
	}

	var checkCommands func(cmds []*Command[D], scope flagScope, path string)
	checkCommands = func(cmds []*Command[D], scope flagScope, path string) {
		siblings := make(map[string]bool)
		for _, c := range cmds {
			owner := "command " + strings.TrimSpace(path+" "+c.Name)
			claim(c.Key, owner)
			if c.Name == "" {
				errs = append(errs, fmt.Sprintf("command %s has no name", c.Key))
			}
			if reservedCommands[c.Name] {
				errs = append(errs, fmt.Sprintf("%s: name is reserved", owner))
			}
			if siblings[c.Name] {
				errs = append(errs, fmt.Sprintf("%s declared twice", owner))
			}
			siblings[c.Name] = true

			local := scope.clone()
			positions := make(map[int]bool)
			maxPos := 0
			for _, a := range c.Args {
				claim(a.key(), owner+" argument "+a.key())
				if err := a.validate(); err != nil {
					errs = append(errs, err.Error())
					continue
				}
				if a.kind() != ScopedArgument {
					errs = append(errs, fmt.Sprintf("%s: argument %s must be scoped, got %s", owner, a.key(), a.kind()))
					continue
				}
				idx, _, _ := a.positional()
				if idx == 0 {
					spec, _ := a.flag()
					if err := local.add(a.key(), spec); err != nil {
						errs = append(errs, err.Error())
					}
					continue
				}
				if positions[idx] {
					errs = append(errs, fmt.Sprintf("%s: position %d declared twice", owner, idx))
				}
				positions[idx] = true
				if idx > maxPos {
					maxPos = idx
				}
			}
			if len(positions) != maxPos {
				errs = append(errs, fmt.Sprintf("%s: positional arguments must be numbered 1..n without gaps", owner))
			} else if err := checkPositionals(c); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", owner, err))
			}
			if maxPos > 0 && len(c.Commands) > 0 {
				errs = append(errs, fmt.Sprintf("%s: commands with sub-commands cannot take positional arguments", owner))
			}

			checkCommands(c.Commands, local, strings.TrimSpace(path+" "+c.Name))
		}
	}
	checkCommands(s.Commands, root, "")

	if s.ConfigPath != nil {
		if kind, ok := fieldKinds[s.ConfigPath.Key]; !ok {
			errs = append(errs, fmt.Sprintf("config path field %s is not a global field", s.ConfigPath.Key))
		} else if kind == UsageFlag {
			errs = append(errs, fmt.Sprintf("config path field %s cannot be a usage flag", s.ConfigPath.Key))
		}
	}
	if s.NoConfig != nil {
		if _, ok := fieldKinds[s.NoConfig.Key]; !ok {
			errs = append(errs, fmt.Sprintf("no-config field %s is not a global field", s.NoConfig.Key))
		}
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("%d problem(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

// checkPositionals enforces that optional positionals follow required ones
// and that only the last positional is variadic
func checkPositionals[D any](c *Command[D]) error {
	pos := c.positionals()
	seenOptional := false
	for i, a := range pos {
		_, required, variadic := a.positional()
		if variadic && i != len(pos)-1 {
			return fmt.Errorf("only the last positional argument can be variadic")
		}
		if required && seenOptional {
			return fmt.Errorf("required positional %s follows an optional one", a.key())
		}
		if !required {
			seenOptional = true
		}
	}
	return nil
}
