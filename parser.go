// FILE: lixenwraith/cliconf/parser.go
package cliconf

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// binding ties a declaration to the flag or positional slot that receives its value
type binding[D any] struct {
	decl Decl[D]
	val  value
	flag *pflag.Flag // nil for positionals
}

// extract returns the raw payload of a binding and whether the command line supplied it
func (b binding[D]) extract() (any, bool) {
	if b.flag != nil {
		if !b.flag.Changed {
			return nil, false
		}
		if b.decl.kind() == UsageFlag {
			// presence is the payload, the value is ignored
			return true, true
		}
		return b.val.get(), true
	}
	if !b.val.isSet() {
		return nil, false
	}
	return b.val.get(), true
}

// invocation is the per-parse state: a fresh cobra tree and its bindings
type invocation[D any] struct {
	schema  *Schema[D]
	root    *cobra.Command
	globals []binding[D]
	scoped  map[*cobra.Command][]binding[D]
	nodes   map[*cobra.Command]*Command[D]
	matched *cobra.Command
	output  bytes.Buffer
}

// Parse matches argv (program name first) against the schema.
// Grammar failures, help and version requests are returned as *SyntaxError.
func (s *Schema[D]) Parse(argv []string) (*Raw, error) {
	inv, err := s.newInvocation()
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(argv))
	if len(argv) > 1 {
		args = append(args, argv[1:]...)
	}
	inv.root.SetArgs(args)

	cmd, execErr := inv.root.ExecuteC()
	if execErr != nil {
		path := s.Name
		if cmd != nil {
			path = cmd.CommandPath()
		}
		return nil, &SyntaxError{
			Kind:   SyntaxUsage,
			Output: fmt.Sprintf("Error: %v\nRun '%s --help' for usage.\n", execErr, path),
			Err:    execErr,
		}
	}

	if inv.matched == nil {
		// Nothing ran: cobra answered --help, the help command or --version
		kind := SyntaxHelp
		if cmd == inv.root {
			if fl := inv.root.Flags().Lookup("version"); fl != nil && fl.Changed {
				kind = SyntaxVersion
			}
		}
		return nil, &SyntaxError{Kind: kind, Output: inv.output.String()}
	}

	return inv.collect(), nil
}

// newInvocation builds the cobra tree for one parse
func (s *Schema[D]) newInvocation() (*invocation[D], error) {
	inv := &invocation[D]{
		schema: s,
		scoped: make(map[*cobra.Command][]binding[D]),
		nodes:  make(map[*cobra.Command]*Command[D]),
	}

	inv.root = &cobra.Command{
		Use:           s.Name,
		Short:         s.About,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          inv.run,
	}
	inv.root.CompletionOptions.DisableDefaultCmd = true
	if s.Version != nil {
		inv.root.Version = s.Version()
		inv.root.SetVersionTemplate("{{.Version}}\n")
	}
	inv.root.SetOut(&inv.output)
	inv.root.SetErr(&inv.output)

	for _, f := range s.Fields {
		b, err := bindFlag(inv.root.PersistentFlags(), f)
		if err != nil {
			return nil, err
		}
		inv.globals = append(inv.globals, b)
	}

	if err := inv.addCommands(inv.root, s.Commands); err != nil {
		return nil, err
	}
	return inv, nil
}

func (inv *invocation[D]) addCommands(parent *cobra.Command, cmds []*Command[D]) error {
	for _, c := range cmds {
		cc := &cobra.Command{
			Use:   c.use(),
			Short: c.About,
			RunE:  inv.run,
		}
		inv.nodes[cc] = c

		for _, a := range c.flagArgs() {
			b, err := bindFlag(cc.PersistentFlags(), a)
			if err != nil {
				return err
			}
			inv.scoped[cc] = append(inv.scoped[cc], b)
		}

		positionals := c.positionals()
		if len(positionals) == 0 {
			cc.Args = cobra.NoArgs
		} else {
			var slots []binding[D]
			for _, a := range positionals {
				slots = append(slots, binding[D]{decl: a, val: a.newValue()})
			}
			inv.scoped[cc] = append(inv.scoped[cc], slots...)
			cc.Args = positionalArgs(slots)
		}

		parent.AddCommand(cc)
		if err := inv.addCommands(cc, c.Commands); err != nil {
			return err
		}
	}
	return nil
}

// bindFlag registers a typed flag for decl on fs
func bindFlag[D any](fs *pflag.FlagSet, decl Decl[D]) (binding[D], error) {
	spec, err := decl.flag()
	if err != nil {
		return binding[D]{}, fmt.Errorf("field %s: %w", decl.key(), err)
	}
	v := decl.newValue()
	fl := fs.VarPF(v, spec.name, spec.short, spec.help)
	if v.isBool() {
		fl.NoOptDefVal = "true"
	}
	fl.DefValue = decl.defaultText()
	return binding[D]{decl: decl, val: v, flag: fl}, nil
}

// positionalArgs validates the positional count and decodes each slot
func positionalArgs[D any](slots []binding[D]) cobra.PositionalArgs {
	required := 0
	maxArgs := len(slots)
	for _, s := range slots {
		_, req, variadic := s.decl.positional()
		if req {
			required++
		}
		if variadic {
			maxArgs = -1
		}
	}

	return func(cmd *cobra.Command, args []string) error {
		if len(args) < required {
			return fmt.Errorf("requires at least %d arg(s), only received %d", required, len(args))
		}
		if maxArgs >= 0 && len(args) > maxArgs {
			return fmt.Errorf("accepts at most %d arg(s), received %d", maxArgs, len(args))
		}
		for i, s := range slots {
			if i >= len(args) {
				break
			}
			tokens := args[i : i+1]
			if _, _, variadic := s.decl.positional(); variadic {
				tokens = args[i:]
			}
			if err := s.val.setAll(tokens); err != nil {
				return err
			}
		}
		return nil
	}
}

func (inv *invocation[D]) run(cmd *cobra.Command, _ []string) error {
	inv.matched = cmd
	return nil
}

// collect walks the matched path and extracts values only from nodes on it
func (inv *invocation[D]) collect() *Raw {
	raw := newRaw()

	walkCommands(inv.schema.Commands, 0, func(c *Command[D], _ int) {
		raw.commands[c.Key] = false
	})

	for _, b := range inv.globals {
		if v, ok := b.extract(); ok {
			raw.values[b.decl.key()] = v
		}
	}

	for cmd := inv.matched; cmd != nil && cmd != inv.root; cmd = cmd.Parent() {
		node, ok := inv.nodes[cmd]
		if !ok {
			continue
		}
		raw.commands[node.Key] = true
		for _, b := range inv.scoped[cmd] {
			if v, ok := b.extract(); ok {
				raw.values[b.decl.key()] = v
			}
		}
	}
	return raw
}
