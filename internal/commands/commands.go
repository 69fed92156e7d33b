// Package commands dispatches a command line to named subcommands, each with its own flags.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"sort"
)

// ErrUsage is returned when no subcommand is given or the name is not registered.
var ErrUsage = errors.New("usage")

// Command is a subcommand with its own flags and a Run function.
// Run is called after the FlagSet has parsed and receives the remaining positional arguments.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after
// fs.Parse succeeds.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func(args []string) error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered subcommand names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the subcommand registered under name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	c, ok := r.cmds[name]
	return c, ok
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing subcommand", ErrUsage)
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run(cmd.FlagSet.Args())
}
