package commands

import (
	"fmt"
	"sort"
)

// Registry maps command names and aliases to commands.
// Commands are registered from init(), before main runs, so it has no locking.
type Registry struct {
	cmds map[string]Command // name and aliases map to command
	def  Command            // runs when no command name is given
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command under its name and aliases.
// Returns an error if any of them is already taken.
func (r *Registry) Register(c Command) error {
	keys := append([]string{c.Name()}, c.Aliases()...)
	for i, key := range keys {
		if _, exists := r.cmds[key]; exists {
			if i == 0 {
				return fmt.Errorf("command already registered: %s", key)
			}
			return fmt.Errorf("command alias already registered: %s", key)
		}
	}

	for _, key := range keys {
		r.cmds[key] = c
	}
	return nil
}

// SetDefault registers c and makes it the command run with no arguments.
// Only one default is allowed.
func (r *Registry) SetDefault(c Command) error {
	if r.def != nil {
		return fmt.Errorf("default command already set: %s", r.def.Name())
	}
	if err := r.Register(c); err != nil {
		return err
	}
	r.def = c
	return nil
}

// Default returns the command to run when none is named.
func (r *Registry) Default() (Command, bool) {
	return r.def, r.def != nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns each command once, sorted by name, for help output.
func (r *Registry) All() []Command {
	seen := make(map[string]Command, len(r.cmds))
	for _, cmd := range r.cmds {
		seen[cmd.Name()] = cmd
	}

	result := make([]Command, 0, len(seen))
	for _, cmd := range seen {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}

// RegisterDefault adds c to the default registry as the no-argument command.
func RegisterDefault(c Command) {
	if err := DefaultRegistry.SetDefault(c); err != nil {
		panic(err)
	}
}
