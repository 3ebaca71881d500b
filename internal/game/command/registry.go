package command

import (
	"fmt"
	"sort"
)

// Registry maps command names and aliases to Command definitions.
type Registry struct {
	commands map[string]*Command // canonical name → command
	aliases  map[string]string   // alias → canonical name
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a canonical name or alias.
// Postcondition: Returns a Registry or an error on name/alias collisions.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string),
	}
	for i := range cmds {
		cmd := &cmds[i]
		if err := r.claim(cmd.Name, cmd.Name); err != nil {
			return nil, err
		}
		r.commands[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			if err := r.claim(alias, cmd.Name); err != nil {
				return nil, err
			}
			r.aliases[alias] = cmd.Name
		}
	}
	return r, nil
}

func (r *Registry) claim(word, owner string) error {
	if _, exists := r.commands[word]; exists {
		return fmt.Errorf("command: %q used by %q is already a command name", word, owner)
	}
	if existing, exists := r.aliases[word]; exists {
		return fmt.Errorf("command: %q used by %q is already an alias of %q", word, owner, existing)
	}
	return nil
}

// DefaultRegistry creates a Registry with all built-in commands.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by its normalized name or alias.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Command, bool) {
	word := Normalize(input)
	if cmd, ok := r.commands[word]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[word]; ok {
		return r.commands[canonical], true
	}
	return nil, false
}

// IsReserved reports whether input names any command.
func (r *Registry) IsReserved(input string) bool {
	_, ok := r.Resolve(input)
	return ok
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// CommandsByCategory returns commands grouped by category.
func (r *Registry) CommandsByCategory() map[string][]*Command {
	categories := make(map[string][]*Command)
	for _, cmd := range r.Commands() {
		categories[cmd.Category] = append(categories[cmd.Category], cmd)
	}
	return categories
}
