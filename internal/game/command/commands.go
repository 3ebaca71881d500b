// Package command defines the reserved words a player can type at any prompt.
package command

// Categories for organizing commands.
const (
	// CategoryControl commands change the session's lifecycle and are handled by the engine.
	CategoryControl = "control"
	// CategoryInfo commands only display state and are handled by the frontend.
	CategoryInfo = "info"
)

// Handler identifiers.
const (
	HandlerExit    = "exit"
	HandlerSave    = "save"
	HandlerRestart = "restart"
	HandlerItems   = "items"
	HandlerMap     = "map"
	HandlerHelp    = "help"
)

// Command defines a reserved player input.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category is CategoryControl or CategoryInfo.
	Category string
	// Handler identifies what acts on the command.
	Handler string
}

// IsControl reports whether the command is handled by the engine.
func (c *Command) IsControl() bool {
	return c.Category == CategoryControl
}

// BuiltinCommands returns all reserved commands.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "exit", Aliases: []string{"quit"}, Help: "Leave the dungeon, optionally saving first", Category: CategoryControl, Handler: HandlerExit},
		{Name: "save", Help: "Save your progress to the active slot", Category: CategoryControl, Handler: HandlerSave},
		{Name: "restart", Help: "Abandon this run and start over", Category: CategoryControl, Handler: HandlerRestart},

		{Name: "items", Aliases: []string{"inventory", "i"}, Help: "List what you are carrying", Category: CategoryInfo, Handler: HandlerItems},
		{Name: "map", Help: "Show where you are", Category: CategoryInfo, Handler: HandlerMap},
		{Name: "help", Aliases: []string{"?"}, Help: "Show the rules and reserved words", Category: CategoryInfo, Handler: HandlerHelp},
	}
}
