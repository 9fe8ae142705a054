// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryCare   = "care"
	CategoryGear   = "gear"
	CategorySystem = "system"
)

// Handler identifiers mapping commands to session operations or local handlers.
const (
	HandlerFeed   = "feed"
	HandlerPlay   = "play"
	HandlerSleep  = "sleep"
	HandlerWait   = "wait"
	HandlerEquip  = "equip"
	HandlerStatus = "status"
	HandlerHelp   = "help"
	HandlerQuit   = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (care, gear, system).
	Category string
	// Handler maps to the session operation or local handler.
	Handler string
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Care commands
		{Name: "feed", Aliases: []string{"f"}, Help: "Feed your pet", Category: CategoryCare, Handler: HandlerFeed},
		{Name: "play", Aliases: []string{"p"}, Help: "Play with your pet", Category: CategoryCare, Handler: HandlerPlay},
		{Name: "sleep", Aliases: []string{"z", "nap"}, Help: "Put your pet to bed", Category: CategoryCare, Handler: HandlerSleep},
		{Name: "wait", Aliases: []string{"w", "pass"}, Help: "Let the turn pass with no action", Category: CategoryCare, Handler: HandlerWait},

		// Gear commands
		{Name: "equip", Aliases: []string{"eq"}, Help: "Equip gear (equip <armor|amulet>)", Category: CategoryGear, Handler: HandlerEquip},

		// System commands
		{Name: "status", Aliases: []string{"st"}, Help: "Show your pet's status", Category: CategorySystem, Handler: HandlerStatus},
		{Name: "help", Aliases: []string{"h", "?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"q", "exit"}, Help: "Leave the game", Category: CategorySystem, Handler: HandlerQuit},
	}
}
