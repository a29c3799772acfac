// Package menu implements the interactive numbered menu over the catalog.
package menu

import "strconv"

// Command is one entry of the numbered menu.
type Command int

// Menu entries, numbered as they are shown.
const (
	CommandAdd Command = iota + 1
	CommandDelete
	CommandUpdateRating
	CommandStats
	CommandSearch
	CommandHistogram
	CommandRandom
	CommandSortedList
	CommandList
	CommandExit
)

// Commands lists every menu entry in display order.
var Commands = []Command{
	CommandAdd,
	CommandDelete,
	CommandUpdateRating,
	CommandStats,
	CommandSearch,
	CommandHistogram,
	CommandRandom,
	CommandSortedList,
	CommandList,
	CommandExit,
}

// String returns the label shown in the menu.
func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "Add a movie"
	case CommandDelete:
		return "Delete a movie"
	case CommandUpdateRating:
		return "Update movie rating"
	case CommandStats:
		return "Show statistics"
	case CommandSearch:
		return "Search for a movie"
	case CommandHistogram:
		return "Show movie ratings histogram"
	case CommandRandom:
		return "Pick a random movie"
	case CommandSortedList:
		return "List movies sorted by rating"
	case CommandList:
		return "List all movies"
	case CommandExit:
		return "Exit"
	default:
		return "Command(" + strconv.Itoa(int(c)) + ")"
	}
}

// Valid reports whether c is one of the menu entries.
func (c Command) Valid() bool {
	return c >= CommandAdd && c <= CommandExit
}

// ParseCommand maps a menu choice such as "3" to its Command.
// Only the exact strings "1".."10" are accepted.
func ParseCommand(choice string) (Command, bool) {
	for _, c := range Commands {
		if choice == strconv.Itoa(int(c)) {
			return c, true
		}
	}
	return 0, false
}
