package world

import (
	"fmt"
	"strings"
)

// Reserved decision options that do not name an exit.
const (
	OptionReturn = "return"
	OptionStay   = "stay"
)

// Exit is a labelled branch from a location to one of its children.
type Exit struct {
	// Label is the option the player types, e.g. "old door" or "inspect".
	Label string
	// Target is the segment appended to the current path.
	Target Segment
	// Door marks exits rendered as doors.
	Door bool
}

// Hint is flavour text chosen by whether the player holds Item.
type Hint struct {
	Item    string
	Present string
	Absent  string
}

// Location is one node of the map tree. All fields are immutable after load.
type Location struct {
	Path  Path
	Title string
	// Description is shown on arrival; ReturnDescription when arriving by return.
	Description       string
	ReturnDescription string
	Exits             []Exit
	CanReturn         bool
	CanStay           bool
	// Items and Enemies name the location's manifest in catalog order.
	Items   []string
	Enemies []string
	// Requires names an item without which entering the location is fatal.
	Requires  string
	FatalText string
	// EmptyText is shown when a search or lair has nothing left.
	EmptyText string
	// ClearedText is shown in a lair once no enemy remains, before its items are offered.
	ClearedText string
	Hint        *Hint
}

// Options returns the decision set offered at the location: exit labels,
// then "stay" and "return" when allowed.
func (l *Location) Options() []string {
	opts := make([]string, 0, len(l.Exits)+2)
	for _, e := range l.Exits {
		opts = append(opts, e.Label)
	}
	if l.CanStay {
		opts = append(opts, OptionStay)
	}
	if l.CanReturn {
		opts = append(opts, OptionReturn)
	}
	return opts
}

// Doors returns the door names of the location's door exits.
func (l *Location) Doors() []string {
	var doors []string
	for _, e := range l.Exits {
		if e.Door {
			doors = append(doors, strings.TrimSuffix(string(e.Target), "-room"))
		}
	}
	return doors
}

// Exit returns the exit labelled label.
func (l *Location) Exit(label string) (Exit, bool) {
	for _, e := range l.Exits {
		if e.Label == label {
			return e, true
		}
	}
	return Exit{}, false
}

// Narration returns the description matching the returning flag.
func (l *Location) Narration(returning bool) string {
	if returning && l.ReturnDescription != "" {
		return l.ReturnDescription
	}
	return l.Description
}

// Resolve maps an offered option to a Transition.
//
// Postcondition: returns an error wrapping ErrUnknownOption when option is not in Options().
func (l *Location) Resolve(option string) (Transition, error) {
	switch {
	case option == OptionReturn && l.CanReturn:
		return ReturnBack(), nil
	case option == OptionStay && l.CanStay:
		return StayPut(), nil
	}
	if e, ok := l.Exit(option); ok {
		return AdvanceTo(e.Target), nil
	}
	return Transition{}, fmt.Errorf("%w: %q at %s", ErrUnknownOption, option, l.Path)
}
