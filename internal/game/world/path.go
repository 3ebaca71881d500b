// Package world models the dungeon map: enum-tagged location segments, the
// paths built from them, and the tree of locations loaded from YAML.
package world

import (
	"errors"
	"fmt"
	"strings"
)

// Segment is one step of a location path.
type Segment string

// Known location segments.
const (
	LeftRoom   Segment = "left-room"
	MiddleRoom Segment = "middle-room"
	RightRoom  Segment = "right-room"
	GoDown     Segment = "go-down"
	OldRoom    Segment = "old-room"
	ModernRoom Segment = "modern-room"
	Inspect    Segment = "inspect"
)

var knownSegments = map[Segment]bool{
	LeftRoom:   true,
	MiddleRoom: true,
	RightRoom:  true,
	GoDown:     true,
	OldRoom:    true,
	ModernRoom: true,
	Inspect:    true,
}

// Errors returned by path operations.
var (
	ErrAtStart        = errors.New("world: cannot return from the start location")
	ErrUnknownSegment = errors.New("world: unknown location segment")
)

// Valid reports whether s is a known segment.
func (s Segment) Valid() bool {
	return knownSegments[s]
}

// DoorSegment maps a door name to the room segment behind it: "old" becomes "old-room".
func DoorSegment(door string) Segment {
	return Segment(door + "-room")
}

// ParseSegment converts s to a known Segment.
func ParseSegment(s string) (Segment, error) {
	seg := Segment(s)
	if !seg.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSegment, s)
	}
	return seg, nil
}

// Path is the ordered sequence of segments from the start location to the
// player's position. The empty Path is the start location.
//
// Invariant: Path values are never mutated in place; Advance and Return copy.
type Path []Segment

// pathSeparator joins segments in a path key.
const pathSeparator = "/"

// PathOf builds a Path from segments.
func PathOf(segs ...Segment) Path {
	if len(segs) == 0 {
		return Path{}
	}
	out := make(Path, len(segs))
	copy(out, segs)
	return out
}

// ParsePath parses a key produced by Key. The empty string is the start location.
//
// Postcondition: every segment of the result is known, or an error wrapping ErrUnknownSegment is returned.
func ParsePath(key string) (Path, error) {
	if key == "" {
		return Path{}, nil
	}
	parts := strings.Split(key, pathSeparator)
	out := make(Path, 0, len(parts))
	for _, part := range parts {
		seg, err := ParseSegment(part)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}
	return out, nil
}

// Key returns the canonical string form of p, used as a dispatch and persistence key.
func (p Path) Key() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = string(s)
	}
	return strings.Join(parts, pathSeparator)
}

// String returns the key, or "start" for the empty path.
func (p Path) String() string {
	if p.IsStart() {
		return "start"
	}
	return p.Key()
}

// IsStart reports whether p is the start location.
func (p Path) IsStart() bool {
	return len(p) == 0
}

// Advance returns a new path with seg appended.
func (p Path) Advance(seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Return pops the last segment.
//
// Postcondition: len(result) == len(p)-1, or ErrAtStart when p is empty.
func (p Path) Return() (Path, error) {
	if p.IsStart() {
		return nil, ErrAtStart
	}
	return PathOf(p[:len(p)-1]...), nil
}

// Tail returns the last segment, or "" at the start location.
func (p Path) Tail() Segment {
	if p.IsStart() {
		return ""
	}
	return p[len(p)-1]
}

// HasPrefix reports whether prefix is a leading subsequence of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Equal reports whether p and q contain the same segments.
func (p Path) Equal(q Path) bool {
	return len(p) == len(q) && p.HasPrefix(q)
}
