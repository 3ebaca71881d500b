package command

import "strings"

// Normalize lowercases line and collapses internal whitespace so that
// "  Left   DOOR " matches the option "left door".
//
// Postcondition: the result has no leading, trailing or repeated spaces.
func Normalize(line string) string {
	return strings.Join(strings.Fields(strings.ToLower(line)), " ")
}

// Match returns the offered option equal to line after normalization.
//
// Postcondition: Returns (option, true) when line names one of options.
func Match(line string, options []string) (string, bool) {
	want := Normalize(line)
	if want == "" {
		return "", false
	}
	for _, opt := range options {
		if Normalize(opt) == want {
			return opt, true
		}
	}
	return "", false
}
