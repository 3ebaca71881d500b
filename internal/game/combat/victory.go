package combat

// VictorySet names the enemies that must all be defeated to win.
var VictorySet = []string{"dragon", "leprechaun"}

// CheckWin reports whether every member of VictorySet is in defeated.
//
// Postcondition: monotonic; adding names to defeated never turns true into false.
func CheckWin(defeated map[string]bool) bool {
	for _, name := range VictorySet {
		if !defeated[name] {
			return false
		}
	}
	return true
}
