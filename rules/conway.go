package rules

// Thresholds parameterizes the birth/survival rule.
//
// A live cell survives when its live-neighbor count lies in the inclusive range
// [Underpopulation, Overpopulation]. A dead cell is born when the count equals Repopulation.
// Thresholds are not validated: an inverted range kills every live cell.
type Thresholds struct {
	Underpopulation int `json:"underpopulation"`
	Overpopulation  int `json:"overpopulation"`
	Repopulation    int `json:"repopulation"`
}

// Conway is the classic B3/S23 rule set
var Conway = Thresholds{
	Underpopulation: 2,
	Overpopulation:  3,
	Repopulation:    3,
}

// Next returns the state of a cell in the next generation
func (t Thresholds) Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= t.Underpopulation && neighbors <= t.Overpopulation
	}
	return neighbors == t.Repopulation
}
