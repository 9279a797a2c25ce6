package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextState returns the next value (0 or 1) of a cell holding current with the given
// number of live neighbors.
//
// Fewer than 2 or more than 3 neighbors kills the cell, a dead cell with exactly 3 is
// born, anything else keeps its value. This is the same rule as ApplyConwayRules.
func NextState(current uint8, neighbors int) uint8 {
	switch {
	case neighbors < 2 || neighbors > 3:
		return 0
	case current == 0 && neighbors == 3:
		return 1
	default:
		return current
	}
}
