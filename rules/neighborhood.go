package rules

// Offset is a (row, column) displacement from a cell to one of its neighbors
type Offset struct {
	DRow int
	DCol int
}

var mooreNeighborhood = [...]Offset{
	{DRow: 0, DCol: 1},
	{DRow: 0, DCol: -1},
	{DRow: 1, DCol: -1},
	{DRow: -1, DCol: 1},
	{DRow: 1, DCol: 1},
	{DRow: -1, DCol: -1},
	{DRow: 1, DCol: 0},
	{DRow: -1, DCol: 0},
}

// MooreNeighborhood returns the 8 offsets of the cells horizontally, vertically and
// diagonally adjacent to a cell. The returned slice is a fresh copy.
func MooreNeighborhood() []Offset {
	offsets := make([]Offset, len(mooreNeighborhood))
	copy(offsets, mooreNeighborhood[:])
	return offsets
}
