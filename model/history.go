package model

const defaultHistorySize = 5

// History stores recent grid hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size hashes, 5 when size is not positive
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds the grid state to the history and maintains its size
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant checks if g repeats one of the last three recorded states,
// i.e. the grid is static or in a cycle of period 2 or 3
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.GetGridHash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}
