package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"live cell dies of underpopulation", 1, true, false},
		{"live cell survives with two", 2, true, true},
		{"live cell survives with three", 3, true, true},
		{"live cell dies of overpopulation", 4, true, false},
		{"dead cell stays dead with two", 2, false, false},
		{"dead cell is born with three", 3, false, true},
		{"dead cell stays dead with eight", 8, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}

// The branch structure of NextState falls through for dead cells with two neighbors;
// check it never disagrees with the canonical rule.
func TestNextStateMatchesConwayRules(t *testing.T) {
	for _, current := range []uint8{0, 1} {
		for neighbors := 0; neighbors <= 8; neighbors++ {
			want := ApplyConwayRules(neighbors, current == 1)
			got := NextState(current, neighbors) == 1
			if got != want {
				t.Errorf("NextState(%d, %d) alive=%v, want %v", current, neighbors, got, want)
			}
		}
	}
}

func TestMooreNeighborhood(t *testing.T) {
	offsets := MooreNeighborhood()
	if len(offsets) != 8 {
		t.Fatalf("got %d offsets, want 8", len(offsets))
	}

	seen := map[Offset]bool{}
	for _, o := range offsets {
		if o.DRow == 0 && o.DCol == 0 {
			t.Fatal("neighborhood must not contain the cell itself")
		}
		if o.DRow < -1 || o.DRow > 1 || o.DCol < -1 || o.DCol > 1 {
			t.Fatalf("offset %+v is not adjacent", o)
		}
		if seen[o] {
			t.Fatalf("duplicate offset %+v", o)
		}
		seen[o] = true
	}

	offsets[0] = Offset{DRow: 5, DCol: 5}
	if MooreNeighborhood()[0] == offsets[0] {
		t.Fatal("MooreNeighborhood must return a copy")
	}
}
