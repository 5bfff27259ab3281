package game_test

// scriptRand is a Rand whose draws are scripted by the test. Integer draws
// pop from ints and float draws from floats; an exhausted script returns the
// range's lower bound, which keeps the generator deterministic without
// endless scripts.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (r *scriptRand) IntN(lower, upper int) int {
	if len(r.ints) == 0 {
		return lower
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < lower || v >= upper {
		panic("scripted integer draw out of range")
	}
	return v
}

func (r *scriptRand) Float64(lower, upper float64) float64 {
	if len(r.floats) == 0 {
		return lower
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	if v < lower || v >= upper {
		panic("scripted float draw out of range")
	}
	return v
}

// The exhausted-script fallback always grows the same three-cell piece:
// cells (0,0), (0,1), (1,0) with center of mass (0,0). Tests that need a
// known active piece rely on this shape.
func fallbackPieceCells() [][2]int {
	return [][2]int{{0, 0}, {0, 1}, {1, 0}}
}
