package game

import (
	"math"

	"github.com/kamstrup/intmap"
)

// Growth bounds for generated pieces, inclusive-exclusive.
const (
	minPieceSize = 3
	maxPieceSize = 6
)

var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// offsetKey packs a relative (x, y) offset into a single map key. Offsets
// are truncated to 32 bits per axis, which is far beyond any reachable
// piece extent.
func offsetKey(x, y int) uint64 {
	return uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y)))
}

// Generate grows a random connected polyomino of three to five cells, all
// sharing one hue drawn from [0, 1).
//
// Growth works by perimeter attachment: starting from a single cell at the
// origin, each step occupies a uniformly chosen candidate site and adds that
// site's unoccupied 4-neighbors as new candidates. Every new cell contributes
// fresh perimeter, so shapes are biased toward branching (T- and L-like)
// forms; that bias is intended. Candidate sites keep insertion order, so a
// seeded Rand makes generation fully deterministic.
func Generate(rng Rand) Piece {
	hue := float32(rng.Float64(0, 1))
	size := rng.IntN(minPieceSize, maxPieceSize)

	cells := make([]PieceCell, 0, size)
	occupied := intmap.New[uint64, struct{}](16)
	candidateSet := intmap.New[uint64, struct{}](16)
	candidates := make([][2]int, 0, 2+2*size)

	place := func(x, y int) {
		cells = append(cells, PieceCell{Cell: Cell{Hue: hue}, X: x, Y: y})
		occupied.Put(offsetKey(x, y), struct{}{})
		for _, n := range neighborOffsets {
			nx, ny := x+n[0], y+n[1]
			k := offsetKey(nx, ny)
			if _, ok := occupied.Get(k); ok {
				continue
			}
			if _, ok := candidateSet.Get(k); ok {
				continue
			}
			candidateSet.Put(k, struct{}{})
			candidates = append(candidates, [2]int{nx, ny})
		}
	}

	place(0, 0)
	for len(cells) < size {
		i := rng.IntN(0, len(candidates))
		site := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)
		candidateSet.Del(offsetKey(site[0], site[1]))
		place(site[0], site[1])
	}

	massX, massY := centerOfMass(cells)
	return Piece{cells: cells, massX: massX, massY: massY}
}

// centerOfMass rounds the per-axis mean of the cell coordinates, half away
// from zero. The tie-break only matters for even-sized pieces that hit an
// exact .5 mean, but the pivot must be the same rule everywhere.
func centerOfMass(cells []PieceCell) (int, int) {
	var sx, sy int
	for _, c := range cells {
		sx += c.X
		sy += c.Y
	}
	n := float64(len(cells))
	return int(math.Round(float64(sx) / n)), int(math.Round(float64(sy) / n))
}
