package game

import "iter"

// State is the falling-block engine: it owns the grid of rows, the active
// piece, placement legality, commit-on-landing, row clearing, and
// spawn/game-over detection. Row 0 is the top of the board.
//
// A State is driven synchronously by a single host goroutine through its
// Try* mutators; it performs no locking of its own and must not be shared
// across goroutines without external coordination. Expected failures
// (illegal moves, game over) are reported through boolean returns, never
// through errors or panics.
type State struct {
	grid  []*Row
	width int

	// piece is nil only transiently between a commit and the next spawn,
	// or permanently after game over.
	piece   *Piece
	anchorX int
	anchorY int

	rng Rand

	rowsCleared uint32
	alive       bool
}

// New creates a board of the given dimensions, takes ownership of rng for
// piece generation, and spawns the first piece. Panics if either dimension
// is not positive.
func New(height, width int, rng Rand) *State {
	if height <= 0 || width <= 0 {
		panic("board dimensions must be positive")
	}
	s := &State{
		grid:  make([]*Row, height),
		width: width,
		rng:   rng,
		alive: true,
	}
	for i := range s.grid {
		s.grid[i] = newRow(width)
	}
	s.spawn()
	return s
}

// Width returns the board width in cells.
func (s *State) Width() int {
	return s.width
}

// Height returns the board height in cells.
func (s *State) Height() int {
	return len(s.grid)
}

// Row returns the row at index y; row 0 is the top.
func (s *State) Row(y int) *Row {
	return s.grid[y]
}

// CellAt returns the committed cell at (x, y), or nil when that slot is
// empty. The active piece is not part of the grid; see ProjectActive.
func (s *State) CellAt(x, y int) *Cell {
	return s.grid[y].Cell(x)
}

// RowsCleared returns the number of rows cleared since construction or the
// last Reset. The counter never decreases.
func (s *State) RowsCleared() uint32 {
	return s.rowsCleared
}

// Alive reports whether the game is still running. Once false, every
// mutator except Reset is a no-op.
func (s *State) Alive() bool {
	return s.alive
}

// ActivePiece returns the falling piece and its anchor in board
// coordinates, if one exists.
func (s *State) ActivePiece() (p Piece, anchorX, anchorY int, ok bool) {
	if s.piece == nil {
		return Piece{}, 0, 0, false
	}
	return *s.piece, s.anchorX, s.anchorY, true
}

// ProjectActive returns the active piece's cells in board coordinates, or
// an empty sequence when no piece is falling.
func (s *State) ProjectActive() iter.Seq[ProjectedCell] {
	if s.piece == nil {
		return func(yield func(ProjectedCell) bool) {}
	}
	return s.piece.Project(s.anchorX, s.anchorY)
}

// CanPlace reports whether every cell of p, anchored at (x, y), lands
// in-bounds on an empty slot. It stops at the first violation and has no
// side effects.
func (s *State) CanPlace(p Piece, x, y int) bool {
	for pc := range p.Project(x, y) {
		if pc.X < 0 || pc.Y < 0 || pc.Y >= len(s.grid) || pc.X >= s.width {
			return false
		}
		if s.grid[pc.Y].Cell(pc.X) != nil {
			return false
		}
	}
	return true
}

// TryRotate replaces the active piece with its quarter-turned form when the
// rotated cells all fit at the current anchor. There is no wall-kick search:
// a rotation that would collide fails outright and leaves the state
// untouched.
func (s *State) TryRotate(clockwise bool) bool {
	if !s.alive || s.piece == nil {
		return false
	}
	rotated := s.piece.Rotated(clockwise)
	if !s.CanPlace(rotated, s.anchorX, s.anchorY) {
		return false
	}
	s.piece = &rotated
	return true
}

// TryShift moves the active piece one column left or right, reporting
// whether the move was legal. On failure the state is unchanged.
func (s *State) TryShift(leftwards bool) bool {
	if !s.alive || s.piece == nil {
		return false
	}
	dx := 1
	if leftwards {
		dx = -1
	}
	if !s.CanPlace(*s.piece, s.anchorX+dx, s.anchorY) {
		return false
	}
	s.anchorX += dx
	return true
}

// TryDrop advances the active piece one row and reports whether it fell.
// A piece that cannot advance is committed into the grid and finished rows
// are cleared; the false return is how hosts notice a landing and slow
// their fall cadence back down. With no active piece, TryDrop spawns the
// next one and returns false.
func (s *State) TryDrop() bool {
	if !s.alive {
		return false
	}
	if s.piece == nil {
		s.spawn()
		return false
	}
	if s.CanPlace(*s.piece, s.anchorX, s.anchorY+1) {
		s.anchorY++
		return true
	}
	s.commit()
	s.clearFinishedRows()
	return false
}

// Reset empties the grid, zeroes the clear counter and spawns a fresh
// piece. It is the only mutation allowed after game over. The random source
// is not reseeded.
func (s *State) Reset() {
	for _, row := range s.grid {
		row.clearAll()
	}
	s.piece = nil
	s.rowsCleared = 0
	s.alive = true
	s.spawn()
}

// commit writes the active piece into the grid at its projected positions.
// Placement was validated by CanPlace on the way here, so the writes are
// in-bounds by construction.
func (s *State) commit() {
	for pc := range s.piece.Project(s.anchorX, s.anchorY) {
		s.grid[pc.Y].set(pc.X, pc.Cell)
	}
	s.piece = nil
}

// clearFinishedRows scans top to bottom, empties every full row, and lets
// the stack above a cleared row settle one row down by swapping adjacent
// rows upward until the top or an already-empty row. Rows are swapped, not
// copied, so slot storage and emptiness flags travel with them. The whole
// scan repeats until a pass clears nothing, which covers alignments that
// only fill up after a collapse.
func (s *State) clearFinishedRows() {
	for {
		cleared := false
		for y := range s.grid {
			row := s.grid[y]
			if row.IsEmpty() {
				continue
			}
			if row.full() {
				row.clearAll()
				s.rowsCleared++
				cleared = true
			}
			if s.grid[y].IsEmpty() {
				for i := y; i >= 1; i-- {
					if s.grid[i-1].IsEmpty() {
						break
					}
					s.grid[i], s.grid[i-1] = s.grid[i-1], s.grid[i]
				}
			}
		}
		if !cleared {
			return
		}
	}
}

// spawn generates the next piece and anchors it at the horizontal middle,
// just low enough that none of its cells project above row 0. When even
// that placement collides, the board has topped out: alive drops to false
// and no piece is left active.
func (s *State) spawn() {
	p := Generate(s.rng)
	x, y := s.width/2, p.Clearance()
	if !s.CanPlace(p, x, y) {
		s.alive = false
		s.piece = nil
		return
	}
	s.piece = &p
	s.anchorX = x
	s.anchorY = y
}
