package game

import "iter"

// PieceCell is one cell of a piece together with its position relative to
// the piece's local origin. Relative coordinates may be negative.
type PieceCell struct {
	Cell Cell
	X, Y int
}

// ProjectedCell is a piece cell mapped into board (global) coordinates.
type ProjectedCell struct {
	Cell Cell
	X, Y int
}

// Piece is a connected cluster of cells with a center-of-mass pivot.
// The center of mass is a fixed reference point: rotation turns the cells
// around it and projection pins it to the anchor in board space. It need not
// coincide with any cell. Pieces are immutable; Rotated returns a new value
// and no method writes through the receiver.
type Piece struct {
	cells []PieceCell
	massX int
	massY int
}

// NewPiece builds a piece from cells and an explicit center of mass.
// Panics on an empty cell list; a piece without cells is a programmer error.
func NewPiece(cells []PieceCell, massX, massY int) Piece {
	if len(cells) == 0 {
		panic("cannot build a piece without cells")
	}
	owned := make([]PieceCell, len(cells))
	copy(owned, cells)
	return Piece{cells: owned, massX: massX, massY: massY}
}

// Size returns the number of cells.
func (p Piece) Size() int {
	return len(p.cells)
}

// Cells returns the piece's cells in their relative coordinates.
func (p Piece) Cells() []PieceCell {
	return p.cells
}

// CenterOfMass returns the rotation pivot in relative coordinates.
func (p Piece) CenterOfMass() (int, int) {
	return p.massX, p.massY
}

// Rotated returns the piece turned a quarter turn around its center of mass.
// The center of mass itself is unchanged, so four equal turns in either
// direction restore the original cell positions.
func (p Piece) Rotated(clockwise bool) Piece {
	cells := make([]PieceCell, len(p.cells))
	for i, c := range p.cells {
		x, y := rotate2D(clockwise, c.X-p.massX, c.Y-p.massY)
		cells[i] = PieceCell{Cell: c.Cell, X: x + p.massX, Y: y + p.massY}
	}
	return Piece{cells: cells, massX: p.massX, massY: p.massY}
}

func rotate2D(clockwise bool, x, y int) (int, int) {
	if clockwise {
		return y, -x
	}
	return -y, x
}

// Project maps every cell into board space with the center of mass pinned at
// (anchorX, anchorY). The sequence is finite, yields exactly Size() items,
// and is restartable: each range over it starts a fresh pass.
func (p Piece) Project(anchorX, anchorY int) iter.Seq[ProjectedCell] {
	return func(yield func(ProjectedCell) bool) {
		for _, c := range p.cells {
			pc := ProjectedCell{
				Cell: c.Cell,
				X:    anchorX + c.X - p.massX,
				Y:    anchorY + c.Y - p.massY,
			}
			if !yield(pc) {
				return
			}
		}
	}
}

// Clearance returns the spawn row for the anchor such that no projected cell
// lies above row 0: the distance from the center of mass up to the piece's
// topmost cell.
func (p Piece) Clearance() int {
	minY := p.cells[0].Y
	for _, c := range p.cells[1:] {
		if c.Y < minY {
			minY = c.Y
		}
	}
	if d := p.massY - minY; d > 0 {
		return d
	}
	return 0
}
