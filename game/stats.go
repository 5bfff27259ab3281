package game

// BoardStats is a point-in-time snapshot of board occupancy, sized for
// debug overlays and soak reports rather than per-frame game logic.
type BoardStats struct {
	Width  int
	Height int

	// OccupiedCells counts committed cells; the active piece is excluded.
	OccupiedCells int
	// OccupiedRows counts rows whose emptiness flag is unset.
	OccupiedRows int
	// ColumnHeights holds, per column, the distance from the topmost
	// committed cell down to the floor; 0 for an empty column.
	ColumnHeights []int

	RowsCleared     uint32
	Alive           bool
	ActivePieceSize int
}

// CollectStats walks the grid and returns a fresh snapshot.
func (s *State) CollectStats() *BoardStats {
	stats := &BoardStats{
		Width:         s.width,
		Height:        len(s.grid),
		ColumnHeights: make([]int, s.width),
		RowsCleared:   s.rowsCleared,
		Alive:         s.alive,
	}
	if s.piece != nil {
		stats.ActivePieceSize = s.piece.Size()
	}

	for y, row := range s.grid {
		if row.IsEmpty() {
			continue
		}
		stats.OccupiedRows++
		for x := 0; x < s.width; x++ {
			if row.Cell(x) == nil {
				continue
			}
			stats.OccupiedCells++
			if stats.ColumnHeights[x] == 0 {
				stats.ColumnHeights[x] = len(s.grid) - y
			}
		}
	}

	return stats
}
