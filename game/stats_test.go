package game

import "testing"

func TestBoardStatsEmptyBoard(t *testing.T) {
	s := newBareState(4, 3)

	stats := s.CollectStats()
	if stats.OccupiedCells != 0 {
		t.Errorf("expected 0 occupied cells, got %d", stats.OccupiedCells)
	}
	if stats.OccupiedRows != 0 {
		t.Errorf("expected 0 occupied rows, got %d", stats.OccupiedRows)
	}
	for x, h := range stats.ColumnHeights {
		if h != 0 {
			t.Errorf("expected column %d height 0, got %d", x, h)
		}
	}
	if !stats.Alive {
		t.Error("expected alive snapshot")
	}
	if stats.ActivePieceSize != 0 {
		t.Errorf("expected no active piece, got size %d", stats.ActivePieceSize)
	}
}

func TestBoardStatsOccupancy(t *testing.T) {
	s := newBareState(4, 3)
	plant(s, 0, 3)
	plant(s, 0, 2)
	plant(s, 2, 3)
	plant(s, 1, 1)
	s.rowsCleared = 5

	stats := s.CollectStats()

	if stats.Width != 3 || stats.Height != 4 {
		t.Errorf("unexpected dimensions %dx%d", stats.Width, stats.Height)
	}
	if stats.OccupiedCells != 4 {
		t.Errorf("expected 4 occupied cells, got %d", stats.OccupiedCells)
	}
	if stats.OccupiedRows != 3 {
		t.Errorf("expected 3 occupied rows, got %d", stats.OccupiedRows)
	}

	wantHeights := []int{2, 3, 1}
	for x, want := range wantHeights {
		if stats.ColumnHeights[x] != want {
			t.Errorf("column %d: expected height %d, got %d", x, want, stats.ColumnHeights[x])
		}
	}
	if stats.RowsCleared != 5 {
		t.Errorf("expected snapshot of 5 cleared rows, got %d", stats.RowsCleared)
	}
}

func TestBoardStatsActivePiece(t *testing.T) {
	s := newBareState(4, 4)
	p := NewPiece([]PieceCell{{X: 0, Y: 0}, {X: 1, Y: 0}}, 0, 0)
	s.piece = &p

	stats := s.CollectStats()
	if stats.ActivePieceSize != 2 {
		t.Errorf("expected active piece size 2, got %d", stats.ActivePieceSize)
	}
	if stats.OccupiedCells != 0 {
		t.Error("the active piece must not count as committed occupancy")
	}
}
