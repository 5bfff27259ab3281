package game_test

import (
	"testing"

	"github.com/plus3/gridfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tPiece() game.Piece {
	cells := []game.PieceCell{
		{Cell: game.Cell{Hue: 0.5}, X: 0, Y: 0},
		{Cell: game.Cell{Hue: 0.5}, X: 1, Y: 0},
		{Cell: game.Cell{Hue: 0.5}, X: 2, Y: 0},
		{Cell: game.Cell{Hue: 0.5}, X: 1, Y: 1},
	}
	return game.NewPiece(cells, 1, 0)
}

func TestNewPiecePanicsWithoutCells(t *testing.T) {
	assert.Panics(t, func() {
		game.NewPiece(nil, 0, 0)
	})
}

func TestNewPieceCopiesCells(t *testing.T) {
	cells := []game.PieceCell{{X: 0, Y: 0}}
	p := game.NewPiece(cells, 0, 0)

	cells[0].X = 99
	assert.Equal(t, 0, p.Cells()[0].X)
}

func TestRotationHasOrderFour(t *testing.T) {
	original := tPiece()

	for _, clockwise := range []bool{true, false} {
		p := original
		for i := 0; i < 4; i++ {
			p = p.Rotated(clockwise)
		}
		assert.Equal(t, original.Cells(), p.Cells(), "four quarter turns (clockwise=%v) must restore the piece", clockwise)
	}
}

func TestRotationRoundTrips(t *testing.T) {
	original := tPiece()
	p := original.Rotated(true).Rotated(false)
	assert.Equal(t, original.Cells(), p.Cells())
}

func TestRotatedKeepsCenterOfMass(t *testing.T) {
	p := tPiece()
	r := p.Rotated(true)

	x, y := p.CenterOfMass()
	rx, ry := r.CenterOfMass()
	assert.Equal(t, x, rx)
	assert.Equal(t, y, ry)
}

func TestRotatedDoesNotMutateInput(t *testing.T) {
	p := tPiece()
	before := append([]game.PieceCell(nil), p.Cells()...)

	p.Rotated(true)
	assert.Equal(t, before, p.Cells())
}

func TestRotatedTurnsCells(t *testing.T) {
	p := tPiece()

	// Clockwise around (1, 0): (x, y) -> (y, -x) in pivot space.
	r := p.Rotated(true)
	want := []game.PieceCell{
		{Cell: game.Cell{Hue: 0.5}, X: 1, Y: 1},
		{Cell: game.Cell{Hue: 0.5}, X: 1, Y: 0},
		{Cell: game.Cell{Hue: 0.5}, X: 1, Y: -1},
		{Cell: game.Cell{Hue: 0.5}, X: 2, Y: 0},
	}
	assert.Equal(t, want, r.Cells())
}

func TestProjectYieldsEveryCell(t *testing.T) {
	p := tPiece()

	var got [][2]int
	for pc := range p.Project(4, 7) {
		got = append(got, [2]int{pc.X, pc.Y})
	}

	// global = anchor + relative - center of mass
	want := [][2]int{{3, 7}, {4, 7}, {5, 7}, {4, 8}}
	assert.Equal(t, want, got)
}

func TestProjectIsRestartable(t *testing.T) {
	p := tPiece()
	seq := p.Project(0, 0)

	var first, second []game.ProjectedCell
	for pc := range seq {
		first = append(first, pc)
	}
	for pc := range seq {
		second = append(second, pc)
	}

	require.Len(t, first, p.Size())
	assert.Equal(t, first, second)
}

func TestProjectStopsWhenYieldReturnsFalse(t *testing.T) {
	p := tPiece()

	count := 0
	for range p.Project(0, 0) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestClearance(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
		massY int
		want  int
	}{
		{"cells above the pivot", [][2]int{{0, -2}, {0, -1}, {0, 0}}, 0, 2},
		{"cells level with the pivot", [][2]int{{0, 0}, {1, 0}}, 0, 0},
		{"cells below the pivot", [][2]int{{0, 1}, {0, 2}}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := make([]game.PieceCell, len(tt.cells))
			for i, c := range tt.cells {
				cells[i] = game.PieceCell{X: c[0], Y: c[1]}
			}
			p := game.NewPiece(cells, 0, tt.massY)
			assert.Equal(t, tt.want, p.Clearance())
		})
	}
}
