package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/gridfall/game"
)

// BoardInspectorComponent renders a window with the board's occupancy map,
// the active piece, and the column-height breakdown.
type BoardInspectorComponent struct{}

func NewBoardInspectorComponent() BoardInspectorComponent {
	return BoardInspectorComponent{}
}

func (bi *BoardInspectorComponent) Render(state *game.State) {
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := state.CollectStats()

	imgui.Text(fmt.Sprintf("Board: %dx%d", stats.Width, stats.Height))
	imgui.Text(fmt.Sprintf("Rows Cleared: %d", stats.RowsCleared))
	imgui.Text(fmt.Sprintf("Occupied Cells: %d (%d rows)", stats.OccupiedCells, stats.OccupiedRows))
	if stats.Alive {
		imgui.Text(fmt.Sprintf("Active Piece: %d cells", stats.ActivePieceSize))
	} else {
		imgui.Text("GAME OVER")
	}

	imgui.Separator()
	imgui.Text("Occupancy")
	for _, line := range occupancyLines(state) {
		imgui.Text(line)
	}

	if imgui.TreeNodeStr("Column Heights") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ColumnHeightsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Column")
			imgui.TableSetupColumn("Height")
			imgui.TableHeadersRow()

			for x, h := range stats.ColumnHeights {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", x))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", h))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Active Piece Cells") {
		for pc := range state.ProjectActive() {
			imgui.BulletText(fmt.Sprintf("(%d, %d) hue=%.2f", pc.X, pc.Y, pc.Cell.Hue))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// occupancyLines renders the grid as monospace-ish glyph rows: '#' for a
// committed cell, '*' for the active piece, '.' for empty.
func occupancyLines(state *game.State) []string {
	active := make(map[[2]int]bool)
	for pc := range state.ProjectActive() {
		active[[2]int{pc.X, pc.Y}] = true
	}

	lines := make([]string, 0, state.Height())
	var sb strings.Builder
	for y := 0; y < state.Height(); y++ {
		sb.Reset()
		for x := 0; x < state.Width(); x++ {
			switch {
			case active[[2]int{x, y}]:
				sb.WriteByte('*')
			case state.CellAt(x, y) != nil:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
