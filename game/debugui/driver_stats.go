package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/gridfall/game"
)

// DriverStatsComponent renders a window with frame timing and the driver's
// per-phase execution statistics.
type DriverStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewDriverStatsComponent(historyFrames int) DriverStatsComponent {
	return DriverStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ds *DriverStatsComponent) Render(driver *game.Driver, deltaTime float32) {
	if !imgui.BeginV("Driver Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ds.frameHistory[ds.frameIndex] = deltaTime * 1000.0
	ds.frameIndex = (ds.frameIndex + 1) % ds.historyFrames

	stats := driver.Stats()
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))

	var avgFrameTime float32
	for _, ft := range ds.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ds.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ds.frameHistory[0], int32(len(ds.frameHistory)))

	if imgui.TreeNodeStr("Phase Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, phase := range stats.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", phase.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
