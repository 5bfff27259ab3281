package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/gridfall/game"
	"github.com/plus3/gridfall/game/debugui"
	debugui_ebiten "github.com/plus3/gridfall/game/debugui/ebiten"
)

// Game implements ebiten.Game and layers the inspector windows over the
// board.
type Game struct {
	driver       *game.Driver
	imguiBackend *debugui_ebiten.ImguiBackend
	inspector    debugui.BoardInspectorComponent
	driverStats  debugui.DriverStatsComponent
	frameTimer   *debugui.FrameTimer
}

func (g *Game) Update() error {
	// Begin the ImGui frame before emitting any widgets
	g.imguiBackend.BeginFrame()

	g.driver.Tick()
	g.inspector.Render(g.driver.State())
	g.driverStats.Render(g.driver, g.frameTimer.GetDeltaTime())

	// End the ImGui frame once every window has been rendered
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw the ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create the Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Board Inspector Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	state := game.New(24, 8, game.NewRandomSource())
	driver := game.NewDriver(state, game.DriverOptions{})

	g := &Game{
		driver:       driver,
		imguiBackend: &debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend},
		inspector:    debugui.NewBoardInspectorComponent(),
		driverStats:  debugui.NewDriverStatsComponent(120),
		frameTimer:   debugui.NewFrameTimer(),
	}

	// Run the game
	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
