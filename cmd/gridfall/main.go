package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/gridfall/game"
	"github.com/plus3/gridfall/game/debugui"
	debugui_ebiten "github.com/plus3/gridfall/game/debugui/ebiten"
)

const (
	defaultBoardWidth  = 8
	defaultBoardHeight = 24
	defaultCellSize    = 32

	slowTicksPerDrop = 10
	fastTicksPerDrop = 1
)

var (
	colorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorGuide      = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	colorGameOver   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

// Game hosts the engine behind ebiten's fixed-rate Update/Draw loop. All
// real rules live in game.State; this layer only feeds input edges to the
// driver and paints the query surface.
type Game struct {
	driver   *game.Driver
	cellSize int

	imguiBackend *debugui_ebiten.ImguiBackend
	inspector    debugui.BoardInspectorComponent
	driverStats  debugui.DriverStatsComponent
	frameTimer   *debugui.FrameTimer
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
		g.inspector.Render(g.driver.State())
		g.driverStats.Render(g.driver, g.frameTimer.GetDeltaTime())
		g.imguiBackend.EndFrame()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.State().Reset()
		return nil
	}

	// Only one direction per frame; the driver buffers them anyway, but a
	// frame never produces two competing moves.
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.driver.QueueRotate(false)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.driver.QueueRotate(true)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.driver.QueueShift(true)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.driver.QueueShift(false)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.SetFastFall(true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		g.driver.SetFastFall(false)
	}

	if g.driver.State().Alive() {
		g.driver.Tick()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	st := g.driver.State()
	cell := float32(g.cellSize)
	heightPx := float32(st.Height()) * cell

	// Column guides every fourth column as a visual ruler.
	for col := 4; col < st.Width(); col += 4 {
		x := float32(col) * cell
		vector.StrokeLine(screen, x, 0, x, heightPx, 1, colorGuide, false)
	}

	// Committed cells, dimmed.
	for y := 0; y < st.Height(); y++ {
		row := st.Row(y)
		if row.IsEmpty() {
			continue
		}
		for x := 0; x < st.Width(); x++ {
			c := row.Cell(x)
			if c == nil {
				continue
			}
			vector.DrawFilledRect(screen, float32(x)*cell, float32(y)*cell, cell, cell, hslToRGB(float64(c.Hue), 0.5, 0.3), false)
		}
	}

	// Active piece, full saturation, plus its center-of-mass marker.
	for pc := range st.ProjectActive() {
		vector.DrawFilledRect(screen, float32(pc.X)*cell, float32(pc.Y)*cell, cell, cell, hslToRGB(float64(pc.Cell.Hue), 1.0, 0.5), false)
	}
	if _, ax, ay, ok := st.ActivePiece(); ok {
		cx := (float32(ax) + 0.5) * cell
		cy := (float32(ay) + 0.5) * cell
		vector.DrawFilledCircle(screen, cx, cy, 8, color.Black, false)
		vector.DrawFilledCircle(screen, cx, cy, 4, color.White, false)
	}

	score := fmt.Sprintf("%d", st.RowsCleared())
	ebitenutil.DebugPrintAt(screen, score, st.Width()*g.cellSize/2-len(score)*3, st.Height()*g.cellSize/2)

	if !st.Alive() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", st.Width()*g.cellSize/2-27, st.Height()*g.cellSize/4)
		ebitenutil.DebugPrintAt(screen, "press R to restart, Q to quit", 4, st.Height()*g.cellSize/4+16)
	}

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	st := g.driver.State()
	return st.Width() * g.cellSize, st.Height() * g.cellSize
}

// hslToRGB converts an HSL triple (h, s, l in [0,1]) to an opaque RGBA.
func hslToRGB(h, s, l float64) color.RGBA {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func main() {
	boardWidth := flag.Int("width", defaultBoardWidth, "Board width in cells.")
	boardHeight := flag.Int("height", defaultBoardHeight, "Board height in cells.")
	cellSize := flag.Int("cell", defaultCellSize, "Cell side length in pixels.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector windows.")
	flag.Parse()

	state := game.New(*boardHeight, *boardWidth, game.NewRandomSource())
	driver := game.NewDriver(state, game.DriverOptions{
		SlowTicksPerDrop: slowTicksPerDrop,
		FastTicksPerDrop: fastTicksPerDrop,
	})

	g := &Game{
		driver:   driver,
		cellSize: *cellSize,
	}

	ebiten.SetWindowSize(*boardWidth**cellSize, *boardHeight**cellSize)
	ebiten.SetWindowTitle("gridfall")

	if *debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("gridfall", *boardWidth**cellSize, *boardHeight**cellSize)
		imgui.CurrentIO().SetIniFilename("")

		g.imguiBackend = &debugui_ebiten.ImguiBackend{EbitenBackend: backend}
		g.inspector = debugui.NewBoardInspectorComponent()
		g.driverStats = debugui.NewDriverStatsComponent(120)
		g.frameTimer = debugui.NewFrameTimer()
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("gridfall exited: %v", err)
	}
}
