package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Visual characters for rendering
const (
	BodyChar      = '●'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// wingFrames is the wing glyph cycle, indexed by animation frame.
var wingFrames = []rune{'▲', '◆', '▼', '◆'}

// skinColors gives each skin its body color.
var skinColors = []core.Color{core.ColorYellow, core.ColorBrightRed, core.ColorBrightCyan}

// groundPattern scrolls under the grass line with the world.
var groundPattern = []rune{'░', '▒', '░', '░'}

// projection maps world units onto screen cells with independent axes.
type projection struct {
	sx, sy float64
}

func newProjection(dst *core.Screen, snap *sim.Snapshot) projection {
	return projection{
		sx: float64(dst.Width()) / float64(snap.WorldW),
		sy: float64(dst.Height()) / float64(snap.WorldH),
	}
}

func (p projection) x(v float64) int {
	return int(math.Floor(v * p.sx))
}

func (p projection) y(v float64) int {
	return int(math.Floor(v * p.sy))
}

// rect converts a world box to cells. Non-empty boxes cover at least one cell.
func (p projection) rect(r core.RectF) core.Rect {
	x0, y0 := p.x(r.X), p.y(r.Y)
	w := core.Max(1, p.x(r.Right())-x0)
	h := core.Max(1, p.y(r.Bottom())-y0)
	return core.NewRect(x0, y0, w, h)
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := &g.snap
	p := newProjection(dst, snap)

	floorRow := p.y(float64(snap.FloorY))
	for _, o := range snap.Obstacles {
		g.drawPipe(dst, p, o, floorRow)
	}
	g.drawGround(dst, p, snap, floorRow)
	g.drawAvatar(dst, p, snap)

	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)
	speed := fmt.Sprintf(" Speed: %.0f ", snap.Speed)
	dst.DrawTextColor(dst.Width()-len(speed)-1, 0, speed, core.ColorGray)

	switch snap.State {
	case sim.StateNotStarted:
		g.drawCenteredMessage(dst, "FLAPPY", "Press SPACE to begin")
	case sim.StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press any key to resume")
	case sim.StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  SPACE to restart", snap.Score))
	}
}

// drawPipe renders a pipe with a cap one cell wider on each side.
func (g *Game) drawPipe(dst *core.Screen, p projection, o sim.ObstacleView, floorRow int) {
	x0 := p.x(o.X)
	w := core.Max(1, p.x(o.X+o.Width)-x0)

	topRows := p.y(o.Top.Bottom())
	dst.DrawRectColor(core.NewRect(x0, 0, w, topRows), PipeChar, core.ColorGreen)
	if topRows > 0 {
		dst.DrawHLine(x0-1, topRows-1, w+2, PipeCapTop, core.ColorBrightGreen)
	}

	if o.Single || o.Bottom.Empty() {
		return
	}
	bottomRow := p.y(o.Bottom.Y)
	dst.DrawRectColor(core.NewRect(x0, bottomRow, w, floorRow-bottomRow), PipeChar, core.ColorGreen)
	if bottomRow < floorRow {
		dst.DrawHLine(x0-1, bottomRow, w+2, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawGround fills the band below the floor line, scrolled by distance.
func (g *Game) drawGround(dst *core.Screen, p projection, snap *sim.Snapshot, floorRow int) {
	dst.DrawHLine(0, floorRow, dst.Width(), GroundChar, core.ColorBrightGreen)

	offset := p.x(snap.Distance)
	for y := floorRow + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			ch := groundPattern[(x+offset+y)%len(groundPattern)]
			dst.SetCell(x, y, ch, core.ColorBrown)
		}
	}
}

// drawAvatar draws the body in the skin color, the wing on the left
// and the beak on the right.
func (g *Game) drawAvatar(dst *core.Screen, p projection, snap *sim.Snapshot) {
	r := p.rect(snap.Avatar)
	color := skinColors[snap.Skin%len(skinColors)]
	dst.DrawRectColor(r, BodyChar, color)

	frames := g.cfg.Avatar.FramesPerCycle
	wing := wingFrames[snap.Frame*len(wingFrames)/frames%len(wingFrames)]
	dst.SetCell(r.X, r.Y, wing, core.ColorWhite)
	if r.W > 1 {
		dst.SetCell(r.Right()-1, r.Y, BeakChar, core.ColorOrange)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
