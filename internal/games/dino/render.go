package dino

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	DinoBody      = '█'
	DinoHead      = '◆'
	DinoLeg1      = '╱'
	DinoLeg2      = '╲'
	CactusChar    = '▓'
	WingBody      = '▒'
	WingUp        = '▀'
	WingDown      = '▄'
	BeakLeft      = '◀'
	BeakRight     = '▶'
	CloudChar     = '~'
	GroundChar    = '═'
	GroundSpeckle = '·'

	speckleEvery = 9
)

// Render draws the current frame scaled onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.drawTitle(dst)
		return
	}

	snap := g.session.Snapshot()
	v := newViewport(&g.cfg, dst)

	v.drawGround(dst, snap.GroundOffset)
	v.drawCloud(dst, snap.Cloud)
	for _, o := range snap.Obstacles {
		v.drawObstacle(dst, o)
	}
	v.drawCharacter(dst, snap.Character)

	g.drawHUD(dst, snap)

	switch g.phase {
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume, Q to quit")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"R: play again  B: characters  Q: quit")
	}
}

// viewport maps world coordinates onto screen cells.
type viewport struct {
	worldW, worldH int
	w, h           int
	groundRow      int
}

func newViewport(cfg *config.DinoConfig, dst *core.Screen) viewport {
	v := viewport{
		worldW: cfg.World.Width,
		worldH: cfg.World.Height,
		w:      dst.Width(),
		h:      dst.Height(),
	}
	run := core.NewRect(cfg.Player.X, cfg.Player.RunY, 1, cfg.Characters.Dino.Run.H)
	v.groundRow = core.Clamp(v.project(run).Bottom(), 1, max(v.h-1, 1))
	return v
}

func (v viewport) project(r core.Rect) core.Rect {
	return r.Scale(v.worldW, v.worldH, v.w, v.h)
}

func (v viewport) drawGround(dst *core.Screen, offset int) {
	dst.DrawHLine(0, v.groundRow, v.w, GroundChar, core.ColorGround)
	shift := 0
	if v.worldW > 0 {
		shift = offset * v.w / v.worldW
	}
	for x := 0; x < v.w; x++ {
		if (x+shift)%speckleEvery == 0 {
			dst.SetColored(x, v.groundRow, GroundSpeckle, core.ColorGround)
		}
	}
}

func (v viewport) drawCloud(dst *core.Screen, cloud core.Rect) {
	r := v.project(cloud)
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Y, CloudChar, core.ColorCloud)
	}
}

func (v viewport) drawObstacle(dst *core.Screen, o ObstacleDraw) {
	r := v.project(o.Box)
	if o.Kind != FlyingHazard {
		dst.FillRect(r, CactusChar, core.ColorObstacle)
		return
	}
	drawFlyer(dst, r, o.Sprite, false, core.ColorFlyer)
}

func (v viewport) drawCharacter(dst *core.Screen, c CharacterDraw) {
	r := v.project(c.Box)
	switch c.Archetype {
	case ArchetypeCactus:
		dst.FillRect(r, CactusChar, core.ColorBrightGreen)
	case ArchetypePterodactyl:
		drawFlyer(dst, r, c.Frame, c.Mirrored, core.ColorBrightYellow)
	default:
		drawDino(dst, r, c)
	}
}

// drawDino renders the dino: body block, head at the front, legs on the
// bottom row alternating with the animation frame.
func drawDino(dst *core.Screen, r core.Rect, c CharacterDraw) {
	dst.FillRect(r, DinoBody, core.ColorGreen)
	dst.SetColored(r.Right()-1, r.Y, DinoHead, core.ColorGreen)
	if r.H < 2 || c.Pose == Jumping {
		return
	}
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, legs, ' ', core.ColorDefault)
	}
	lead, trail := DinoLeg1, DinoLeg2
	if c.Frame%2 == 1 {
		lead, trail = trail, lead
	}
	dst.SetColored(r.X, legs, lead, core.ColorGreen)
	dst.SetColored(r.Right()-1, legs, trail, core.ColorGreen)
}

// drawFlyer renders a winged sprite facing left, or right when mirrored.
func drawFlyer(dst *core.Screen, r core.Rect, frame int, mirrored bool, color core.Color) {
	dst.FillRect(r, WingBody, color)
	wing := WingUp
	if frame%2 == 1 {
		wing = WingDown
	}
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Y, wing, color)
	}
	if mirrored {
		dst.SetColored(r.Right()-1, r.Y, BeakRight, color)
	} else {
		dst.SetColored(r.X, r.Y, BeakLeft, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("High Score: %d", snap.Best), core.ColorHUD)
	points := fmt.Sprintf("Points: %d", snap.Score)
	dst.DrawTextColored(dst.Width()-len(points)-1, 0, points, core.ColorHUD)
	if g.cfg.Difficulty.Enabled {
		speed := fmt.Sprintf("Spd %d", snap.Speed)
		dst.DrawTextColored((dst.Width()-len(speed))/2, 0, speed, core.ColorGray)
	}
}

func (g *Game) drawTitle(dst *core.Screen) {
	names := make([]string, 0, len(Archetypes()))
	for _, a := range Archetypes() {
		names = append(names, a.String())
	}
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, strings.ToUpper(g.Title()))
	dst.DrawTextCentered(mid+1, "Characters: "+strings.Join(names, ", "))
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l)
	}
}
