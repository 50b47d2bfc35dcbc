package bomberman

import (
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomberman/sim"
	"github.com/vovakirdan/tui-bomber/internal/profile"
)

const (
	cellWidth = 2 // terminal columns per grid cell
	hudHeight = 2
)

var pickupGlyphs = map[sim.PowerUpType]string{
	sim.PowerUpBombUp:       "B+",
	sim.PowerUpAccelerator:  "S+",
	sim.PowerUpFire:         "F+",
	sim.PowerUpBomberman:    "H+",
	sim.PowerUpRiceBall:     "Rb",
	sim.PowerUpApple:        "Ap",
	sim.PowerUpIceCreamCone: "Ic",
}

var avatarColors = map[profile.Avatar]core.Color{
	profile.AvatarWhite: core.ColorBrightWhite,
	profile.AvatarBlack: core.ColorGray,
	profile.AvatarBlue:  core.ColorBrightBlue,
	profile.AvatarRed:   core.ColorBrightRed,
}

// Render draws the arena, HUD and overlays from a snapshot of the world.
func (g *Game) Render(dst *core.Screen) {
	g.mu.Lock()
	snap := g.snapshotLocked()
	avatar := profile.AvatarWhite
	if g.user != nil {
		avatar = g.user.Avatar
	}
	g.mu.Unlock()

	dst.Clear()
	w := snap.World
	if w.Cols == 0 {
		return
	}

	arenaW := w.Cols * cellWidth
	if dst.Width() < arenaW || dst.Height() < w.Rows+hudHeight+1 {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", arenaW, w.Rows+hudHeight+1))
		return
	}

	ox := (dst.Width() - arenaW) / 2
	oy := hudHeight

	renderHUD(dst, snap)
	renderTiles(dst, w, ox, oy)
	renderExit(dst, w, ox, oy)
	renderPickups(dst, w, ox, oy)
	renderExplosions(dst, w, ox, oy)
	renderBombs(dst, w, ox, oy)
	renderEnemies(dst, w, ox, oy)
	renderPlayer(dst, w, ox, oy, avatarColors[avatar])

	footer := "Arrows/WASD: move  Space: bomb  X: stop  P: pause  Q: quit"
	if oy+w.Rows < dst.Height() {
		dst.DrawTextCenteredWithColor(oy+w.Rows, footer, core.ColorGray)
	}

	switch {
	case w.Phase == sim.PhaseVictory:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Final score: %d  R: restart", snap.TotalScore))
	case w.Phase == sim.PhaseGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R: restart", snap.Score))
	case w.Phase == sim.PhaseTransition:
		renderOverlay(dst, fmt.Sprintf("Level %d cleared!", w.Level+1), fmt.Sprintf("Score: %d", snap.TotalScore))
	case snap.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	w := snap.World
	p := w.Player
	hud := fmt.Sprintf(" HP %d  Bombs %d/%d  Fire %d  Speed %d  Level %d/%d  Enemies %d  Score %d",
		p.HP, p.Bombs, p.MaxBombs, p.Radius, p.Speed, w.Level+1, w.Levels, w.AliveEnemies(), snap.Score)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func drawCell(dst *core.Screen, x, y int, glyph string, c core.Color) {
	dst.DrawTextWithColor(x, y, glyph, c)
}

func cellPos(c sim.Cell, ox, oy int) (int, int) {
	return ox + c.X*cellWidth, oy + c.Y
}

// pixelPos maps an entity's pixel origin to screen coordinates. The
// horizontal axis keeps half-cell precision.
func pixelPos(x, y, tileSize, ox, oy int) (int, int) {
	return ox + (x*cellWidth+tileSize/2)/tileSize, oy + (y+tileSize/2)/tileSize
}

func renderTiles(dst *core.Screen, w sim.Snapshot, ox, oy int) {
	for y, row := range w.Tiles {
		for x, t := range row {
			sx, sy := cellPos(sim.Cell{X: x, Y: y}, ox, oy)
			switch t.Type {
			case sim.TileUnbreakable:
				drawCell(dst, sx, sy, "██", core.ColorGray)
			case sim.TileBreakable:
				if t.Hit {
					drawCell(dst, sx, sy, "░░", core.ColorOrange)
				} else {
					drawCell(dst, sx, sy, "▓▓", core.ColorYellow)
				}
			}
		}
	}
}

func renderExit(dst *core.Screen, w sim.Snapshot, ox, oy int) {
	if w.ExitHidden || w.Phase != sim.PhasePlaying {
		return
	}
	c := core.ColorGray
	if w.ExitOpen {
		c = core.ColorBrightGreen
	}
	sx, sy := cellPos(w.Exit, ox, oy)
	drawCell(dst, sx, sy, "[]", c)
}

func renderPickups(dst *core.Screen, w sim.Snapshot, ox, oy int) {
	for _, pu := range w.Pickups {
		if pu.Hidden {
			continue
		}
		c := core.ColorBrightCyan
		if pu.Type.ScoreOnly() {
			c = core.ColorBrightMagenta
		}
		sx, sy := cellPos(pu.Cell, ox, oy)
		drawCell(dst, sx, sy, pickupGlyphs[pu.Type], c)
	}
}

func renderExplosions(dst *core.Screen, w sim.Snapshot, ox, oy int) {
	for _, e := range w.Explosions {
		for _, c := range e.Cells {
			sx, sy := cellPos(c, ox, oy)
			if c == e.Origin {
				drawCell(dst, sx, sy, "**", core.ColorBrightRed)
			} else {
				drawCell(dst, sx, sy, "**", core.ColorOrange)
			}
		}
	}
}

func renderBombs(dst *core.Screen, w sim.Snapshot, ox, oy int) {
	c := core.ColorRed
	if w.Tick/8%2 == 0 {
		c = c.Bright()
	}
	for _, b := range w.Bombs {
		sx, sy := cellPos(b.Cell, ox, oy)
		drawCell(dst, sx, sy, "()", c)
	}
}

func renderEnemies(dst *core.Screen, w sim.Snapshot, ox, oy int) {
	for _, e := range w.Enemies {
		if e.Damaged && e.Alive && w.Tick/4%2 == 1 {
			continue
		}
		glyph, c := "oo", core.ColorMagenta
		if e.Kind == sim.Denkyun {
			glyph, c = "OO", core.ColorCyan
		}
		if !e.Alive {
			glyph, c = "xx", core.ColorGray
		}
		sx, sy := pixelPos(e.X, e.Y, w.TileSize, ox, oy)
		drawCell(dst, sx, sy, glyph, c)
	}
}

func renderPlayer(dst *core.Screen, w sim.Snapshot, ox, oy int, c core.Color) {
	p := w.Player
	if w.Phase != sim.PhasePlaying {
		return
	}
	if p.Damaged && p.Alive && w.Tick/4%2 == 1 {
		return
	}
	glyph := "@@"
	switch p.State {
	case sim.StateDying:
		glyph, c = "xx", core.ColorRed
	case sim.StateWinning:
		glyph = "^^"
	}
	sx, sy := pixelPos(p.X, p.Y, w.TileSize, ox, oy)
	drawCell(dst, sx, sy, glyph, c)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-5)/2, boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredWithColor(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}
