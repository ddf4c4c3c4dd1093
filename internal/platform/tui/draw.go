package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
	"github.com/fixonz/malakainvadors/internal/platform/scene"
)

// hudRows are reserved above the playfield.
const hudRows = 1

var banner = []string{
	`  ▄▄▄▄▄▄▄   `,
	` ▄█▀███▀█▄  `,
	`█▀███████▀█ `,
	`▀ ▀▄▄ ▄▄▀ ▀ `,
}

// viewport maps field units onto screen cells.
type viewport struct {
	top    int
	cols   int
	rows   int
	scaleX float64
	scaleY float64
}

func newViewport(s *core.Screen, fieldW, fieldH float64) viewport {
	v := viewport{
		top:  hudRows,
		cols: s.Width(),
		rows: max(s.Height()-hudRows, 1),
	}
	if fieldW > 0 {
		v.scaleX = float64(v.cols) / fieldW
	}
	if fieldH > 0 {
		v.scaleY = float64(v.rows) / fieldH
	}
	return v
}

// cells returns the cell span covered by a field rectangle. Every visible
// rectangle covers at least one cell.
func (v viewport) cells(x, y, w, h float64) (cx, cy, cw, ch int) {
	x0 := int(math.Floor(x * v.scaleX))
	y0 := int(math.Floor(y * v.scaleY))
	x1 := max(int(math.Ceil((x+w)*v.scaleX)), x0+1)
	y1 := max(int(math.Ceil((y+h)*v.scaleY)), y0+1)
	x0 = core.Clamp(x0, 0, v.cols-1)
	x1 = core.Clamp(x1, x0+1, v.cols)
	return x0, y0 + v.top, x1 - x0, y1 - y0
}

func (v viewport) fill(s *core.Screen, x, y, w, h float64, r rune, c core.Color) {
	cx, cy, cw, ch := v.cells(x, y, w, h)
	for row := cy; row < cy+ch; row++ {
		if row < v.top || row >= v.top+v.rows {
			continue
		}
		for col := cx; col < cx+cw; col++ {
			s.SetColored(col, row, r, c)
		}
	}
}

var barrierGlyphs = [...]rune{'█', '▓', '░'}

func barrierGlyph(health, maxHealth int) rune {
	return barrierGlyphs[scene.BarrierWear(health, maxHealth)]
}

// Draw renders a snapshot into s. The high-score phase is drawn by the
// model with a table and is left blank here.
func Draw(s *core.Screen, snap engine.Snapshot) {
	s.Clear()
	switch snap.Phase {
	case engine.PhaseMenu:
		drawMenu(s, snap)
	case engine.PhaseDifficultySelect:
		drawDifficulty(s, snap)
	case engine.PhasePlaying:
		drawField(s, snap)
		if snap.Paused {
			drawPaused(s)
		}
	case engine.PhaseGameOver:
		drawField(s, snap)
		drawGameOver(s, snap)
	}
}

func drawTitle(s *core.Screen, top int) int {
	y := top
	for _, line := range banner {
		s.DrawTextCenteredColored(y, line, core.ColorBrightGreen)
		y++
	}
	y++
	s.DrawTextCenteredColored(y, strings.ToUpper(engine.Title), core.ColorBrightMagenta)
	return y + 2
}

func drawMenu(s *core.Screen, snap engine.Snapshot) {
	y := drawTitle(s, max(s.Height()/2-7, 0))
	for i, item := range snap.MenuItems {
		text, c := "  "+item+"  ", core.ColorWhite
		if i == snap.MenuIndex {
			text, c = "> "+item+" <", core.ColorBrightYellow
		}
		s.DrawTextCenteredColored(y+i*2, text, c)
	}
	if len(snap.HighScores) > 0 {
		best := snap.HighScores[0]
		s.DrawTextCenteredColored(y+len(snap.MenuItems)*2+1, fmt.Sprintf("HI %s %d", best.Name, best.Score), core.ColorGray)
	}
}

func drawDifficulty(s *core.Screen, snap engine.Snapshot) {
	y := max(s.Height()/2-4, 0)
	s.DrawTextCenteredColored(y, "SELECT DIFFICULTY", core.ColorBrightCyan)
	y += 2
	for _, d := range engine.Difficulties {
		text, c := "  "+strings.ToUpper(d.String())+"  ", core.ColorWhite
		if int(d) == snap.MenuIndex {
			text, c = "> "+strings.ToUpper(d.String())+" <", core.ColorBrightYellow
		}
		s.DrawTextCenteredColored(y, text, c)
		y += 2
	}
}

func drawHUD(s *core.Screen, snap engine.Snapshot) {
	hud := fmt.Sprintf(" SCORE %06d  LEVEL %d  LIVES %s  %s",
		snap.Score, snap.Level, strings.Repeat("♥", max(snap.Lives, 0)), strings.ToUpper(snap.Difficulty.String()))
	s.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	if label, c := scene.EffectLabel(snap.Effect); label != "" {
		text := fmt.Sprintf("%s %.1fs ", label, snap.EffectRemainingMs/1000)
		s.DrawTextColored(s.Width()-len([]rune(text)), 0, text, c)
	}
}

func drawField(s *core.Screen, snap engine.Snapshot) {
	drawHUD(s, snap)
	v := newViewport(s, snap.FieldWidth, snap.FieldHeight)

	for _, b := range snap.Barriers {
		v.fill(s, b.X, b.Y, b.W, b.H, barrierGlyph(b.Health, snap.BarrierMaxHealth), core.ColorGray)
	}
	for _, e := range snap.Enemies {
		r, c := scene.EnemyGlyph(e)
		v.fill(s, e.X, e.Y, e.W, e.H, r, c)
	}
	for _, p := range snap.PowerUps {
		v.fill(s, p.X, p.Y, p.Size, p.Size, p.Kind.Glyph(), scene.PowerUpColor(p.Kind))
	}

	p := snap.Player
	v.fill(s, p.X, p.Y, p.W, p.H, 'A', scene.PlayerColor(p))

	for _, b := range snap.Bullets {
		r := '|'
		if b.Enemy {
			r = '!'
		}
		v.fill(s, b.X, b.Y, b.W, b.H, r, scene.BulletColor(b))
	}
}

func drawPaused(s *core.Screen) {
	y := s.Height() / 2
	const boxW = 33
	s.FillRect((s.Width()-boxW)/2, y-2, boxW, 5, ' ', core.ColorDefault)
	s.DrawBox((s.Width()-boxW)/2, y-2, boxW, 5, core.ColorBrightYellow)
	s.DrawTextCenteredColored(y-1, "  PAUSED  ", core.ColorBrightYellow)
	s.DrawTextCenteredColored(y+1, " p resume · esc quit to menu ", core.ColorGray)
}

func drawGameOver(s *core.Screen, snap engine.Snapshot) {
	y := s.Height()/2 - 3
	s.DrawTextCenteredColored(y, "  GAME OVER  ", core.ColorBrightRed)
	s.DrawTextCenteredColored(y+2, fmt.Sprintf(" FINAL SCORE %d ", snap.Score), core.ColorBrightWhite)
	s.DrawTextCenteredColored(y+3, fmt.Sprintf(" LEVELS COMPLETED %d ", max(snap.Level-1, 0)), core.ColorWhite)
	if snap.LastRank >= 0 {
		s.DrawTextCenteredColored(y+5, fmt.Sprintf(" NEW HIGH SCORE #%d ", snap.LastRank+1), core.ColorBrightYellow)
	}
	s.DrawTextCenteredColored(y+7, " enter to continue ", core.ColorGray)
}
