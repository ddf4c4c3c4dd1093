package scene

import (
	"fmt"
	"strings"

	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
)

// Rect is a filled rectangle in field units.
type Rect struct {
	X, Y, W, H float64
	Color      core.Color
}

// Label is a line of text. Y is the text baseline; centered labels ignore X.
type Label struct {
	Text     string
	X, Y     float64
	Color    core.Color
	Centered bool
}

// Scene is everything a frame draws, back to front.
type Scene struct {
	Width, Height float64
	Rects         []Rect
	Labels        []Label
}

// LineHeight is the vertical spacing between stacked labels.
const LineHeight = 20

var barrierColors = [...]core.Color{core.ColorWhite, core.ColorGray, core.ColorRed}

func (s *Scene) rect(x, y, w, h float64, c core.Color) {
	s.Rects = append(s.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c})
}

func (s *Scene) centered(y float64, text string, c core.Color) {
	s.Labels = append(s.Labels, Label{Text: text, Y: y, Color: c, Centered: true})
}

func (s *Scene) label(x, y float64, text string, c core.Color) {
	s.Labels = append(s.Labels, Label{Text: text, X: x, Y: y, Color: c})
}

// Build lays out a snapshot.
func Build(snap engine.Snapshot) Scene {
	s := Scene{Width: snap.FieldWidth, Height: snap.FieldHeight}
	switch snap.Phase {
	case engine.PhaseMenu:
		s.menu(snap)
	case engine.PhaseDifficultySelect:
		s.difficulty(snap)
	case engine.PhasePlaying:
		s.field(snap)
		if snap.Paused {
			s.centered(s.Height/2, "PAUSED", core.ColorBrightYellow)
			s.centered(s.Height/2+LineHeight, "P resume   ESC quit to menu", core.ColorGray)
		}
	case engine.PhaseGameOver:
		s.field(snap)
		s.gameOver(snap)
	case engine.PhaseHighScores:
		s.highScores(snap)
	}
	return s
}

func cursor(text string, selected bool) (string, core.Color) {
	if selected {
		return "> " + text + " <", core.ColorBrightYellow
	}
	return text, core.ColorWhite
}

func (s *Scene) menu(snap engine.Snapshot) {
	y := s.Height / 3
	s.centered(y, strings.ToUpper(engine.Title), core.ColorBrightMagenta)
	y += 3 * LineHeight
	for i, item := range snap.MenuItems {
		text, c := cursor(item, i == snap.MenuIndex)
		s.centered(y, text, c)
		y += 2 * LineHeight
	}
	if len(snap.HighScores) > 0 {
		best := snap.HighScores[0]
		s.centered(y+LineHeight, fmt.Sprintf("HI %s %d", best.Name, best.Score), core.ColorGray)
	}
	s.centered(s.Height-LineHeight, "ARROWS move   SPACE fire   ENTER select   Q quit", core.ColorGray)
}

func (s *Scene) difficulty(snap engine.Snapshot) {
	y := s.Height / 3
	s.centered(y, "SELECT DIFFICULTY", core.ColorBrightCyan)
	y += 3 * LineHeight
	for _, d := range engine.Difficulties {
		text, c := cursor(strings.ToUpper(d.String()), int(d) == snap.MenuIndex)
		s.centered(y, text, c)
		y += 2 * LineHeight
	}
}

func (s *Scene) field(snap engine.Snapshot) {
	for _, b := range snap.Barriers {
		s.rect(b.X, b.Y, b.W, b.H, barrierColors[BarrierWear(b.Health, snap.BarrierMaxHealth)])
	}
	for _, e := range snap.Enemies {
		_, c := EnemyGlyph(e)
		s.rect(e.X, e.Y, e.W, e.H, c)
		if e.Kind == engine.KindBoss && e.MaxHealth > 0 {
			frac := float64(e.Health) / float64(e.MaxHealth)
			s.rect(e.X, e.Y-8, e.W, 4, core.ColorGray)
			s.rect(e.X, e.Y-8, e.W*frac, 4, core.ColorBrightRed)
		}
	}
	for _, p := range snap.PowerUps {
		s.rect(p.X, p.Y, p.Size, p.Size, PowerUpColor(p.Kind))
		s.label(p.X+p.Size/2-3, p.Y+p.Size-5, string(p.Kind.Glyph()), core.ColorDefault)
	}

	p := snap.Player
	s.rect(p.X, p.Y, p.W, p.H, PlayerColor(p))

	for _, b := range snap.Bullets {
		s.rect(b.X, b.Y, b.W, b.H, BulletColor(b))
	}

	s.label(10, 20, fmt.Sprintf("SCORE %06d   LEVEL %d   LIVES %d   %s",
		snap.Score, snap.Level, snap.Lives, strings.ToUpper(snap.Difficulty.String())), core.ColorBrightWhite)
	if name, c := EffectLabel(snap.Effect); name != "" {
		s.label(s.Width-120, 20, fmt.Sprintf("%s %.1fs", name, snap.EffectRemainingMs/1000), c)
	}
}

func (s *Scene) gameOver(snap engine.Snapshot) {
	y := s.Height/2 - 2*LineHeight
	s.centered(y, "GAME OVER", core.ColorBrightRed)
	s.centered(y+2*LineHeight, fmt.Sprintf("FINAL SCORE %d", snap.Score), core.ColorBrightWhite)
	s.centered(y+3*LineHeight, fmt.Sprintf("LEVELS COMPLETED %d", max(snap.Level-1, 0)), core.ColorWhite)
	if snap.LastRank >= 0 {
		s.centered(y+5*LineHeight, fmt.Sprintf("NEW HIGH SCORE #%d", snap.LastRank+1), core.ColorBrightYellow)
	}
	s.centered(y+7*LineHeight, "ENTER to continue", core.ColorGray)
}

func (s *Scene) highScores(snap engine.Snapshot) {
	y := 80.0
	s.centered(y, "HIGH SCORES", core.ColorBrightYellow)
	y += 2 * LineHeight
	if len(snap.HighScores) == 0 {
		s.centered(y, "No scores recorded yet.", core.ColorGray)
	}
	for i, hs := range snap.HighScores {
		line := fmt.Sprintf("%2d. %-12s %8d  L%-3d %s", i+1, hs.Name, hs.Score, hs.Level, hs.Difficulty)
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		s.centered(y, line, c)
		y += LineHeight
	}
	s.centered(s.Height-LineHeight, "ENTER or ESC to return", core.ColorGray)
}
