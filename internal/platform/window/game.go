// Package window hosts the game in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/fixonz/malakainvadors/internal/audio"
	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
	"github.com/fixonz/malakainvadors/internal/logging"
	"github.com/fixonz/malakainvadors/internal/platform"
	"github.com/fixonz/malakainvadors/internal/platform/scene"
)

const glyphWidth = 7

var background = color.RGBA{R: 8, G: 8, B: 20, A: 255}

var bindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionConfirm: {ebiten.KeyEnter},
	core.ActionBack:    {ebiten.KeyEscape, ebiten.KeyB},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionQuit:    {ebiten.KeyQ},
}

func keyState(a core.Action) (down, justPressed bool) {
	for _, k := range bindings[a] {
		down = down || ebiten.IsKeyPressed(k)
		justPressed = justPressed || inpututil.IsKeyJustPressed(k)
	}
	return down, justPressed
}

// Options configures the window host.
type Options struct {
	Store  engine.ScoreStore
	Audio  audio.Player
	Logger *log.Logger
	Config core.RuntimeConfig
}

// Game implements ebiten.Game around a machine.
type Game struct {
	machine  *engine.Machine
	input    *scene.InputMapper
	handlers platform.Handlers
	store    engine.ScoreStore
	logger   *log.Logger
	tickMs   float64
	width    int
	height   int
	wg       sync.WaitGroup
}

// NewGame wires a machine to the window host.
func NewGame(machine *engine.Machine, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	player := opts.Audio
	if player == nil {
		player = audio.Silent{}
	}
	snap := machine.Snapshot()
	return &Game{
		machine:  machine,
		width:    int(snap.FieldWidth),
		height:   int(snap.FieldHeight),
		input:    scene.NewInputMapper(),
		handlers: platform.Handlers{player, logging.NewEventSink(logger)},
		store:    opts.Store,
		logger:   logger,
		tickMs:   opts.Config.TickMs(),
	}
}

// Update advances the simulation by one fixed tick. Ebitengine calls it
// at the configured TPS, catching up with extra calls after a stall.
func (g *Game) Update() error {
	in := g.input.Frame(keyState)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	events := g.machine.Step(g.tickMs, in)
	g.handlers.Handle(events)
	if g.store != nil {
		for _, entry := range platform.ScoresToSave(events) {
			g.save(entry)
		}
	}
	return nil
}

func (g *Game) save(entry engine.HighScore) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := g.store.SaveScore(entry); err != nil {
			g.logger.Error("failed to save score", "err", err)
			return
		}
		g.logger.Info("score saved", "name", entry.Name, "score", entry.Score)
	}()
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	sc := scene.Build(g.machine.Snapshot())

	for _, r := range sc.Rects {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(r.Color), false)
	}
	for _, l := range sc.Labels {
		x := int(l.X)
		if l.Centered {
			x = (int(sc.Width) - len(l.Text)*glyphWidth) / 2
		}
		text.Draw(screen, l.Text, basicfont.Face7x13, x, int(l.Y), rgba(l.Color))
	}
}

// Layout keeps the logical screen at field size; Ebitengine scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Wait blocks until pending score writes finish.
func (g *Game) Wait() {
	g.wg.Wait()
}

func rgba(c core.Color) color.Color {
	if named, ok := colornames.Map[c.Name()]; ok {
		return named
	}
	return color.White
}

// Run opens the window and blocks until it is closed.
func Run(machine *engine.Machine, opts Options) error {
	g := NewGame(machine, opts)

	tps := opts.Config.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(engine.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(g)
	g.Wait()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
