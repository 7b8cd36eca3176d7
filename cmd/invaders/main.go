package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/alien_invasion/assets"
	"github.com/spacehole-rogue/alien_invasion/internal/audio"
	"github.com/spacehole-rogue/alien_invasion/internal/game"
	"github.com/spacehole-rogue/alien_invasion/internal/render"
	"github.com/spacehole-rogue/alien_invasion/internal/settings"
	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

const (
	title = "Alien Invasion"

	cellWidth  = 16
	cellHeight = 16
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	sim      *game.Sim
	base     settings.Base
	sound    *audio.SoundManager
	sprites  *render.Sprites
	renderer *render.GridRenderer
	hud      *render.CellBuffer

	projectile color.RGBA
	snap       game.Snapshot
}

func NewGame(base *settings.Base, sound *audio.SoundManager) *Game {
	atlas := render.NewFontAtlas()
	cols := max(base.ScreenWidth/cellWidth, 1)
	rows := max(base.ScreenHeight/cellHeight, 1)

	g := &Game{
		sim:        game.NewSim(base),
		base:       *base,
		sound:      sound,
		sprites:    render.NewSprites(base.ShipWidth, base.ShipHeight, base.EnemyWidth, base.EnemyHeight),
		renderer:   render.NewGridRenderer(atlas, cellWidth, cellHeight),
		hud:        render.NewCellBuffer(cols, rows),
		projectile: base.ProjectileRGBA(),
	}
	g.snap = g.sim.Snapshot()
	return g
}

// readInput polls the keyboard and mouse for one tick.
func (g *Game) readInput() game.Input {
	in := game.Input{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Start:     inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.Start = true
		in.StartAt = &world.Point{X: mx, Y: my}
	}
	return in
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(game.Summary(g.snap)); err != nil {
			log.Printf("copy summary: %v", err)
		} else {
			g.sim.Log.Add("Run summary copied to clipboard.", game.MsgInfo, g.sim.Ticks())
		}
	}

	wasActive := g.snap.Active
	g.snap = g.sim.Step(g.readInput())
	g.sound.HandleEvents(g.sim.DrainEvents())

	if g.snap.Active != wasActive {
		if g.snap.Active {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}

	render.ComposeHUD(g.hud, g.snap, g.sim.Log.Recent(render.CommsRows))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawScene(screen, g.sprites, g.snap, g.projectile)
	if !g.snap.Active {
		x, y := render.PlayLabelOrigin(g.snap, cellWidth, cellHeight)
		g.renderer.DrawText(screen, render.PlayLabel, render.ColorWhite, x, y)
	}
	g.renderer.Draw(screen, g.hud)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return max(g.base.ScreenWidth, 1), max(g.base.ScreenHeight, 1)
}

func main() {
	configPath := flag.String("config", "", "load settings from a JSON file instead of the built-in preset")
	preset := flag.String("preset", "default", "built-in settings preset (default, arcade)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	base, err := assets.LoadSettings(*preset, *configPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	sound := audio.NewSoundManager()
	if !*mute {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sound.Cleanup()

	ebiten.SetWindowSize(max(base.ScreenWidth, 1), max(base.ScreenHeight, 1))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(base.TicksPerSecond)

	if err := ebiten.RunGame(NewGame(base, sound)); err != nil {
		log.Fatal(err)
	}
}
