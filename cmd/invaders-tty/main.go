package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/alien_invasion/assets"
	"github.com/spacehole-rogue/alien_invasion/internal/audio"
	"github.com/spacehole-rogue/alien_invasion/internal/game"
	"github.com/spacehole-rogue/alien_invasion/internal/settings"
	"github.com/spacehole-rogue/alien_invasion/internal/tty"
)

type Game struct {
	screen   tcell.Screen
	sim      *game.Sim
	base     settings.Base
	renderer *tty.Renderer
	controls tty.Controls
	sound    *audio.SoundManager
}

func NewGame(base *settings.Base, sound *audio.SoundManager) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	return &Game{
		screen:   screen,
		sim:      game.NewSim(base),
		base:     *base,
		renderer: tty.NewRenderer(screen),
		sound:    sound,
	}, nil
}

// handleInput returns false when the player quits.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.controls.HandleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if p, ok := g.renderer.ToField(g.base.Playfield(), x, y); ok {
				g.controls.Click(p)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.base.TicksPerSecond))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			sn := g.sim.Step(g.controls.Next())
			g.sound.HandleEvents(g.sim.DrainEvents())
			g.renderer.Draw(sn, g.sim.Log.Recent(1))
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
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

	g, err := NewGame(base, sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	g.run()
	g.cleanup()
	fmt.Println(game.Summary(g.sim.Snapshot()))
}
