package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"oddstream.games/digest/sound"
	"oddstream.games/digest/splash"
)

// DigestGame stacks the content scene under the splash scene
type DigestGame struct {
	scenes *SceneManager
	splash *SplashScene // nil once the splash has ended
	tasks  *TaskQueue
	fonts  *DigestFonts
	loaded bool
}

// NewGame generates a new Game object and starts loading the content.
func NewGame(cfg splash.Config, fonts *DigestFonts, opts ...splash.Option) (*DigestGame, error) {
	sc, err := NewSplashScene(cfg, opts...)
	if err != nil {
		return nil, err
	}
	g := &DigestGame{
		scenes: &SceneManager{},
		splash: sc,
		tasks:  NewTaskQueue(16),
		fonts:  fonts,
	}
	g.scenes.Push(sc)
	sc.Animator().SetParent(g.scenes)
	startLoadingData(g.tasks, g.onLoadingDataEnded)
	return g, nil
}

// onLoadingDataEnded puts the content under the splash and starts the transition
func (g *DigestGame) onLoadingDataEnded() {
	if g.loaded {
		return
	}
	g.loaded = true

	content := NewContentScene(g.fonts)
	content.Layout(WindowWidth, WindowHeight)
	g.scenes.Insert(0, content)

	if g.splash == nil {
		return
	}
	err := g.splash.Animator().BeginTransition(splash.ListenerFuncs{
		Start: func() {
			sound.Play("Merge")
			if DebugMode {
				log.Println("splash started")
			}
		},
		Update: func(fraction float64) {
			if DebugMode {
				log.Printf("splash at %.2f%%", fraction*100)
			}
		},
		End: func() {
			sound.Play("Pop")
			if DebugMode {
				log.Println("splash ended")
			}
			// free the scene so that it turns into garbage
			g.splash = nil
		},
	})
	if err != nil {
		log.Println(err)
	}
}

// Layout implements ebiten.Game's Layout.
func (g *DigestGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	WindowWidth = outsideWidth
	WindowHeight = outsideHeight
	return g.scenes.Layout(outsideWidth, outsideHeight)
}

// Update updates the scenes, then runs tasks posted since the last Update.
// Tasks run after the scenes so a transition they begin starts next tick.
func (g *DigestGame) Update() error {
	if inpututil.IsKeyJustReleased(ebiten.KeyBackspace) || inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		if runtime.GOARCH != "wasm" {
			os.Exit(0)
		}
	}

	if err := g.scenes.Update(); err != nil {
		return err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.onLoadingDataEnded()
	}
	g.tasks.RunAll()
	return nil
}

// Draw draws the current game to the given screen.
func (g *DigestGame) Draw(screen *ebiten.Image) {
	g.scenes.Draw(screen)

	if DebugMode && g.splash != nil {
		s := g.splash.Animator().State()
		str := fmt.Sprintf("%v angle %.2f radius %.1f hole %.1f", s.Phase, s.RotationAngle, s.RotationRadius, s.HoleRadius)
		ebitenutil.DebugPrint(screen, str)
	}
}
