package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"oddstream.games/digest/sound"
	"oddstream.games/digest/splash"
	"oddstream.games/digest/term"
)

var (
	DebugMode                 bool
	TermMode                  bool
	Mute                      bool
	KeepOnEnd                 bool
	WindowWidth, WindowHeight int
	RotationRadius            float64
	CircleRadius              float64
	RotationMillis            int
	SplashMillis              int
	CircleColors              string
	BackgroundColor           string
	SingleCircleColor         string
	SnapshotPath              string
	theDigestFonts            *DigestFonts
)

func init() {
	flag.BoolVar(&DebugMode, "debug", false, "turn debug logging and overlay on")
	flag.BoolVar(&TermMode, "term", false, "run in the terminal instead of a window")
	flag.BoolVar(&Mute, "mute", false, "turn sound off")
	flag.BoolVar(&KeepOnEnd, "keep", false, "keep the splash after the transition ends")
	flag.IntVar(&WindowWidth, "width", 1080/2, "width of window in pixels")
	flag.IntVar(&WindowHeight, "height", 1920/2, "height of window in pixels")
	flag.Float64Var(&RotationRadius, "rotation-radius", splash.DefaultRotationRadius, "radius the circles rotate on")
	flag.Float64Var(&CircleRadius, "circle-radius", splash.DefaultCircleRadius, "radius of each circle")
	flag.IntVar(&RotationMillis, "rotation-ms", int(splash.DefaultRotationDuration.Milliseconds()), "milliseconds for one rotation")
	flag.IntVar(&SplashMillis, "splash-ms", int(splash.DefaultSplashDuration.Milliseconds()), "milliseconds for merge, collapse and expand together")
	flag.StringVar(&CircleColors, "colors", "", "comma separated circle colours, eg #ff2424,#37ea00")
	flag.StringVar(&BackgroundColor, "background", "", "splash background colour")
	flag.StringVar(&SingleCircleColor, "single", "", "colour of the merged circle")
	flag.StringVar(&SnapshotPath, "snapshot", "", "write the first frame to this PNG file and exit")
}

func saveSnapshot(cfg splash.Config, path string) error {
	a, err := splash.New(cfg)
	if err != nil {
		return err
	}
	a.SetSize(float64(WindowWidth), float64(WindowHeight))
	return splash.SavePNG(path, WindowWidth, WindowHeight, a.Frame())
}

func main() {
	flag.Parse()

	if DebugMode {
		for i, a := range os.Args {
			fmt.Println(i, a)
		}
	}

	cfg, err := configFromFlags()
	if err != nil {
		log.Fatal(err)
	}

	if SnapshotPath != "" {
		if err := saveSnapshot(cfg, SnapshotPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	if TermMode {
		if err := term.Run(cfg, Mute, DebugMode); err != nil {
			log.Fatal(err)
		}
		return
	}

	if Mute {
		sound.SetVolume(0)
	} else {
		sound.Init()
	}
	theDigestFonts = NewDigestFonts()

	game, err := NewGame(cfg, theDigestFonts)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("News Digest")
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
