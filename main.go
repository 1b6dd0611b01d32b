package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/fonts"
	"github.com/automoto/tuxrun/scenes"
	"github.com/automoto/tuxrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, systems.LoadProgress())
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", config.Debug.SkipMenu, "Start the level directly")
	flag.BoolVar(&config.Debug.DrawHitboxes, "hitboxes", config.Debug.DrawHitboxes, "Outline collision boxes")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "Random seed for the level")
	flag.StringVar(&config.Debug.Level, "level", config.Debug.Level, "Level to play, relative to assets/")
	flag.StringVar(&config.Debug.TuningFile, "tuning", config.Debug.TuningFile, "YAML tuning overrides, reloaded on save")
	flag.StringVar(&config.Debug.AssetDir, "assets", config.Debug.AssetDir, "On-disk assets directory for script hot reload")
	flag.Parse()

	if err := config.LoadTuning(config.Debug.TuningFile); err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Tuxrun")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: progress will not be saved: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
