package main

import (
	"errors"
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/kiclash/assets"
	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fonts"
	"github.com/automoto/kiclash/records"
	"github.com/automoto/kiclash/scenes"
)

// configFile is overlaid on the defaults when present in the working dir.
const configFile = "kiclash.json"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	session *scenes.Session
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{session: session}
	g.scene = scenes.NewSelectScene(g, session)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen at the selected arena's size.
func (g *Game) Layout(width, height int) (int, int) {
	arena := g.session.FightConfig().Arena
	g.bounds = image.Rect(0, 0, int(arena.Width), int(arena.Height))
	return g.bounds.Dx(), g.bounds.Dy()
}

func loadConfig() (config.Config, error) {
	cfg := *config.C
	if _, err := os.Stat(configFile); err == nil {
		if cfg, err = config.Load(configFile); err != nil {
			return cfg, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := config.LoadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.C = &cfg

	if err := fonts.LoadDefaults(cfg.Display.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	arenas, names, err := assets.LoadArenas()
	if err != nil {
		log.Printf("Warning: using the built-in arena only: %v", err)
	}

	store, err := records.Open(cfg.Records)
	if err != nil {
		log.Printf("Warning: records fall back to memory: %v", err)
		store = records.NewMemoryStore()
	}
	defer store.Close()

	session := scenes.NewSession(cfg, arenas, names, records.NewRecorder(store))

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(session)); err != nil {
		log.Fatal(err)
	}
}
