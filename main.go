package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/shinobi-duel/assets"
	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fonts"
	"github.com/automoto/shinobi-duel/render"
	"github.com/automoto/shinobi-duel/scenes"
	"github.com/automoto/shinobi-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	duel    *scenes.Duel
	watcher *animations.Watcher
}

func NewGame(opts scenes.Options, watcher *animations.Watcher) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}
	duel, err := scenes.NewDuel(opts)
	if err != nil {
		return nil, err
	}
	return &Game{duel: duel, watcher: watcher}, nil
}

func (g *Game) Update() error {
	g.pollRoster()

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	g.duel.Update(1 / float64(ebiten.TPS()))
	return nil
}

// pollRoster applies hot-reloaded character files without blocking the frame.
func (g *Game) pollRoster() {
	if g.watcher == nil {
		return
	}
	select {
	case roster := <-g.watcher.Reloads:
		if err := g.duel.ReloadRoster(roster); err != nil {
			log.Printf("Roster reload rejected: %v", err)
			return
		}
		log.Printf("Roster reloaded: %v", roster.Names())
	case err := <-g.watcher.Errors:
		log.Printf("Roster reload failed: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawDuel(screen, g.duel.Snapshot())
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func loadRoster(dir string) (*animations.Roster, error) {
	if dir == "" {
		return assets.LoadRoster()
	}
	return animations.LoadRoster(os.DirFS(dir), ".")
}

func main() {
	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings, err := systems.LoadSettings()
	if err != nil || settings == nil {
		settings = systems.DefaultSettings()
	}

	difficulty := flag.String("difficulty", settings.Difficulty, "Bot difficulty (easy, normal, hard)")
	seed := flag.Int64("seed", settings.Seed, "Seed for the bot's decisions")
	rosterDir := flag.String("roster", "", "Directory of character YAML files (empty = embedded roster)")
	watch := flag.Bool("watch", false, "Reload the -roster directory when its files change")
	arenaName := flag.String("arena", assets.DefaultArena, "Embedded arena map")
	flag.Parse()

	diff, ok := config.ParseBotDifficulty(*difficulty)
	if !ok {
		log.Fatalf("Unknown difficulty %q", *difficulty)
	}

	roster, err := loadRoster(*rosterDir)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	arena, err := assets.LoadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena %q: %v", *arenaName, err)
	}

	var watcher *animations.Watcher
	if *watch {
		if *rosterDir == "" {
			log.Fatal("-watch needs -roster")
		}
		watcher, err = animations.NewWatcher(*rosterDir)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *rosterDir, err)
		}
		defer watcher.Close()
	}

	ebiten.SetWindowTitle("Shinobi Duel")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetTPS(config.C.FPS)
	systems.ApplySavedSettings(settings)

	game, err := NewGame(scenes.Options{
		Roster:      roster,
		Arena:       arena,
		Controllers: [2]scenes.Controller{scenes.ControlHuman, scenes.ControlBot},
		Difficulty:  diff,
		Seed:        *seed,
		Keyboard:    true,
	}, watcher)
	if err != nil {
		log.Fatalf("Failed to start duel: %v", err)
	}

	runErr := ebiten.RunGame(game)

	settings.Difficulty = diff.String()
	settings.Seed = *seed
	settings.DebugHitboxes = config.Debug.ShowHitboxes
	if err := systems.SaveSettings(settings); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
