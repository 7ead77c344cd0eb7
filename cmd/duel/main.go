// Command duel runs a headless match and prints the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/shinobi-duel/assets"
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/scenes"
)

func main() {
	seconds := flag.Float64("seconds", 99, "Match length limit in simulated seconds (0 = until decided)")
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (updates per second)")
	seed := flag.Int64("seed", config.SettingsMenu.DefaultSeed, "Seed for both bots")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty (easy, normal, hard)")
	realtime := flag.Bool("realtime", false, "Pace ticks with the wall clock")
	arenaName := flag.String("arena", assets.DefaultArena, "Embedded arena map")
	sideA := flag.String("a", "bot", "Side A controller (bot, idle)")
	sideB := flag.String("b", "bot", "Side B controller (bot, idle)")
	verbose := flag.Bool("verbose", false, "Log orb spawns and other per-tick events")
	flag.Parse()

	config.Debug.Verbose = *verbose

	diff, ok := config.ParseBotDifficulty(*difficulty)
	if !ok {
		log.Fatalf("Unknown difficulty %q", *difficulty)
	}
	var controllers [2]scenes.Controller
	for i, name := range []string{*sideA, *sideB} {
		c, ok := scenes.ParseController(name)
		if !ok || c == scenes.ControlHuman {
			log.Fatalf("Side %d: controller must be bot or idle, got %q", i, name)
		}
		controllers[i] = c
	}

	roster, err := assets.LoadRoster()
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	arena, err := assets.LoadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena %q: %v", *arenaName, err)
	}

	duel, err := scenes.NewDuel(scenes.Options{
		Roster:      roster,
		Arena:       arena,
		Controllers: controllers,
		Difficulty:  diff,
		Seed:        *seed,
	})
	if err != nil {
		log.Fatalf("Failed to create duel: %v", err)
	}

	maxTicks := int(*seconds * float64(*tickRate))
	loop := scenes.NewGameLoop(duel, *tickRate, *realtime, maxTicks)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping match...")
		loop.Stop()
	}()

	log.Printf("Starting duel on %s (tick rate: %d/s, seed: %d, difficulty: %s)",
		*arenaName, *tickRate, *seed, diff)
	res := loop.Run()
	printResult(res)
}

func printResult(res scenes.Result) {
	if res.Finished {
		fmt.Printf("winner: %s\n", res.WinnerName())
	} else {
		fmt.Println("winner: none (time limit)")
	}
	fmt.Printf("time: %.2fs (%d ticks)\n", res.Elapsed, res.Ticks)
	for side, name := range res.Names {
		s := res.Stats[side]
		fmt.Printf("%-7s hp=%3d hits=%d blocked=%d orbs=%d damage=%d\n",
			name, res.Health[side], s.Hits, s.Blocked, s.OrbsFired, s.Damage)
	}
}
