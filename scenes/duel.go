package scenes

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/automoto/shinobi-duel/projectile"
	"github.com/automoto/shinobi-duel/shared/leveldata"
	"github.com/automoto/shinobi-duel/systems"
	"github.com/automoto/shinobi-duel/systems/factory"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Controller selects what drives a side.
type Controller int

const (
	ControlHuman Controller = iota // IntentData, set by SetIntent or the keyboard
	ControlBot
	ControlIdle // a training dummy that never acts
)

// ParseController accepts "human", "bot" and "idle".
func ParseController(name string) (Controller, bool) {
	switch name {
	case "human":
		return ControlHuman, true
	case "bot":
		return ControlBot, true
	case "idle":
		return ControlIdle, true
	}
	return ControlIdle, false
}

// Options configures a duel.
type Options struct {
	Roster      *animations.Roster
	Arena       *leveldata.ArenaData // nil uses the configured arena
	Characters  [2]string            // empty names default to naruto and sasuke
	Controllers [2]Controller
	Difficulty  cfg.BotDifficulty
	Seed        int64

	// Keyboard polls ebiten for the human side and handles the pause,
	// restart and hitbox keys.
	Keyboard bool
}

var ErrNoRoster = errors.New("duel needs a roster")

var defaultCharacters = [2]string{"naruto", "sasuke"}

// Duel is one match between side A and side B on a donburi world. It is
// not safe for concurrent use; hand Snapshot values to other goroutines.
type Duel struct {
	ecs      *ecs.ECS
	opts     Options
	arena    fighter.Arena
	spawns   [2]fighter.Spawn
	entities [2]donburi.Entity
}

func (d *Duel) entry(side cfg.Side) *donburi.Entry {
	return d.ecs.World.Entry(d.entities[side])
}

// NewDuel builds the world, the two fighters and their controllers.
func NewDuel(opts Options) (*Duel, error) {
	if opts.Roster == nil {
		return nil, ErrNoRoster
	}
	for i, name := range opts.Characters {
		if name == "" {
			opts.Characters[i] = defaultCharacters[i]
		}
	}

	d := &Duel{opts: opts}
	d.arena, d.spawns = resolveArena(opts.Arena)
	d.configure()

	for _, side := range []cfg.Side{cfg.SideA, cfg.SideB} {
		char, err := opts.Roster.Character(opts.Characters[side])
		if err != nil {
			return nil, fmt.Errorf("side %d: %w", side, err)
		}
		f, err := fighter.New(char, d.arena, d.spawns[side])
		if err != nil {
			return nil, fmt.Errorf("side %d: %w", side, err)
		}
		d.entities[side] = factory.CreateFighter(d.ecs, f, side, d.spawns[side]).Entity()
	}
	d.attachControllers()
	return d, nil
}

func resolveArena(data *leveldata.ArenaData) (fighter.Arena, [2]fighter.Spawn) {
	var spawns [2]fighter.Spawn
	for i, s := range cfg.Arena.Spawns {
		spawns[i] = fighter.Spawn{X: s.X, FacingRight: s.FacingRight}
	}
	if data == nil {
		return fighter.DefaultArena(), spawns
	}
	for _, sp := range data.Spawns {
		if sp.Side == int(cfg.SideA) || sp.Side == int(cfg.SideB) {
			spawns[sp.Side] = fighter.Spawn{X: sp.X, FacingRight: sp.FacingRight}
		}
	}
	return fighter.ArenaFromData(data), spawns
}

func (d *Duel) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	if d.opts.Keyboard {
		ecs.AddSystem(systems.UpdateInput)
		ecs.AddSystem(systems.UpdatePause)
		ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateKeyboardIntents))
	}

	// Game systems wrapped with pause and match-over checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateIntents))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBots))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFighters))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateOrbs))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))

	// Match system runs after a decision too, but not while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMatch))

	d.ecs = ecs

	factory.CreateSpace(d.ecs, int(d.arena.ScreenW), cfg.C.Height, 16, 16)
	factory.CreateMatch(d.ecs)
	systems.GetOrCreatePause(d.ecs)
}

func (d *Duel) attachControllers() {
	for _, side := range []cfg.Side{cfg.SideA, cfg.SideB} {
		e := d.entry(side)
		switch d.opts.Controllers[side] {
		case ControlHuman:
			factory.AttachHuman(e)
		case ControlBot:
			rng := rand.New(rand.NewSource(d.opts.Seed + int64(side)))
			factory.AttachBot(e, rng, cfg.BotTuning(d.opts.Difficulty))
		}
	}
}

// Update advances the duel by dt seconds of simulated time.
func (d *Duel) Update(dt float64) {
	systems.SetDeltaTime(d.ecs, dt)
	d.ecs.Update()

	if d.opts.Keyboard && systems.RestartRequested(d.ecs) {
		d.Reset()
	}
}

// Reset restarts the match in place: fighters back at their spawns, orbs
// gone, bots reseeded, match cleared and unpaused.
func (d *Duel) Reset() {
	for _, side := range []cfg.Side{cfg.SideA, cfg.SideB} {
		e := d.entry(side)
		components.Fighter.Get(e).Reset(d.spawns[side])

		if e.HasComponent(components.Intent) {
			components.Intent.SetValue(e, components.IntentData{})
		}
		if e.HasComponent(components.Bot) {
			bot := components.Bot.Get(e)
			rng := rand.New(rand.NewSource(d.opts.Seed + int64(side)))
			bot.Policy.Reset(rng)
		}
	}

	var orbs []*donburi.Entry
	tags.Orb.Each(d.ecs.World, func(e *donburi.Entry) {
		orbs = append(orbs, e)
	})
	for _, e := range orbs {
		factory.RemoveOrb(d.ecs, e)
	}

	if entry, ok := components.Match.First(d.ecs.World); ok {
		components.Match.SetValue(entry, components.MatchData{
			State:  cfg.MatchStatePlaying,
			Winner: cfg.SideNone,
		})
	}
	systems.SetPaused(d.ecs, false)
	systems.UpdateObjects(d.ecs)
}

// ReloadRoster swaps both fighters onto freshly loaded animation tables.
// The match keeps running.
func (d *Duel) ReloadRoster(r *animations.Roster) error {
	var chars [2]*animations.Character
	for _, side := range []cfg.Side{cfg.SideA, cfg.SideB} {
		c, err := r.Character(d.opts.Characters[side])
		if err != nil {
			return err
		}
		chars[side] = c
	}
	for side, c := range chars {
		components.Fighter.Get(d.entry(cfg.Side(side))).SetCharacter(c)
	}
	d.opts.Roster = r
	return nil
}

// Fighter returns side's fighter.
func (d *Duel) Fighter(side cfg.Side) *fighter.Fighter {
	if side != cfg.SideA && side != cfg.SideB {
		return nil
	}
	return components.Fighter.Get(d.entry(side)).Fighter
}

// SetIntent drives a human-controlled side.
func (d *Duel) SetIntent(side cfg.Side, intent components.IntentData) bool {
	return systems.SetIntent(d.ecs, side, intent)
}

func (d *Duel) SetPaused(paused bool) { systems.SetPaused(d.ecs, paused) }
func (d *Duel) Paused() bool          { return systems.GetOrCreatePause(d.ecs).IsPaused }
func (d *Duel) Finished() bool        { return systems.IsMatchFinished(d.ecs) }
func (d *Duel) ECS() *ecs.ECS         { return d.ecs }
func (d *Duel) Arena() fighter.Arena  { return d.arena }

// Result summarises the match so far.
type Result struct {
	Finished bool
	Winner   cfg.Side
	Names    [2]string
	Health   [2]int
	Elapsed  float64
	Ticks    int
	Stats    [2]components.SideStats
}

// WinnerName is the winning fighter's name, or "" before a decision.
func (r Result) WinnerName() string {
	if r.Winner != cfg.SideA && r.Winner != cfg.SideB {
		return ""
	}
	return r.Names[r.Winner]
}

func (d *Duel) Result() Result {
	match := components.Match.Get(components.Match.MustFirst(d.ecs.World))
	res := Result{
		Finished: match.State == cfg.MatchStateFinished,
		Winner:   match.Winner,
		Elapsed:  match.Elapsed,
		Ticks:    match.Ticks,
		Stats:    match.Stats,
	}
	for _, side := range []cfg.Side{cfg.SideA, cfg.SideB} {
		f := components.Fighter.Get(d.entry(side))
		res.Names[side] = f.Name
		res.Health[side] = f.Health
	}
	return res
}

// DuelSnapshot is a deep copy of the drawable state.
type DuelSnapshot struct {
	Fighters     [2]fighter.View
	Orbs         []projectile.View
	Match        components.MatchData
	Paused       bool
	ShowHitboxes bool
	Arena        fighter.Arena
}

func (d *Duel) Snapshot() DuelSnapshot {
	snap := DuelSnapshot{
		Match:        *components.Match.Get(components.Match.MustFirst(d.ecs.World)),
		Paused:       d.Paused(),
		ShowHitboxes: cfg.Debug.ShowHitboxes,
		Arena:        d.arena,
	}
	for _, side := range []cfg.Side{cfg.SideA, cfg.SideB} {
		snap.Fighters[side] = components.Fighter.Get(d.entry(side)).View()
	}
	tags.Orb.Each(d.ecs.World, func(e *donburi.Entry) {
		if v, ok := components.Orb.Get(e).View(); ok {
			snap.Orbs = append(snap.Orbs, v)
		}
	})
	return snap
}
