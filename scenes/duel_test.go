package scenes

import (
	"errors"
	"testing"

	"github.com/automoto/shinobi-duel/assets"
	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func newDuel(t *testing.T, opts Options) *Duel {
	t.Helper()
	roster, err := assets.LoadRoster()
	require.NoError(t, err)
	opts.Roster = roster
	d, err := NewDuel(opts)
	require.NoError(t, err)
	return d
}

func TestNewDuelNeedsRoster(t *testing.T) {
	_, err := NewDuel(Options{})
	assert.ErrorIs(t, err, ErrNoRoster)
}

func TestNewDuelUnknownCharacter(t *testing.T) {
	roster, err := assets.LoadRoster()
	require.NoError(t, err)
	_, err = NewDuel(Options{Roster: roster, Characters: [2]string{"naruto", "kakashi"}})
	assert.True(t, errors.Is(err, animations.ErrUnknownCharacter))
}

func TestDefaultsPutFightersAtSpawns(t *testing.T) {
	d := newDuel(t, Options{Controllers: [2]Controller{ControlIdle, ControlIdle}})
	a, b := d.Fighter(cfg.SideA), d.Fighter(cfg.SideB)

	assert.Equal(t, "naruto", a.Name)
	assert.Equal(t, "sasuke", b.Name)
	assert.Equal(t, 150.0, a.X)
	assert.True(t, a.FacingRight)
	assert.Equal(t, 1000.0, b.X)
	assert.False(t, b.FacingRight)
	assert.Nil(t, d.Fighter(cfg.SideNone))
}

func TestArenaFromTiledMap(t *testing.T) {
	arena, err := assets.LoadArena("")
	require.NoError(t, err)
	d := newDuel(t, Options{Arena: arena, Controllers: [2]Controller{ControlIdle, ControlIdle}})

	assert.Equal(t, fighter.Arena{GroundY: 350, Left: 60, Right: 1140, Top: 230, Bottom: 490, ScreenW: 1200}, d.Arena())
	assert.Equal(t, 150.0, d.Fighter(cfg.SideA).X)
	assert.Equal(t, 1000.0, d.Fighter(cfg.SideB).X)
}

func TestHumanIntentMovesSideA(t *testing.T) {
	d := newDuel(t, Options{Controllers: [2]Controller{ControlHuman, ControlIdle}})
	require.True(t, d.SetIntent(cfg.SideA, components.IntentData{Move: 1}))
	assert.False(t, d.SetIntent(cfg.SideB, components.IntentData{Move: 1}))

	for i := 0; i < 60; i++ {
		d.Update(tick)
	}
	assert.InDelta(t, 350, d.Fighter(cfg.SideA).X, 1e-6)
	assert.Equal(t, cfg.Run, d.Fighter(cfg.SideA).State())
}

func TestSeededBotDuelIsReproducible(t *testing.T) {
	run := func() Result {
		d := newDuel(t, Options{
			Controllers: [2]Controller{ControlBot, ControlBot},
			Difficulty:  cfg.BotDifficultyHard,
			Seed:        11,
		})
		for i := 0; i < 1800 && !d.Finished(); i++ {
			d.Update(tick)
		}
		return d.Result()
	}
	assert.Equal(t, run(), run())
}

func TestResetRestoresTheMatch(t *testing.T) {
	d := newDuel(t, Options{Controllers: [2]Controller{ControlHuman, ControlBot}, Seed: 3})
	a := d.Fighter(cfg.SideA)

	d.SetIntent(cfg.SideA, components.IntentData{Move: 1})
	for i := 0; i < 30; i++ {
		d.Update(tick)
	}
	a.TakeDamage(40, true, cfg.DamageHeavy)
	d.SetPaused(true)

	d.Reset()
	assert.Same(t, a, d.Fighter(cfg.SideA), "fighters are reset in place")
	assert.Equal(t, 150.0, a.X)
	assert.Equal(t, 100, a.Health)
	assert.Equal(t, cfg.Idle, a.State())
	assert.False(t, d.Paused())

	res := d.Result()
	assert.False(t, res.Finished)
	assert.Zero(t, res.Ticks)
	assert.Equal(t, cfg.SideNone, res.Winner)

	// The held intent is gone too
	d.Update(tick)
	assert.Equal(t, 150.0, a.X)
}

func TestResultReportsWinner(t *testing.T) {
	d := newDuel(t, Options{Controllers: [2]Controller{ControlIdle, ControlIdle}})
	d.Fighter(cfg.SideB).TakeDamage(100, true, cfg.DamageHeavy)
	d.Update(tick)

	res := d.Result()
	assert.True(t, res.Finished)
	assert.Equal(t, cfg.SideA, res.Winner)
	assert.Equal(t, "naruto", res.WinnerName())
	assert.Equal(t, [2]int{100, 0}, res.Health)
	assert.Equal(t, [2]string{"naruto", "sasuke"}, res.Names)
}

func TestSnapshotIsACopy(t *testing.T) {
	d := newDuel(t, Options{Controllers: [2]Controller{ControlHuman, ControlIdle}})
	d.Fighter(cfg.SideA).Chakra = 100
	d.SetIntent(cfg.SideA, components.IntentData{Attack: cfg.AttackSpecialKind})

	var snap DuelSnapshot
	for i := 0; i < 120 && len(snap.Orbs) == 0; i++ {
		d.Update(tick)
		snap = d.Snapshot()
	}
	require.Len(t, snap.Orbs, 1)
	x := snap.Orbs[0].X
	ticks := snap.Match.Ticks

	d.Update(tick)
	assert.Equal(t, x, snap.Orbs[0].X)
	assert.Equal(t, ticks, snap.Match.Ticks)
	assert.Greater(t, d.Snapshot().Orbs[0].X, x)
	assert.Equal(t, "naruto", snap.Fighters[cfg.SideA].Name)
}

func TestReloadRoster(t *testing.T) {
	d := newDuel(t, Options{Controllers: [2]Controller{ControlIdle, ControlIdle}})
	roster, err := assets.LoadRoster()
	require.NoError(t, err)

	require.NoError(t, d.ReloadRoster(roster))
	c, err := roster.Character("naruto")
	require.NoError(t, err)
	assert.Same(t, c, d.Fighter(cfg.SideA).Character())

	empty := animations.NewRoster()
	assert.Error(t, d.ReloadRoster(empty))
	assert.Same(t, c, d.Fighter(cfg.SideA).Character(), "a failed reload changes nothing")
}

func TestParseController(t *testing.T) {
	for name, want := range map[string]Controller{"human": ControlHuman, "bot": ControlBot, "idle": ControlIdle} {
		got, ok := ParseController(name)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := ParseController("robot")
	assert.False(t, ok)
}
