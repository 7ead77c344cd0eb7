package systems

import (
	"testing"

	"github.com/automoto/shinobi-duel/assets"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/automoto/shinobi-duel/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 1.0 / 60

type testWorld struct {
	ecs  *ecs.ECS
	a, b *fighter.Fighter
	ea   *donburi.Entry
	eb   *donburi.Entry
}

// newTestWorld puts naruto (side A, facing right) at ax and sasuke (side B,
// facing left) at bx, with the duel's system order.
func newTestWorld(t *testing.T, ax, bx float64) *testWorld {
	t.Helper()
	roster, err := assets.LoadRoster()
	require.NoError(t, err)
	naruto, err := roster.Character("naruto")
	require.NoError(t, err)
	sasuke, err := roster.Character("sasuke")
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(WithGameplayChecks(UpdateIntents))
	e.AddSystem(WithGameplayChecks(UpdateBots))
	e.AddSystem(WithGameplayChecks(UpdateFighters))
	e.AddSystem(WithGameplayChecks(UpdateOrbs))
	e.AddSystem(WithGameplayChecks(UpdateObjects))
	e.AddSystem(WithGameplayChecks(UpdateCombat))
	e.AddSystem(WithPauseCheck(UpdateMatch))

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateMatch(e)

	arena := fighter.DefaultArena()
	spawnA := fighter.Spawn{X: ax, FacingRight: true}
	spawnB := fighter.Spawn{X: bx, FacingRight: false}
	a, err := fighter.New(naruto, arena, spawnA)
	require.NoError(t, err)
	b, err := fighter.New(sasuke, arena, spawnB)
	require.NoError(t, err)

	w := &testWorld{ecs: e, a: a, b: b}
	w.ea = factory.CreateFighter(e, a, cfg.SideA, spawnA)
	w.eb = factory.CreateFighter(e, b, cfg.SideB, spawnB)
	return w
}

func (w *testWorld) step(n int) {
	for i := 0; i < n; i++ {
		w.ecs.Update()
	}
}

// stepUntil steps until cond holds, at most limit times.
func (w *testWorld) stepUntil(limit int, cond func() bool) bool {
	for i := 0; i < limit; i++ {
		if cond() {
			return true
		}
		w.ecs.Update()
	}
	return cond()
}

func (w *testWorld) match() *components.MatchData {
	return getMatch(w.ecs)
}
