package systems

import (
	"testing"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/automoto/shinobi-duel/projectile"
	"github.com/automoto/shinobi-duel/systems/factory"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestLightHitConnectsOncePerSwing(t *testing.T) {
	w := newTestWorld(t, 100, 150)
	require.NoError(t, w.a.Attack(cfg.AttackLight))

	require.True(t, w.stepUntil(60, w.a.AttackHit))
	assert.Equal(t, 95, w.b.Health)
	assert.Equal(t, cfg.HitLight, w.b.State())
	assert.Equal(t, 250.0, w.b.KnockbackVX, "pushed away from the attacker")
	assert.Equal(t, 10.0, w.a.Gauge)

	stats := w.match().Stats[cfg.SideA]
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 5, stats.Damage)

	w.stepUntil(120, func() bool { return !w.a.IsAttacking() })
	assert.Equal(t, 95, w.b.Health)
	assert.Equal(t, 10.0, w.a.Gauge)
}

func TestBlockedHitIsAbsorbed(t *testing.T) {
	w := newTestWorld(t, 100, 150)
	w.b.StartBlock()
	require.True(t, w.b.IsBlocking())
	require.NoError(t, w.a.Attack(cfg.AttackLight))

	require.True(t, w.stepUntil(60, w.a.AttackHit))
	assert.Equal(t, 100, w.b.Health)
	assert.True(t, w.b.IsBlocking())
	assert.Equal(t, 10.0, w.a.Gauge, "a guarded hit still charges the gauge")

	stats := w.match().Stats[cfg.SideA]
	assert.Equal(t, 0, stats.Hits)
	assert.Equal(t, 1, stats.Blocked)
}

func TestOrbHitsOnlyTheOpponent(t *testing.T) {
	w := newTestWorld(t, 320, 500)
	orb := projectile.New(300, 380, 1, w.a, w.a.Character().Projectile, 1200)
	factory.CreateOrb(w.ecs, orb, cfg.SideA)

	w.step(60)
	assert.Equal(t, 100, w.a.Health, "the owner's side is never hit")
	assert.Equal(t, 80, w.b.Health)
	assert.True(t, orb.HasHit)
	assert.Zero(t, CountOrbs(w.ecs))
	assert.Zero(t, countOrbEntities(w))
	assert.Zero(t, w.a.Gauge)
}

func TestSpecialAttackLaunchesOrb(t *testing.T) {
	w := newTestWorld(t, 100, 1000)
	require.NoError(t, w.a.Attack(cfg.AttackSpecialKind))

	require.True(t, w.stepUntil(120, func() bool {
		return w.match().Stats[cfg.SideA].OrbsFired == 1
	}))
	assert.Equal(t, 1, CountOrbs(w.ecs))

	// Crosses the arena into side B and is cleaned up
	w.step(180)
	assert.Equal(t, 80, w.b.Health)
	assert.Equal(t, 1, w.match().Stats[cfg.SideA].OrbsFired)
	assert.Zero(t, countOrbEntities(w))
}

func TestBeamBurnsThrough(t *testing.T) {
	w := newTestWorld(t, 100, 400)
	w.a.Gauge = 100
	require.NoError(t, w.a.Attack(cfg.AttackKyubiKind))

	require.True(t, w.stepUntil(400, func() bool { return IsMatchFinished(w.ecs) }))
	assert.Equal(t, cfg.SideA, Winner(w.ecs))
	assert.Zero(t, w.b.Health)
	assert.False(t, w.a.AttackHit(), "the beam never counts as a connect")
	assert.Zero(t, w.a.Gauge)

	stats := w.match().Stats[cfg.SideA]
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 100, stats.Damage)
}

func TestBeamBreaksThroughAGuard(t *testing.T) {
	w := newTestWorld(t, 100, 400)
	w.b.StartBlock()
	require.True(t, w.b.IsBlocking())
	w.a.Gauge = 100
	require.NoError(t, w.a.Attack(cfg.AttackKyubiKind))

	require.True(t, w.stepUntil(400, func() bool { return IsMatchFinished(w.ecs) }))
	assert.Equal(t, cfg.SideA, Winner(w.ecs))
	assert.Zero(t, w.b.Health)
	assert.Zero(t, w.b.Stamina)

	stats := w.match().Stats[cfg.SideA]
	assert.Equal(t, 1, stats.Blocked)
	assert.Equal(t, 100, stats.Damage)
}

func countOrbEntities(w *testWorld) int {
	n := 0
	tags.Orb.Each(w.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func TestCombatNeedsBothFighters(t *testing.T) {
	w := newTestWorld(t, 100, 150)
	w.ecs.World.Remove(w.eb.Entity())
	require.NoError(t, w.a.Attack(cfg.AttackLight))

	assert.NotPanics(t, func() { w.step(30) })
	assert.False(t, w.a.AttackHit())
	assert.Equal(t, cfg.SideNone, Winner(w.ecs))
}

func TestBroadPhaseFollowsFighters(t *testing.T) {
	w := newTestWorld(t, 100, 600)
	w.step(1)

	hurt := components.Object.Get(w.ea).Object
	box := w.a.Hitbox()
	assert.Equal(t, float64(box.X), hurt.X)
	assert.Equal(t, float64(box.W), hurt.W)

	// Nothing to probe between swings
	strike := components.Strike.Get(w.ea).Object
	assert.Zero(t, strike.W)

	w.a.Move(1)
	w.step(10)
	assert.Equal(t, float64(w.a.Hitbox().X), hurt.X)
	assert.Equal(t, fighter.SpecialNone, w.a.Special())
}
