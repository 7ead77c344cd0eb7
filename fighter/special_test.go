package fighter

import (
	"testing"

	"github.com/automoto/shinobi-duel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSpecial ticks until the special ends and returns the elapsed time.
func runSpecial(t *testing.T, f, opponent *Fighter, each func()) float64 {
	t.Helper()
	elapsed := 0.0
	for i := 0; i < 600 && f.Special() != SpecialNone; i++ {
		f.Update(tick, opponent)
		elapsed += tick
		if each != nil {
			each()
		}
	}
	require.Equal(t, SpecialNone, f.Special(), "special never finished")
	return elapsed
}

func TestTeleportLandsBehindOpponent(t *testing.T) {
	f := newTestFighter(t, 150, true)
	opp := newTestFighter(t, 600, false)
	require.NoError(t, f.Attack(config.AttackTeleportKind))
	require.Equal(t, SpecialTeleport, f.Special())

	var struck, airborne bool
	elapsed := runSpecial(t, f, opp, func() {
		if f.Special() == SpecialNone {
			return
		}
		f.Move(-1)
		assert.ErrorIs(t, f.Attack(config.AttackLight), ErrBusy)
		if !f.OnGround {
			airborne = true
		}
		if box, ok := f.AttackBox(); ok {
			struck = true
			assert.Equal(t, 700.0, f.X)
			assert.Equal(t, f.Bounds().Inset(0.8, 0.8), box)
		}
	})

	assert.True(t, struck)
	assert.True(t, airborne)
	assert.Equal(t, 700.0, f.X)
	assert.Equal(t, config.Arena.GroundY, f.Y)
	assert.True(t, f.OnGround)
	assert.True(t, f.FacingRight, "commands are ignored during the move")
	assert.False(t, f.IsAttacking())
	assert.Equal(t, config.Idle, f.State())
	assert.InDelta(t, 0.9, elapsed, 0.1)
}

func TestTeleportWithoutOpponent(t *testing.T) {
	f := newTestFighter(t, 400, false)
	require.NoError(t, f.Attack(config.AttackTeleportKind))
	runSpecial(t, f, nil, nil)
	assert.Equal(t, 200.0, f.X)
}

func TestTeleportTargetStaysOnTerrain(t *testing.T) {
	f := newTestFighter(t, 700, true)
	opp := newTestFighter(t, 1050, false)
	require.NoError(t, f.Attack(config.AttackTeleportKind))
	runSpecial(t, f, opp, nil)
	assert.Equal(t, config.Arena.TerrainRight-64, f.X)
}

func TestTeleportSuspendsTimers(t *testing.T) {
	f := newTestFighter(t, 150, true)
	f.Chakra = 10
	require.NoError(t, f.Attack(config.AttackTeleportKind))
	f.Update(0.2, nil)

	assert.Equal(t, 1.5, f.Cooldown())
	assert.Equal(t, 10.0, f.Chakra)
}

func TestUndergroundEmergesNextToOpponent(t *testing.T) {
	f := newTestFighter(t, 150, true)
	opp := newTestFighter(t, 600, false)
	require.NoError(t, f.Attack(config.AttackUndergroundKind))

	seen := map[int]bool{}
	var struck, cracked bool
	maxOffset := 0.0
	elapsed := runSpecial(t, f, opp, func() {
		if f.Special() == SpecialNone {
			return
		}
		v := f.View()
		seen[v.FrameIndex] = true
		if _, ok := f.AttackBox(); ok {
			struck = true
			assert.Equal(t, 680.0, f.X)
			assert.GreaterOrEqual(t, v.FrameIndex, 3)
		}
		if v.CrackFrame >= 0 {
			cracked = true
			assert.Equal(t, 120, v.CrackOverlay.W)
			assert.Equal(t, v.DrawX-28, v.CrackX)
			assert.Equal(t, f.Y+50, v.CrackY)
		}
		maxOffset = max(maxOffset, v.DrawY-v.Y)
	})

	for idx := 0; idx < 6; idx++ {
		assert.True(t, seen[idx], "frame %d never shown", idx)
	}
	assert.True(t, struck)
	assert.True(t, cracked)
	assert.Greater(t, maxOffset, 50.0)
	assert.LessOrEqual(t, maxOffset, 60.0)
	assert.Equal(t, 680.0, f.X)
	assert.Equal(t, config.Idle, f.State())
	assert.InDelta(t, 1.45, elapsed, 0.1)
}

func TestUndergroundWithoutOpponent(t *testing.T) {
	f := newTestFighter(t, 500, false)
	require.NoError(t, f.Attack(config.AttackUndergroundKind))
	runSpecial(t, f, nil, nil)
	assert.Equal(t, 300.0, f.X)
}

func TestBeamFiresAndConsumesGauge(t *testing.T) {
	f := newTestFighter(t, 150, true)
	opp := newTestFighter(t, 600, false)
	f.Gauge = config.Fighter.GaugeMax
	require.NoError(t, f.Attack(config.AttackKyubiKind))

	var fired, struck bool
	runSpecial(t, f, opp, func() {
		b, ok := f.special.(*beam)
		if !ok {
			return
		}
		box, live := f.AttackBox()
		if !b.firing {
			assert.False(t, live)
			return
		}
		fired = true
		assert.Equal(t, 3, f.FrameIndex())
		assert.Equal(t, live, b.timer > 0.5)
		if live {
			struck = true
			assert.Equal(t, 280, box.X)
			assert.Equal(t, 390, box.Y)
			assert.Equal(t, 1200, box.W)
			assert.Equal(t, 100, box.H)
		}

		v := f.View()
		assert.True(t, v.Beam)
		assert.Equal(t, 280.0, v.BeamStartX)
		assert.Equal(t, float64(opp.Hitbox().Left()), v.BeamEndX)
		assert.Equal(t, 350.0-64-25, v.DrawY)
		assert.Equal(t, v.DrawY+35, v.BeamY)
	})

	assert.True(t, fired)
	assert.True(t, struck)
	assert.Zero(t, f.Gauge)
	assert.False(t, f.IsAttacking())
	assert.False(t, f.IsFiringBeam())
	assert.Equal(t, config.Idle, f.State())
}

func TestBeamEndpointIgnoresOpponentBehind(t *testing.T) {
	f := newTestFighter(t, 500, false)
	opp := newTestFighter(t, 900, true)
	f.Gauge = config.Fighter.GaugeMax
	require.NoError(t, f.Attack(config.AttackKyubiKind))

	for i := 0; i < 600 && !f.IsFiringBeam(); i++ {
		f.Update(tick, opp)
	}
	require.True(t, f.IsFiringBeam())

	v := f.View()
	assert.Zero(t, v.BeamEndX)
	assert.Equal(t, 430.0, v.BeamStartX)
}

func TestSpecialAttackReleasesOneOrb(t *testing.T) {
	f := newTestFighter(t, 150, true)
	require.NoError(t, f.Attack(config.AttackSpecialKind))

	var reqs []OrbRequest
	for i := 0; i < 600 && f.IsAttacking(); i++ {
		f.Update(tick, nil)
		if req, ok := f.TakeOrbRequest(); ok {
			reqs = append(reqs, req)
			assert.Equal(t, 12, f.FrameIndex())
		}
	}
	require.Len(t, reqs, 1)
	assert.Equal(t, OrbRequest{X: 230, Y: 380, Direction: 1}, reqs[0])

	_, ok := f.TakeOrbRequest()
	assert.False(t, ok)
}

func TestSpecialAttackFacingLeftOrb(t *testing.T) {
	f := newTestFighter(t, 500, false)
	require.NoError(t, f.Attack(config.AttackSpecialKind))
	for i := 0; i < 600 && f.IsAttacking(); i++ {
		f.Update(tick, nil)
		if req, ok := f.TakeOrbRequest(); ok {
			assert.Equal(t, OrbRequest{X: 460, Y: 380, Direction: -1}, req)
			return
		}
	}
	t.Fatal("no orb released")
}

func TestNoOrbWithoutProjectileFrames(t *testing.T) {
	char := testCharacter(allMoves...)
	char.Projectile = nil
	f, err := New(char, DefaultArena(), Spawn{X: 150, FacingRight: true})
	require.NoError(t, err)
	require.NoError(t, f.Attack(config.AttackSpecialKind))

	for i := 0; i < 600 && f.IsAttacking(); i++ {
		f.Update(tick, nil)
		_, ok := f.TakeOrbRequest()
		assert.False(t, ok)
	}
}
