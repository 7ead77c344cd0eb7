package fighter

import (
	"testing"

	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitbox(t *testing.T) {
	f := newTestFighter(t, 100, true)
	assert.Equal(t, gamemath.Rect{X: 113, Y: 360, W: 38, H: 76}, f.Hitbox())
}

func TestNoAttackBoxWhenIdle(t *testing.T) {
	f := newTestFighter(t, 100, true)
	_, ok := f.AttackBox()
	assert.False(t, ok)
}

func TestMidSwingAttackBox(t *testing.T) {
	f := newTestFighter(t, 100, true)
	require.NoError(t, f.Attack(config.AttackLight))

	// Four frames: impact at 2, live on 1..3
	_, ok := f.AttackBox()
	assert.False(t, ok)

	f.Update(0.1, nil)
	box, ok := f.AttackBox()
	require.True(t, ok)
	assert.Equal(t, gamemath.Rect{X: 144, Y: 378, W: 25, H: 48}, box)

	f.MarkAttackHit()
	_, ok = f.AttackBox()
	assert.False(t, ok, "one connect per swing")
}

func TestMidSwingAttackBoxFacingLeft(t *testing.T) {
	f := newTestFighter(t, 100, false)
	require.NoError(t, f.Attack(config.AttackLight))
	f.Update(0.1, nil)

	box, ok := f.AttackBox()
	require.True(t, ok)
	assert.Equal(t, gamemath.Rect{X: 94, Y: 378, W: 25, H: 48}, box)
}

func TestComboStrikeWindows(t *testing.T) {
	f := newTestFighter(t, 100, true)
	require.NoError(t, f.Attack(config.AttackComboKind))
	windows := config.Describe(config.AttackCombo).AttackBox.Windows

	for idx := 0; idx < 13; idx++ {
		require.Equal(t, idx, f.FrameIndex())
		_, ok := f.AttackBox()
		want := windows[0].Contains(idx) || windows[1].Contains(idx)
		assert.Equal(t, want, ok, "frame %d", idx)
		f.Update(1.0/15, nil)
	}
}

func TestSpecialStrikeWindow(t *testing.T) {
	f := newTestFighter(t, 100, true)
	require.NoError(t, f.Attack(config.AttackSpecialKind))

	for idx := 0; idx < 13; idx++ {
		box, ok := f.AttackBox()
		assert.Equal(t, idx >= 9, ok, "frame %d", idx)
		if idx == 9 {
			assert.Equal(t, gamemath.Rect{X: 138, Y: 369, W: 44, H: 67}, box)
		}
		f.Update(1.0/12, nil)
	}
}

func TestViewEffects(t *testing.T) {
	f := newTestFighter(t, 100, true)
	v := f.View()
	assert.False(t, v.Flash)
	assert.False(t, v.Flicker)
	assert.Equal(t, -1, v.CrackFrame)
	assert.False(t, v.Beam)
	assert.Equal(t, v.Y, v.DrawY)

	f.TakeDamage(5, true, config.DamageLight)
	// hit timer 0.3 -> int(3) is odd
	v = f.View()
	assert.True(t, v.Flash)
	assert.False(t, v.Flicker)
	assert.True(t, v.Hit)
	assert.True(t, v.Invincible)

	// Stun over, invincibility at 0.2 -> int(1.6) is odd
	f.Update(0.4, nil)
	v = f.View()
	require.False(t, v.Hit)
	assert.False(t, v.Flash)
	assert.True(t, v.Flicker)
}
