package assets

import (
	"testing"

	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedRosterLoads(t *testing.T) {
	r, err := LoadRoster()
	require.NoError(t, err)
	assert.Equal(t, []string{"naruto", "sasuke"}, r.Names())
}

// Every frame window a character can reach must index inside its sequence.
func TestEmbeddedFrameWindowsInBounds(t *testing.T) {
	r, err := LoadRoster()
	require.NoError(t, err)

	for _, name := range r.Names() {
		c, err := r.Character(name)
		require.NoError(t, err)

		for kind := config.AttackLight; kind <= config.AttackKyubiKind; kind++ {
			if !c.CanPerform(kind) {
				continue
			}
			spec := config.Combat.Attacks[kind]
			for _, state := range []config.StateID{spec.State, spec.AirState} {
				frames := c.Frames(state)
				for _, w := range config.Describe(state).AttackBox.Windows {
					assert.Less(t, w.Last, len(frames), "%s %s window %v", name, state, w)
				}
				assert.GreaterOrEqual(t, len(frames), animations.RequiredFrames(state), "%s %s", name, state)
			}
		}
	}
}

func TestNarutoCarriesEffects(t *testing.T) {
	r, err := LoadRoster()
	require.NoError(t, err)
	c, err := r.Character("naruto")
	require.NoError(t, err)

	assert.Len(t, c.Projectile, 5)
	assert.Len(t, c.Overlay, 3)
	assert.Len(t, c.Beam, 3)
	assert.Equal(t, config.RolePlayer, c.Role)
}

func TestEmbeddedArena(t *testing.T) {
	a, err := LoadArena("")
	require.NoError(t, err)
	assert.Equal(t, config.Arena.GroundY, a.GroundY)
	assert.Equal(t, config.Arena.TerrainLeft, a.TerrainLeft)
	assert.Equal(t, config.Arena.TerrainRight, a.TerrainRight)
	require.Len(t, a.Spawns, 2)

	names, err := ArenaNames()
	require.NoError(t, err)
	assert.Contains(t, names, DefaultArena)
}
