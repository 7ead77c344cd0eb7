package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(3, 10)

	assert.False(t, a.Update(0.05))
	assert.True(t, a.Update(0.05))
	assert.Equal(t, 1, a.Frame())

	a.Update(0.1)
	a.Update(0.1)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationFreezesOnLastFrame(t *testing.T) {
	a := NewAnimation(3, 10)
	a.FreezeOnComplete = true

	for i := 0; i < 10; i++ {
		a.Update(0.1)
	}
	assert.Equal(t, 2, a.Frame())
}

func TestAnimationReconfigureRestarts(t *testing.T) {
	a := NewAnimation(5, 10)
	a.Update(0.1)
	a.Update(0.1)

	a.Reconfigure(2, 15, false)
	assert.Equal(t, 0, a.Frame())
	assert.Equal(t, 0.0, a.Timer())
	assert.Equal(t, 2, a.Count)
}
