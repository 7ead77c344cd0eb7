// Package projectile holds the chakra orb, a free-flying single-hit
// projectile that outlives the attack that released it.
package projectile

import (
	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
)

// Orb moves in a straight line until it hits or leaves the screen.
type Orb struct {
	X, Y   float64
	VX     float64
	Owner  any // bookkeeping only, never dereferenced
	Damage int

	Active bool
	HasHit bool

	frames  []animations.Frame
	anim    animations.Animation
	screenW float64
}

// New launches an orb. direction is -1 or 1.
func New(x, y, direction float64, owner any, frames []animations.Frame, screenW float64) *Orb {
	cfg := config.Orb
	o := &Orb{
		X:       x,
		Y:       y,
		VX:      cfg.Speed * direction,
		Owner:   owner,
		Damage:  cfg.Damage,
		Active:  len(frames) > 0,
		frames:  frames,
		screenW: screenW,
	}
	o.anim.Reconfigure(len(frames), cfg.AnimFPS, false)
	return o
}

func (o *Orb) Update(dt float64) {
	if !o.Active {
		return
	}
	o.X += o.VX * dt
	o.anim.Update(dt)

	margin := config.Orb.OffScreen
	if o.X < -margin || o.X > o.screenW+margin {
		o.Active = false
	}
}

// FacingRight reports the travel direction.
func (o *Orb) FacingRight() bool {
	return o.VX > 0
}

// Hit marks the orb spent.
func (o *Orb) Hit() {
	o.HasHit = true
	o.Active = false
}

func (o *Orb) frame() animations.Frame {
	idx := o.anim.Frame()
	if idx < 0 || idx >= len(o.frames) {
		idx = 0
	}
	return o.frames[idx]
}

// Hitbox covers the whole sprite. Inactive orbs have none.
func (o *Orb) Hitbox() (gamemath.Rect, bool) {
	if !o.Active {
		return gamemath.Rect{}, false
	}
	fr := o.frame()
	return gamemath.NewRect(o.X, o.Y, float64(fr.W), float64(fr.H)), true
}

// View is what a renderer needs to draw an orb.
type View struct {
	X, Y        float64
	Frame       animations.Frame
	FrameIndex  int
	FacingRight bool
}

// View snapshots the orb. ok is false for inactive orbs, which are never drawn.
func (o *Orb) View() (View, bool) {
	if !o.Active {
		return View{}, false
	}
	return View{
		X:           o.X,
		Y:           o.Y,
		Frame:       o.frame(),
		FrameIndex:  o.anim.Frame(),
		FacingRight: o.FacingRight(),
	}, true
}
