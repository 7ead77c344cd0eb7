package fighter

import (
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
)

// Update advances the fighter by dt seconds. The opponent may be nil; it is
// only read, to aim the special moves.
func (f *Fighter) Update(dt float64, opponent *Fighter) {
	if f.special != nil {
		if f.special.update(f, dt, opponent) {
			f.finishSpecial()
		}
		return
	}

	f.stepAnimation(dt)
	f.tickTimers(dt)
	f.updateResources(dt)
	f.integrate(dt)
}

func (f *Fighter) stepAnimation(dt float64) {
	if !f.anim.Update(dt) {
		return
	}
	idx := f.FrameIndex()
	last := len(f.frames()) - 1

	// The combo's second strike may connect once more
	if f.state == config.AttackCombo && idx == config.Combat.ComboRearmFrame {
		f.attackHit = false
	}

	if f.state == config.AttackSpecial && f.attacking && idx == last &&
		config.Orb.ReleaseEnd && len(f.char.Projectile) > 0 {
		f.orbReady = true
	}

	if f.attacking && idx == 0 {
		f.attacking = false
		f.attackKind = config.AttackNone
		f.attackDamage = 0
		f.attackHit = false
		f.enterState(config.Idle)
	}
}

func (f *Fighter) tickTimers(dt float64) {
	if f.cooldown > 0 {
		f.cooldown = max(0, f.cooldown-dt)
	}
	if f.invTimer > 0 {
		f.invTimer = max(0, f.invTimer-dt)
	}
	if f.hitTimer > 0 {
		f.hitTimer -= dt
		if f.hitTimer <= 0 {
			f.hitTimer = 0
			f.hit = false
			f.enterState(config.Idle)
		}
	}
}

func (f *Fighter) updateResources(dt float64) {
	cfg := config.Fighter
	if f.blocking {
		f.Stamina = max(0, f.Stamina-cfg.StaminaDrain*dt)
		if f.Stamina <= 0 {
			// Guard broken
			f.blocking = false
			f.enterState(config.Idle)
		}
	} else {
		f.Stamina = min(cfg.StaminaMax, f.Stamina+cfg.StaminaRegen*dt)
	}

	if !f.attacking {
		f.Chakra = min(cfg.ChakraMax, f.Chakra+cfg.ChakraRegen*dt)
	}
}

func (f *Fighter) integrate(dt float64) {
	p := config.Physics
	if !f.OnGround {
		f.VY += p.Gravity * dt
	}

	f.X += (f.VX + f.KnockbackVX) * dt
	f.Y += f.VY * dt
	f.KnockbackVX = gamemath.DecayKnockback(f.KnockbackVX, p.KnockbackFriction, p.KnockbackSnap)

	if f.Y >= f.arena.GroundY {
		f.Y = f.arena.GroundY
		f.VY = 0
		f.OnGround = true
		if f.state == config.Jump {
			f.enterState(config.Idle)
		}
	}

	// Frame 0 of the state gives a stable width while the animation plays
	w := float64(f.frames()[0].W)
	if f.X < f.arena.Left {
		f.X = f.arena.Left
		f.VX = 0
		f.KnockbackVX = 0
	} else if f.X+w > f.arena.Right {
		f.X = f.arena.Right - w
		f.VX = 0
		f.KnockbackVX = 0
	}

	if f.Y < f.arena.Top {
		f.Y = f.arena.Top
		f.VY = 0
	} else if f.Y > f.arena.Bottom {
		f.Y = f.arena.Bottom
		f.VY = 0
	}
}
