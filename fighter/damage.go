package fighter

import (
	"math"

	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
)

// DamageResult is the outcome of TakeDamage.
type DamageResult int

const (
	NoEffect DamageResult = iota
	Absorbed
	Applied
)

func (r DamageResult) String() string {
	switch r {
	case Absorbed:
		return "absorbed"
	case Applied:
		return "applied"
	}
	return "no effect"
}

// Landed reports whether the hit registered at all.
func (r DamageResult) Landed() bool {
	return r != NoEffect
}

// TakeDamage resolves an incoming hit. A frontal hit on a guard is absorbed,
// a hit outside the invincibility and stun windows is applied, anything
// else has no effect.
func (f *Fighter) TakeDamage(amount int, attackerFacingRight bool, kind config.DamageKind) DamageResult {
	amount = max(0, amount)
	// Knockback pushes away from the attacker
	away := gamemath.Direction(attackerFacingRight)

	if f.blocking && f.Stamina > 0 && f.FacingRight != attackerFacingRight {
		c := config.Combat
		f.loseHealth(int(math.Floor(float64(amount) * c.BlockDamageFactor)))
		f.Stamina = max(0, f.Stamina-float64(amount)*c.BlockStaminaFactor)
		f.KnockbackVX = away * c.BlockKnockback
		return Absorbed
	}

	if f.IsInvincible() || f.hit {
		return NoEffect
	}

	f.loseHealth(amount)
	f.cancelActions()

	if kind == config.DamageKyubiBeam {
		f.Health = 0
		f.react(config.Combat.Kyubi, config.HitKyubi)
		return Applied
	}

	tier := reactionTier(amount, kind)
	state := tier.State
	if !f.OnGround {
		state = tier.AirState
	}
	f.react(tier, state)
	f.KnockbackVX = away * tier.Knockback
	return Applied
}

func reactionTier(amount int, kind config.DamageKind) config.ReactionTier {
	c := config.Combat
	switch {
	case amount >= c.Heavy.MinDamage || kind == config.DamageHeavy || kind == config.DamageTeleport:
		return c.Heavy
	case amount >= c.Medium.MinDamage || kind == config.DamageCombo:
		return c.Medium
	}
	return c.Light
}

func (f *Fighter) react(tier config.ReactionTier, state config.StateID) {
	f.hit = true
	f.hitTimer = tier.HitStun
	f.invTimer = tier.Invincible
	f.enterState(state)
}

// cancelActions ends any attack, special or guard.
func (f *Fighter) cancelActions() {
	f.attacking = false
	f.attackKind = config.AttackNone
	f.attackDamage = 0
	f.attackHit = false
	f.special = nil
	f.orbReady = false
	f.blocking = false
	f.VX = 0
}

func (f *Fighter) loseHealth(n int) {
	f.Health = max(0, min(config.Fighter.MaxHealth, f.Health-n))
}
