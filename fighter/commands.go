package fighter

import (
	"github.com/automoto/shinobi-duel/config"
)

// busy reports whether commands are currently locked out.
func (f *Fighter) busy() bool {
	return f.special != nil || f.attacking || f.hit
}

// Move sets horizontal velocity from a direction in {-1, 0, 1}.
func (f *Fighter) Move(direction int) {
	if f.busy() {
		return
	}
	direction = max(-1, min(1, direction))
	f.VX = float64(direction) * f.Speed
	if direction != 0 {
		f.FacingRight = direction > 0
		if f.state == config.Idle && f.OnGround {
			f.enterState(config.Run)
		}
		return
	}
	if f.OnGround && f.state == config.Run {
		f.enterState(config.Idle)
	}
}

// Jump leaves the ground when grounded and free to act.
func (f *Fighter) Jump() {
	if !f.OnGround || f.busy() {
		return
	}
	f.VY = config.Physics.JumpForce
	f.OnGround = false
	f.blocking = false
	f.enterState(config.Jump)
}

// Attack starts an attack of the given kind. On failure nothing changes.
func (f *Fighter) Attack(kind config.AttackKind) error {
	if f.busy() {
		return ErrBusy
	}
	spec, ok := config.Combat.Attacks[kind]
	if !ok {
		return ErrUnknownAttack
	}
	if !f.char.CanPerform(kind) {
		return ErrMoveUnavailable
	}
	if f.cooldown > 0 {
		return ErrCooldown
	}
	if spec.ChakraMin > 0 && f.Chakra < spec.ChakraMin {
		return ErrNotEnoughChakra
	}
	if spec.NeedGauge && f.Gauge < config.Fighter.GaugeMax {
		return ErrGaugeNotFull
	}

	f.Chakra = max(0, f.Chakra-spec.ChakraUse)

	state := spec.State
	if !f.OnGround {
		state = spec.AirState
	}
	f.attacking = true
	f.attackKind = kind
	f.attackDamage = spec.Damage
	f.attackHit = false
	f.cooldown = spec.Cooldown
	f.orbReady = false
	f.VX = 0
	f.blocking = false
	f.enterState(state)

	switch kind {
	case config.AttackTeleportKind:
		f.special = &teleport{}
	case config.AttackUndergroundKind:
		f.special = newUnderground()
	case config.AttackKyubiKind:
		f.special = newBeam(f)
	}
	return nil
}

// StartBlock raises the guard when stamina remains.
func (f *Fighter) StartBlock() {
	if f.busy() || f.Stamina <= 0 {
		return
	}
	f.blocking = true
	f.VX = 0
	if f.state != config.Block {
		f.enterState(config.Block)
	}
}

// StopBlock drops the guard.
func (f *Fighter) StopBlock() {
	if !f.blocking {
		return
	}
	f.blocking = false
	f.enterState(config.Idle)
}
