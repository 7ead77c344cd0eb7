package systems

import (
	"errors"
	"log"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIntents issues the commands a human fighter asked for.
func UpdateIntents(ecs *ecs.ECS) {
	components.Intent.Each(ecs.World, func(e *donburi.Entry) {
		intent := components.Intent.Get(e)
		f := components.Fighter.Get(e).Fighter

		// Guard is held, not toggled
		if intent.Block {
			if !f.IsBlocking() {
				f.StartBlock()
			}
		} else if f.IsBlocking() {
			f.StopBlock()
		}

		if !f.IsBlocking() {
			f.Move(intent.Move)
		}

		if intent.Jump {
			f.Jump()
			intent.Jump = false
		}

		if intent.Attack != cfg.AttackNone {
			if err := f.Attack(intent.Attack); err != nil {
				logAttackFailure(f, intent.Attack, err)
			}
			intent.Attack = cfg.AttackNone
		}
	})
}

// logAttackFailure prints a console hint for gates the player can act on.
// Busy and cooldown rejections are routine and stay quiet.
func logAttackFailure(f *fighter.Fighter, kind cfg.AttackKind, err error) {
	switch {
	case errors.Is(err, fighter.ErrInsufficientResource):
		spec := cfg.Combat.Attacks[kind]
		if spec.NeedGauge {
			log.Printf("%s: %s: %v", f.Name, kind, err)
			return
		}
		log.Printf("%s: %s: %v (need %.0f, have %.0f)", f.Name, kind, err, spec.ChakraMin, f.Chakra)
	case errors.Is(err, fighter.ErrMoveUnavailable), errors.Is(err, fighter.ErrUnknownAttack):
		log.Printf("%s: %s: %v", f.Name, kind, err)
	}
}

// SetIntent replaces the intent of side's fighter. It reports false when
// that fighter is not human-controlled.
func SetIntent(ecs *ecs.ECS, side cfg.Side, intent components.IntentData) bool {
	sides := FighterEntries(ecs)
	if side != cfg.SideA && side != cfg.SideB || sides[side] == nil {
		return false
	}
	e := sides[side]
	if !e.HasComponent(components.Intent) {
		return false
	}
	components.Intent.SetValue(e, intent)
	return true
}
