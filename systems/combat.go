package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// beamDamage outlasts any health pool even after a guard's reduction.
const beamDamage = 9999

// UpdateCombat resolves this step's hits: orbs first, then side A's strike,
// then side B's. Shapes sharing a broad-phase cell are confirmed with an
// exact rectangle test.
func UpdateCombat(ecs *ecs.ECS) {
	sides := FighterEntries(ecs)
	if sides[cfg.SideA] == nil || sides[cfg.SideB] == nil {
		return
	}
	match := getMatch(ecs)

	tags.Orb.Each(ecs.World, func(e *donburi.Entry) {
		resolveOrb(e, sides, match)
	})
	resolveStrike(sides[cfg.SideA], sides[cfg.SideB], match)
	resolveStrike(sides[cfg.SideB], sides[cfg.SideA], match)
}

func resolveOrb(e *donburi.Entry, sides [2]*donburi.Entry, match *components.MatchData) {
	orb := components.Orb.Get(e)
	if !orb.Active || orb.HasHit {
		return
	}
	target := orb.Side.Opponent()
	if target == cfg.SideNone || sides[target] == nil {
		return
	}
	box, ok := orb.Hitbox()
	if !ok || !touches(components.Object.Get(e).Object, sides[target]) {
		return
	}

	def := components.Fighter.Get(sides[target])
	if !box.Overlaps(def.Hitbox()) {
		return
	}
	before := def.Health
	res := def.TakeDamage(orb.Damage, orb.VX > 0, cfg.DamageSpecial)
	if res == fighter.NoEffect {
		return
	}
	orb.Hit()
	record(match, orb.Side, res, before-def.Health)
	syncFighter(sides[target])
}

func resolveStrike(attacker, defender *donburi.Entry, match *components.MatchData) {
	atk := components.Fighter.Get(attacker)
	def := components.Fighter.Get(defender)

	box, ok := atk.AttackBox()
	probe := components.Strike.Get(attacker).Object
	placeObject(probe, box)
	if !ok || !touches(probe, defender) || !box.Overlaps(def.Hitbox()) {
		return
	}

	// The beam keeps burning while it overlaps and never counts as a connect
	if atk.Special() == fighter.SpecialBeam {
		if def.Health > 0 {
			before := def.Health
			res := def.TakeDamage(beamDamage, atk.FacingRight, cfg.DamageKyubiBeam)
			record(match, atk.Side, res, before-def.Health)
			syncFighter(defender)
		}
		return
	}

	before := def.Health
	res := def.TakeDamage(atk.AttackDamage(), atk.FacingRight, cfg.DamageKindFor(atk.AttackKind()))
	if res == fighter.NoEffect {
		return
	}
	atk.MarkAttackHit()
	atk.AddGauge(cfg.Fighter.GaugePerHit)
	record(match, atk.Side, res, before-def.Health)
	syncFighter(defender)
	syncFighter(attacker)
}

// touches reports whether obj shares a broad-phase cell with target's
// hurtbox.
func touches(obj *resolv.Object, target *donburi.Entry) bool {
	collision := obj.Check(0, 0, tags.ResolvHurtbox)
	if collision == nil {
		return false
	}
	hurt := components.Object.Get(target).Object
	for _, o := range collision.Objects {
		if o == hurt {
			return true
		}
	}
	return false
}

func record(match *components.MatchData, side cfg.Side, res fighter.DamageResult, damage int) {
	if match == nil {
		return
	}
	stats := match.StatsFor(side)
	if stats == nil {
		return
	}
	switch res {
	case fighter.Applied:
		stats.Hits++
	case fighter.Absorbed:
		stats.Blocked++
	}
	stats.Damage += damage
}
