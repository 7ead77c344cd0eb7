package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// deltaTime is the length of the current step.
func deltaTime(e *ecs.ECS) float64 {
	if entry, ok := components.Clock.First(e.World); ok {
		return components.Clock.Get(entry).DT
	}
	return 1 / float64(cfg.C.FPS)
}

// SetDeltaTime sets the length of the next step.
func SetDeltaTime(e *ecs.ECS, dt float64) {
	if entry, ok := components.Clock.First(e.World); ok {
		components.Clock.Get(entry).DT = dt
	}
}

// FighterEntries returns the fighter entity of each side. Missing sides
// are nil.
func FighterEntries(e *ecs.ECS) [2]*donburi.Entry {
	var sides [2]*donburi.Entry
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		side := components.Fighter.Get(entry).Side
		if side == cfg.SideA || side == cfg.SideB {
			sides[side] = entry
		}
	})
	return sides
}

// opponentOf returns the fighter facing side, or nil.
func opponentOf(sides [2]*donburi.Entry, side cfg.Side) *fighter.Fighter {
	opp := side.Opponent()
	if opp == cfg.SideNone || sides[opp] == nil {
		return nil
	}
	return components.Fighter.Get(sides[opp]).Fighter
}
