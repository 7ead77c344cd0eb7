package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters advances both fighters by one step, side A first.
func UpdateFighters(e *ecs.ECS) {
	dt := deltaTime(e)
	sides := FighterEntries(e)

	for _, side := range []cfg.Side{cfg.SideA, cfg.SideB} {
		entry := sides[side]
		if entry == nil {
			continue
		}
		components.Fighter.Get(entry).Update(dt, opponentOf(sides, side))
	}
}
