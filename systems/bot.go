package systems

import (
	"github.com/automoto/shinobi-duel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots lets every AI policy issue its commands against the opposing
// fighter. Must run BEFORE UpdateFighters.
func UpdateBots(e *ecs.ECS) {
	dt := deltaTime(e)
	sides := FighterEntries(e)

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		bot := components.Bot.Get(entry)
		side := components.Fighter.Get(entry).Side
		bot.Policy.Update(dt, opponentOf(sides, side))
	})
}
