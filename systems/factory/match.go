package factory

import (
	"github.com/automoto/shinobi-duel/archetypes"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		State:  cfg.MatchStatePlaying,
		Winner: cfg.SideNone,
	})
	components.Clock.SetValue(match, components.ClockData{DT: 1 / float64(cfg.C.FPS)})
	return match
}
