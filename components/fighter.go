package components

import (
	"github.com/automoto/shinobi-duel/ai"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/automoto/shinobi-duel/projectile"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	*fighter.Fighter
	Side  cfg.Side
	Spawn fighter.Spawn
}

var Fighter = donburi.NewComponentType[FighterData]()

type OrbData struct {
	*projectile.Orb
	Side cfg.Side
}

var Orb = donburi.NewComponentType[OrbData]()

// BotData attaches an AI policy to a fighter entity.
type BotData struct {
	Policy *ai.Policy
}

var Bot = donburi.NewComponentType[BotData]()
