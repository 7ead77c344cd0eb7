package tags

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Orb     = donburi.NewTag().SetName("Orb")
	Bot     = donburi.NewTag().SetName("Bot")
)

// Resolv tags for the combat broad phase
const (
	ResolvHurtbox = "hurtbox"
	ResolvStrike  = "strike"
	ResolvOrb     = "orb"

	ResolvSideA = "side_a"
	ResolvSideB = "side_b"
)

// ResolvSide is the resolv tag carried by every object owned by side.
func ResolvSide(side cfg.Side) string {
	if side == cfg.SideB {
		return ResolvSideB
	}
	return ResolvSideA
}
