package factory

import (
	"math/rand"

	"github.com/automoto/shinobi-duel/ai"
	"github.com/automoto/shinobi-duel/archetypes"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns a fighter entity for side with its hurtbox and
// strike probe registered in the collision space.
func CreateFighter(ecs *ecs.ECS, f *fighter.Fighter, side cfg.Side, spawn fighter.Spawn) *donburi.Entry {
	e := archetypes.Fighter.Spawn(ecs)
	components.Fighter.SetValue(e, components.FighterData{
		Fighter: f,
		Side:    side,
		Spawn:   spawn,
	})

	box := f.Hitbox()
	hurt := resolv.NewObject(float64(box.X), float64(box.Y), float64(box.W), float64(box.H),
		tags.ResolvHurtbox, tags.ResolvSide(side))
	hurt.Data = e
	components.Object.Set(e, &components.ObjectData{Object: hurt})

	strike := resolv.NewObject(f.X, f.Y, 0, 0, tags.ResolvStrike, tags.ResolvSide(side))
	strike.Data = e
	components.Strike.Set(e, &components.StrikeData{Object: strike})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(hurt, strike)
	}
	return e
}

// AttachHuman makes e read its commands from an IntentData.
func AttachHuman(e *donburi.Entry) {
	donburi.Add(e, components.Intent, &components.IntentData{})
}

// AttachBot hands e to an AI policy.
func AttachBot(e *donburi.Entry, rng *rand.Rand, tuning cfg.BotDifficultyConfig) *ai.Policy {
	policy := ai.New(components.Fighter.Get(e).Fighter, rng, tuning)
	donburi.Add(e, components.Bot, &components.BotData{Policy: policy})
	e.AddComponent(tags.Bot)
	return policy
}
