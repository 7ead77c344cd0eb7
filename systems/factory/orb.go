package factory

import (
	"github.com/automoto/shinobi-duel/archetypes"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/projectile"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOrb spawns a released chakra orb owned by side.
func CreateOrb(ecs *ecs.ECS, orb *projectile.Orb, side cfg.Side) *donburi.Entry {
	e := archetypes.Orb.Spawn(ecs)
	components.Orb.SetValue(e, components.OrbData{Orb: orb, Side: side})

	var x, y, w, h float64
	if box, ok := orb.Hitbox(); ok {
		x, y, w, h = float64(box.X), float64(box.Y), float64(box.W), float64(box.H)
	}
	obj := resolv.NewObject(x, y, w, h, tags.ResolvOrb, tags.ResolvSide(side))
	obj.Data = e
	components.Object.Set(e, &components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return e
}

// RemoveOrb deletes an orb entity and its collision object.
func RemoveOrb(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
	}
	ecs.World.Remove(e.Entity())
}
