package systems

import (
	"github.com/automoto/shinobi-duel/components"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every broad-phase object onto the shape it stands for.
func UpdateObjects(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, syncFighter)
	tags.Orb.Each(ecs.World, func(e *donburi.Entry) {
		orb := components.Orb.Get(e)
		box, _ := orb.Hitbox()
		placeObject(components.Object.Get(e).Object, box)
	})
}

// syncFighter fits the hurtbox to the fighter's current hitbox and the
// strike probe to its attack box, or to nothing between swings.
func syncFighter(e *donburi.Entry) {
	f := components.Fighter.Get(e)
	placeObject(components.Object.Get(e).Object, f.Hitbox())

	box, _ := f.AttackBox()
	placeObject(components.Strike.Get(e).Object, box)
}

func placeObject(obj *resolv.Object, box gamemath.Rect) {
	obj.X = float64(box.X)
	obj.Y = float64(box.Y)
	obj.W = float64(box.W)
	obj.H = float64(box.H)
	obj.Update()
}
