package systems

import (
	"log"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/projectile"
	"github.com/automoto/shinobi-duel/systems/factory"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrbs removes spent orbs, launches the orbs fighters released this
// step and moves every live orb.
func UpdateOrbs(e *ecs.ECS) {
	dt := deltaTime(e)

	var spent []*donburi.Entry
	var live [2]int
	tags.Orb.Each(e.World, func(entry *donburi.Entry) {
		orb := components.Orb.Get(entry)
		if !orb.Active {
			spent = append(spent, entry)
			return
		}
		if orb.Side == cfg.SideA || orb.Side == cfg.SideB {
			live[orb.Side]++
		}
	})
	for _, entry := range spent {
		factory.RemoveOrb(e, entry)
	}

	sides := FighterEntries(e)
	for _, side := range []cfg.Side{cfg.SideA, cfg.SideB} {
		if sides[side] == nil {
			continue
		}
		f := components.Fighter.Get(sides[side])
		req, ok := f.TakeOrbRequest()
		if !ok {
			continue
		}
		if live[side] >= cfg.Orb.MaxLive {
			log.Printf("%s: orb dropped, %d already in flight", f.Name, live[side])
			continue
		}

		orb := projectile.New(req.X, req.Y, req.Direction, f.Fighter, f.Character().Projectile, f.Arena().ScreenW)
		if !orb.Active {
			continue
		}
		factory.CreateOrb(e, orb, side)
		live[side]++
		if match := getMatch(e); match != nil {
			match.Stats[side].OrbsFired++
		}
		if cfg.Debug.Verbose {
			log.Printf("%s: orb released at (%.0f, %.0f) dir %.0f", f.Name, req.X, req.Y, req.Direction)
		}
	}

	tags.Orb.Each(e.World, func(entry *donburi.Entry) {
		components.Orb.Get(entry).Update(dt)
	})
}

// CountOrbs returns the number of live orbs.
func CountOrbs(e *ecs.ECS) int {
	n := 0
	tags.Orb.Each(e.World, func(entry *donburi.Entry) {
		if components.Orb.Get(entry).Active {
			n++
		}
	})
	return n
}
