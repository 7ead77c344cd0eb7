package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch advances the match clock and decides the winner. Side A is
// checked first, so a double knockout goes to side B.
func UpdateMatch(e *ecs.ECS) {
	match := getMatch(e)
	if match == nil {
		return
	}

	switch match.State {
	case cfg.MatchStatePlaying:
		match.Ticks++
		match.Elapsed += deltaTime(e)

		sides := FighterEntries(e)
		if sides[cfg.SideA] == nil || sides[cfg.SideB] == nil {
			return
		}
		if components.Fighter.Get(sides[cfg.SideA]).IsDefeated() {
			match.Finish(cfg.SideB)
		} else if components.Fighter.Get(sides[cfg.SideB]).IsDefeated() {
			match.Finish(cfg.SideA)
		}

	case cfg.MatchStateFinished:
		// Results stay up until the scene restarts the match
	}
}

func getMatch(e *ecs.ECS) *components.MatchData {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(matchEntry)
}

// IsMatchPlaying returns true if the match is in the playing state
func IsMatchPlaying(e *ecs.ECS) bool {
	match := getMatch(e)
	if match == nil {
		return true // No match component = always playing
	}
	return match.State == cfg.MatchStatePlaying
}

// IsMatchFinished returns true if the match has ended
func IsMatchFinished(e *ecs.ECS) bool {
	match := getMatch(e)
	return match != nil && match.State == cfg.MatchStateFinished
}

// Winner returns the winning side, or SideNone while the match is running.
func Winner(e *ecs.ECS) cfg.Side {
	match := getMatch(e)
	if match == nil || match.State != cfg.MatchStateFinished {
		return cfg.SideNone
	}
	return match.Winner
}
