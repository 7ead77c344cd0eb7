package components

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// SideStats counts what one side achieved during a match.
type SideStats struct {
	Hits      int // connects that were not shrugged off
	Blocked   int
	OrbsFired int
	Damage    int // health taken from the opponent
}

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State   cfg.MatchStateID
	Winner  cfg.Side
	Elapsed float64 // simulated seconds
	Ticks   int
	Stats   [2]SideStats
}

var Match = donburi.NewComponentType[MatchData]()

// StatsFor returns the stats of side, or nil for SideNone.
func (m *MatchData) StatsFor(side cfg.Side) *SideStats {
	if side != cfg.SideA && side != cfg.SideB {
		return nil
	}
	return &m.Stats[side]
}

// Finish ends the match with winner.
func (m *MatchData) Finish(winner cfg.Side) {
	m.State = cfg.MatchStateFinished
	m.Winner = winner
}
