package components

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// IntentData is what a human controller wants this tick. Move and Block are
// held; Jump and Attack are edges and are cleared once consumed.
type IntentData struct {
	Move   int
	Jump   bool
	Attack cfg.AttackKind
	Block  bool
}

var Intent = donburi.NewComponentType[IntentData]()

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
