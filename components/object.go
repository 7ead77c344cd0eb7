package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's broad-phase shape: a fighter's hurtbox or an
// orb's body.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// StrikeData is the probe a fighter sweeps its attack box with. It is
// emptied between swings.
type StrikeData struct {
	*resolv.Object
}

var Strike = donburi.NewComponentType[StrikeData]()

// Space is the singleton collision space.
var Space = donburi.NewComponentType[resolv.Space]()
