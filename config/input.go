package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionBlock
	ActionAttackLight
	ActionAttackHeavy
	ActionAttackTeleport
	ActionAttackCombo
	ActionAttackSpecial
	ActionAttackUnderground
	ActionAttackKyubi
	ActionPause
	ActionRestart
	ActionToggleHitboxes
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Edge-triggered actions that start an attack
	AttackActions map[ActionID]AttackKind
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:          {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionMoveRight:         {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionJump:              {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionBlock:             {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionAttackLight:       {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionAttackHeavy:       {Keys: []ebiten.Key{ebiten.KeyZ}},
			ActionAttackTeleport:    {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionAttackCombo:       {Keys: []ebiten.Key{ebiten.KeyC}},
			ActionAttackSpecial:     {Keys: []ebiten.Key{ebiten.KeyQ}},
			ActionAttackUnderground: {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionAttackKyubi:       {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionPause:             {Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
			// R also restarts once the match is over
			ActionRestart:        {Keys: []ebiten.Key{ebiten.KeyEnter}},
			ActionToggleHitboxes: {Keys: []ebiten.Key{ebiten.KeyH}},
		},
		AttackActions: map[ActionID]AttackKind{
			ActionAttackLight:       AttackLight,
			ActionAttackHeavy:       AttackHeavyKind,
			ActionAttackTeleport:    AttackTeleportKind,
			ActionAttackCombo:       AttackComboKind,
			ActionAttackSpecial:     AttackSpecialKind,
			ActionAttackUnderground: AttackUndergroundKind,
			ActionAttackKyubi:       AttackKyubiKind,
		},
	}
}
