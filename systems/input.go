package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// keyPressed is swapped out by tests.
var keyPressed = ebiten.IsKeyPressed

// UpdateInput polls the keyboard and updates the Input singleton.
// Must run BEFORE UpdateKeyboardIntents in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if keyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdateKeyboardIntents turns the polled actions into the intent of every
// human-controlled fighter. Edges latch until UpdateIntents consumes them.
func UpdateKeyboardIntents(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	components.Intent.Each(ecs.World, func(e *donburi.Entry) {
		intent := components.Intent.Get(e)

		intent.Move = 0
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			intent.Move = -1
		} else if GetAction(input, cfg.ActionMoveRight).Pressed {
			intent.Move = 1
		}
		intent.Block = GetAction(input, cfg.ActionBlock).Pressed

		if GetAction(input, cfg.ActionJump).JustPressed {
			intent.Jump = true
		}
		// One attack per tick, lowest action first
		for id := cfg.ActionAttackLight; id <= cfg.ActionAttackKyubi; id++ {
			if GetAction(input, id).JustPressed {
				intent.Attack = cfg.Input.AttackActions[id]
				break
			}
		}
	})
}

// RestartRequested reports whether the restart key was pressed this frame.
// Once the match is over the kyubi key restarts too.
func RestartRequested(ecs *ecs.ECS) bool {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionRestart).JustPressed {
		return true
	}
	return IsMatchFinished(ecs) && GetAction(input, cfg.ActionAttackKyubi).JustPressed
}
