package config

// LoopMode decides what happens when an animation passes its last frame.
type LoopMode int

const (
	LoopWrap LoopMode = iota
	LoopFreeze
)

// BoxShape selects how a state's attack box is derived.
type BoxShape int

const (
	BoxNone BoxShape = iota
	// Active within ±1 frame of the animation midpoint
	BoxMidSwing
	// Active on the listed frame windows
	BoxFrameWindows
	// Active while the special move reports a strike phase, centred on the sprite
	BoxSpecialPhase
	// Screen-wide beam once firing has warmed up
	BoxBeam
)

// FrameWindow is an inclusive range of frame indices.
type FrameWindow struct {
	First int
	Last  int
}

// Contains reports whether idx lies in the window.
func (w FrameWindow) Contains(idx int) bool {
	return idx >= w.First && idx <= w.Last
}

// AttackBoxRule sizes and places an attack box relative to the current frame.
// Sizes are fractions of the frame. When facing right the box starts at
// x + w*FrontRight, otherwise at x - boxW + w*FrontLeft.
type AttackBoxRule struct {
	Shape      BoxShape
	Windows    []FrameWindow
	W, H       float64
	FrontRight float64
	FrontLeft  float64
	OffsetY    float64
}

// DrawOffsetRule selects a state-specific vertical draw adjustment.
type DrawOffsetRule int

const (
	DrawNone DrawOffsetRule = iota
	DrawBeamRaise
	DrawEmerge
)

// StateDescriptor replaces per-state branching in the fighter update.
type StateDescriptor struct {
	AnimFPS    float64 // 0 uses Fighter.DefaultAnim
	Loop       LoopMode
	AttackBox  AttackBoxRule
	DrawOffset DrawOffsetRule
	MinFrames  int // sequences shorter than this are rejected at load time
}

var meleeBox = AttackBoxRule{
	Shape: BoxMidSwing, W: 0.4, H: 0.5, FrontRight: 0.7, FrontLeft: 0.3, OffsetY: 0.3,
}

// StateTable holds the descriptor of every state.
var StateTable = [StateCount]StateDescriptor{
	Idle:           {MinFrames: 1},
	Run:            {MinFrames: 1},
	Jump:           {MinFrames: 1},
	Block:          {MinFrames: 1},
	Attack:         {AttackBox: meleeBox, MinFrames: 2},
	AttackHeavy:    {AttackBox: meleeBox, MinFrames: 2},
	AttackHeavyAir: {AttackBox: meleeBox, MinFrames: 2},
	AttackTeleport: {
		AttackBox: AttackBoxRule{Shape: BoxSpecialPhase, W: 0.8, H: 0.8},
		MinFrames: 4,
	},
	AttackCombo: {
		AnimFPS: 15,
		AttackBox: AttackBoxRule{
			Shape:   BoxFrameWindows,
			Windows: []FrameWindow{{First: 2, Last: 5}, {First: 8, Last: 12}},
			W:       0.5, H: 0.5, FrontRight: 0.6, FrontLeft: 0.4, OffsetY: 0.3,
		},
		MinFrames: 13,
	},
	AttackSpecial: {
		AnimFPS: 12,
		AttackBox: AttackBoxRule{
			Shape:   BoxFrameWindows,
			Windows: []FrameWindow{{First: 9, Last: 12}},
			W:       0.7, H: 0.7, FrontRight: 0.6, FrontLeft: 0.4, OffsetY: 0.2,
		},
		MinFrames: 13,
	},
	AttackKyubi: {
		Loop:       LoopFreeze,
		AttackBox:  AttackBoxRule{Shape: BoxBeam},
		DrawOffset: DrawBeamRaise,
		MinFrames:  1,
	},
	AttackUnderground: {
		AttackBox:  AttackBoxRule{Shape: BoxSpecialPhase, W: 0.9, H: 0.9},
		DrawOffset: DrawEmerge,
		MinFrames:  6,
	},
	HitLight:     {MinFrames: 1},
	HitHeavy:     {MinFrames: 1},
	HitKnockdown: {MinFrames: 1},
	HitKyubi:     {Loop: LoopFreeze, MinFrames: 1},
}

// Describe returns the descriptor for s.
func Describe(s StateID) StateDescriptor {
	if s < 0 || s >= StateCount {
		return StateDescriptor{}
	}
	return StateTable[s]
}

// AnimFPS returns the playback rate of s.
func AnimFPS(s StateID) float64 {
	if fps := Describe(s).AnimFPS; fps > 0 {
		return fps
	}
	return Fighter.DefaultAnim
}
