// Package fighter implements the per-combatant state machine: commands,
// damage resolution, the timed special moves and the physics integrator.
package fighter

import (
	"fmt"

	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/leveldata"
)

// Arena bounds a fighter's movement.
type Arena struct {
	GroundY float64
	Left    float64
	Right   float64
	Top     float64
	Bottom  float64
	ScreenW float64
}

// DefaultArena builds the arena from the global configuration.
func DefaultArena() Arena {
	return Arena{
		GroundY: config.Arena.GroundY,
		Left:    config.Arena.TerrainLeft,
		Right:   config.Arena.TerrainRight,
		Top:     config.Arena.TerrainTop,
		Bottom:  config.Arena.TerrainBot,
		ScreenW: float64(config.C.Width),
	}
}

// ArenaFromData converts a parsed TMX arena.
func ArenaFromData(data *leveldata.ArenaData) Arena {
	a := Arena{
		GroundY: data.GroundY,
		Left:    data.TerrainLeft,
		Right:   data.TerrainRight,
		Top:     data.TerrainTop,
		Bottom:  data.TerrainBot,
		ScreenW: float64(data.Width),
	}
	if a.ScreenW <= 0 {
		a.ScreenW = float64(config.C.Width)
	}
	return a
}

// Spawn is where a fighter starts a match. Fighters always start grounded.
type Spawn struct {
	X           float64
	FacingRight bool
}

// Fighter is one combatant. Commands are ignored or rejected while the
// fighter is busy; Update advances it by one simulation step.
type Fighter struct {
	Name  string
	Role  config.FighterRole
	Speed float64

	X, Y        float64
	VX, VY      float64
	KnockbackVX float64
	FacingRight bool
	OnGround    bool

	Health  int
	Stamina float64
	Chakra  float64
	Gauge   float64

	char  *animations.Character
	arena Arena
	spawn Spawn

	state config.StateID
	anim  animations.Animation

	attacking    bool
	attackKind   config.AttackKind
	attackDamage int
	attackHit    bool
	cooldown     float64

	blocking bool
	hit      bool
	hitTimer float64
	invTimer float64

	special  special
	orbReady bool
}

// New creates a fighter from a validated animation table.
func New(char *animations.Character, arena Arena, spawn Spawn) (*Fighter, error) {
	if char == nil {
		return nil, fmt.Errorf("fighter: nil character")
	}
	f := &Fighter{
		Name:  char.Name,
		Role:  char.Role,
		Speed: config.SpeedFor(char.Role),
		char:  char,
		arena: arena,
	}
	f.Reset(spawn)
	return f, nil
}

// Reset puts the fighter back at spawn with full resources.
func (f *Fighter) Reset(spawn Spawn) {
	f.spawn = spawn
	f.X = spawn.X
	f.Y = f.arena.GroundY
	f.VX, f.VY, f.KnockbackVX = 0, 0, 0
	f.FacingRight = spawn.FacingRight
	f.OnGround = true

	f.Health = config.Fighter.MaxHealth
	f.Stamina = config.Fighter.StaminaMax
	f.Chakra = config.Fighter.ChakraMax
	f.Gauge = 0

	f.attacking = false
	f.attackKind = config.AttackNone
	f.attackDamage = 0
	f.attackHit = false
	f.cooldown = 0
	f.blocking = false
	f.hit = false
	f.hitTimer = 0
	f.invTimer = 0
	f.special = nil
	f.orbReady = false

	f.state = config.Idle
	f.configureAnim()
}

// SetCharacter swaps the animation table, e.g. after a roster reload.
func (f *Fighter) SetCharacter(char *animations.Character) {
	if char == nil {
		return
	}
	f.char = char
	f.Name = char.Name
	f.Role = char.Role
	f.Speed = config.SpeedFor(char.Role)
	f.configureAnim()
}

// Character returns the fighter's animation table.
func (f *Fighter) Character() *animations.Character {
	return f.char
}

// Arena returns the bounds the fighter moves in.
func (f *Fighter) Arena() Arena {
	return f.arena
}

// enterState switches state and restarts its animation.
func (f *Fighter) enterState(s config.StateID) {
	f.state = s
	f.configureAnim()
}

func (f *Fighter) configureAnim() {
	desc := config.Describe(f.state)
	f.anim.Reconfigure(len(f.frames()), config.AnimFPS(f.state), desc.Loop == config.LoopFreeze)
}

func (f *Fighter) frames() []animations.Frame {
	return f.char.Frames(f.state)
}

// setFrame is used by the special moves, which drive frames by phase.
func (f *Fighter) setFrame(idx int) {
	f.anim.SetFrame(idx)
}

// FrameIndex returns the current frame index, always valid for the state.
func (f *Fighter) FrameIndex() int {
	idx := f.anim.Frame()
	n := len(f.frames())
	if idx < 0 || idx >= n {
		if debugAssertions {
			panic(fmt.Sprintf("fighter %s: frame %d out of range for %s (%d frames)", f.Name, idx, f.state, n))
		}
		f.anim.SetFrame(0)
		return 0
	}
	return idx
}

// Frame returns the current frame handle.
func (f *Fighter) Frame() animations.Frame {
	return f.frames()[f.FrameIndex()]
}

// Read-only state queries. They stay valid while a special move runs.
func (f *Fighter) State() config.StateID        { return f.state }
func (f *Fighter) IsAttacking() bool             { return f.attacking }
func (f *Fighter) IsBlocking() bool              { return f.blocking }
func (f *Fighter) IsHit() bool                   { return f.hit }
func (f *Fighter) IsInvincible() bool            { return f.invTimer > 0 }
func (f *Fighter) HitTimer() float64             { return f.hitTimer }
func (f *Fighter) InvincibleTimer() float64      { return f.invTimer }
func (f *Fighter) Cooldown() float64             { return f.cooldown }
func (f *Fighter) AttackKind() config.AttackKind { return f.attackKind }
func (f *Fighter) AttackDamage() int             { return f.attackDamage }
func (f *Fighter) AttackHit() bool               { return f.attackHit }

// MarkAttackHit records that the current swing connected.
func (f *Fighter) MarkAttackHit() {
	f.attackHit = true
}

// AddGauge charges the kyubi gauge, capped at its maximum.
func (f *Fighter) AddGauge(amount float64) {
	f.Gauge = min(config.Fighter.GaugeMax, max(0, f.Gauge+amount))
}

// Special reports which special move is running.
func (f *Fighter) Special() SpecialKind {
	if f.special == nil {
		return SpecialNone
	}
	return f.special.kind()
}

// IsFiringBeam reports whether the kyubi beam is out.
func (f *Fighter) IsFiringBeam() bool {
	b, ok := f.special.(*beam)
	return ok && b.firing
}

// IsDefeated reports whether the fighter has lost. A fighter still playing
// the beam death hold is not defeated until the hold expires.
func (f *Fighter) IsDefeated() bool {
	if f.Health > 0 {
		return false
	}
	return !(f.state == config.HitKyubi && f.hit)
}

// TakeOrbRequest returns and clears a pending chakra orb release.
func (f *Fighter) TakeOrbRequest() (OrbRequest, bool) {
	if !f.orbReady {
		return OrbRequest{}, false
	}
	f.orbReady = false

	cfg := config.Orb
	req := OrbRequest{Y: f.Y + cfg.OffsetY, Direction: 1}
	if f.FacingRight {
		req.X = f.X + cfg.OffsetR
	} else {
		req.X = f.X + cfg.OffsetL
		req.Direction = -1
	}
	return req, true
}

// OrbRequest is where and which way a released orb starts.
type OrbRequest struct {
	X, Y      float64
	Direction float64
}
