package fighter

import (
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SpecialKind names the running special move.
type SpecialKind int

const (
	SpecialNone SpecialKind = iota
	SpecialTeleport
	SpecialUnderground
	SpecialBeam
)

func (k SpecialKind) String() string {
	switch k {
	case SpecialTeleport:
		return "teleport"
	case SpecialUnderground:
		return "underground"
	case SpecialBeam:
		return "beam"
	}
	return "none"
}

// special is a timed sub-machine that owns the fighter while it runs.
// update returns true once the move is over.
type special interface {
	kind() SpecialKind
	update(f *Fighter, dt float64, opponent *Fighter) bool
	// striking reports whether the attack box is live
	striking() bool
}

// behind returns the x the fighter relocates to: offset past the opponent
// in the facing direction, or blind ahead of itself without one.
func behind(f, opponent *Fighter, offset, blind float64) float64 {
	dir := gamemath.Direction(f.FacingRight)
	if opponent == nil {
		return f.X + dir*blind
	}
	return opponent.X + dir*offset
}

// clampX keeps a relocation target on the terrain.
func (f *Fighter) clampX(x float64) float64 {
	return gamemath.Clamp(x, f.arena.Left, f.arena.Right-float64(f.frames()[0].W))
}

type teleport struct {
	phase   int
	timer   float64
	targetX float64
}

func (t *teleport) kind() SpecialKind { return SpecialTeleport }
func (t *teleport) striking() bool    { return t.phase >= 2 }

func (t *teleport) update(f *Fighter, dt float64, opponent *Fighter) bool {
	cfg := config.Specials.Teleport
	t.timer += dt

	switch t.phase {
	case 0: // vanish
		if t.timer < cfg.VanishFrameTime {
			f.setFrame(0)
		} else {
			f.setFrame(1)
		}
		if t.timer >= cfg.VanishTime {
			t.phase, t.timer = 1, 0
			t.targetX = behind(f, opponent, cfg.BehindOffset, cfg.BlindOffset)
		}
	case 1: // invisible
		f.setFrame(1)
		if t.timer >= cfg.HoldTime {
			t.phase, t.timer = 2, 0
			f.X = f.clampX(t.targetX)
			f.Y = max(f.arena.GroundY-cfg.ReappearHeight, f.arena.Top)
			f.VY = 0
			f.OnGround = false
		}
	case 2: // falling back in
		f.setFrame(2)
		f.VY += config.Physics.Gravity * dt
		f.Y = min(f.Y+f.VY*dt, f.arena.GroundY)
		if t.timer >= cfg.ReappearTime || f.Y >= f.arena.GroundY {
			t.phase, t.timer = 3, 0
		}
	case 3: // landing
		f.setFrame(3)
		f.Y = f.arena.GroundY
		f.VY = 0
		f.OnGround = true
		if t.timer >= cfg.LandTime {
			return true
		}
	}
	return false
}

type underground struct {
	phase   int
	timer   float64
	targetX float64
	rise    *gween.Tween
	offset  float64
}

func newUnderground() *underground {
	cfg := config.Specials.Underground
	return &underground{
		rise: gween.New(float32(cfg.EmergeRise), 0, float32(cfg.EmergeTime), ease.Linear),
	}
}

func (u *underground) kind() SpecialKind { return SpecialUnderground }
func (u *underground) striking() bool    { return u.phase == 2 }

// crackFrame is the ground-crack overlay frame, or -1 outside the emerge.
func (u *underground) crackFrame() int {
	if u.phase != 2 {
		return -1
	}
	return u.step()
}

func (u *underground) step() int {
	cfg := config.Specials.Underground
	return gamemath.ClampInt(int(u.timer/cfg.EmergeStep), 0, 2)
}

func (u *underground) update(f *Fighter, dt float64, opponent *Fighter) bool {
	cfg := config.Specials.Underground
	u.timer += dt

	switch u.phase {
	case 0: // strike the ground
		if u.timer < cfg.IntroFrameTime {
			f.setFrame(0)
		} else {
			f.setFrame(1)
		}
		if u.timer >= cfg.IntroTime {
			u.phase, u.timer = 1, 0
			u.targetX = behind(f, opponent, cfg.TargetOffset, cfg.BlindOffset)
		}
	case 1: // smoke
		f.setFrame(2)
		if u.timer >= cfg.SmokeTime {
			u.phase, u.timer = 2, 0
			f.X = f.clampX(u.targetX)
			u.rise.Reset()
			u.offset = cfg.EmergeRise
			f.setFrame(3)
		}
	case 2: // emerge
		f.setFrame(3 + u.step())
		cur, _ := u.rise.Update(float32(dt))
		u.offset = float64(cur)
		if u.timer >= cfg.EmergeTime {
			return true
		}
	}
	return false
}

type beam struct {
	firing bool
	timer  float64
	endX   float64
}

func newBeam(f *Fighter) *beam {
	f.anim.FPS = config.Specials.Beam.TransformFPS
	return &beam{}
}

func (b *beam) kind() SpecialKind { return SpecialBeam }

func (b *beam) striking() bool {
	return b.firing && b.timer > config.Specials.Beam.WarmUp
}

func (b *beam) update(f *Fighter, dt float64, opponent *Fighter) bool {
	if !b.firing {
		if f.FrameIndex() < len(f.frames())-1 {
			f.anim.Update(dt)
			return false
		}
		b.firing = true
	}

	f.anim.Hold()
	b.timer += dt
	b.endX = beamEnd(f, opponent)
	return b.timer >= config.Specials.Beam.Duration
}

// beamEnd is the screen edge in the facing direction, or the opponent's
// near edge when the opponent stands in the beam's path.
func beamEnd(f, opponent *Fighter) float64 {
	if f.FacingRight {
		if opponent != nil && opponent.X > f.X {
			return float64(opponent.Hitbox().Left())
		}
		return f.arena.ScreenW
	}
	if opponent != nil && opponent.X < f.X {
		return float64(opponent.Hitbox().Right())
	}
	return 0
}

// finishSpecial returns the fighter to idle after a special runs out.
func (f *Fighter) finishSpecial() {
	if f.special.kind() == SpecialBeam {
		f.Gauge = 0
	}
	f.special = nil
	f.attacking = false
	f.attackKind = config.AttackNone
	f.attackDamage = 0
	f.attackHit = false
	f.enterState(config.Idle)
}
