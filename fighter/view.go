package fighter

import (
	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
)

// View is a read-only copy of everything a renderer needs. It holds no
// references into the live fighter.
type View struct {
	Name        string
	State       config.StateID
	Special     SpecialKind
	Frame       animations.Frame
	FrameIndex  int
	FacingRight bool

	X, Y         float64
	DrawX, DrawY float64

	Hitbox       gamemath.Rect
	AttackBox    gamemath.Rect
	HasAttackBox bool

	Flash   bool // hit flash
	Flicker bool // invincibility flicker

	// Ground-crack overlay during the underground emerge; CrackFrame is -1 when hidden
	CrackFrame   int
	CrackX       float64
	CrackY       float64
	CrackOverlay animations.Frame

	Beam       bool
	BeamStartX float64
	BeamEndX   float64
	BeamY      float64

	Health     int
	Stamina    float64
	Chakra     float64
	Gauge      float64
	Blocking   bool
	Attacking  bool
	Hit        bool
	Invincible bool
}

// View snapshots the fighter for drawing.
func (f *Fighter) View() View {
	frame := f.Frame()
	v := View{
		Name:        f.Name,
		State:       f.state,
		Special:     f.Special(),
		Frame:       frame,
		FrameIndex:  f.FrameIndex(),
		FacingRight: f.FacingRight,
		X:           f.X,
		Y:           f.Y,
		DrawX:       f.X,
		DrawY:       f.Y + f.drawOffset(frame),
		Hitbox:      f.Hitbox(),
		CrackFrame:  -1,
		Health:      f.Health,
		Stamina:     f.Stamina,
		Chakra:      f.Chakra,
		Gauge:       f.Gauge,
		Blocking:    f.blocking,
		Attacking:   f.attacking,
		Hit:         f.hit,
		Invincible:  f.IsInvincible(),
	}
	v.AttackBox, v.HasAttackBox = f.AttackBox()

	if f.state != config.HitKyubi {
		cfg := config.Fighter
		v.Flash = f.hit && int(f.hitTimer*cfg.HitFlashRate)%2 == 1
		v.Flicker = !v.Flash && f.IsInvincible() && int(f.invTimer*cfg.FlickerRate)%2 == 1
	}

	if u, ok := f.special.(*underground); ok {
		if idx := u.crackFrame(); idx >= 0 && idx < len(f.char.Overlay) {
			overlay := f.char.Overlay[idx]
			v.CrackFrame = idx
			v.CrackOverlay = overlay
			v.CrackX = v.DrawX + float64((frame.W-overlay.W)/2)
			v.CrackY = f.Y + config.Specials.Underground.CrackOffsetY
		}
	}

	if b, ok := f.special.(*beam); ok && b.firing {
		cfg := config.Specials.Beam
		v.Beam = true
		v.BeamStartX = f.X + cfg.DrawStartLeft
		if f.FacingRight {
			v.BeamStartX = f.X + cfg.DrawStartRight
		}
		v.BeamEndX = b.endX
		v.BeamY = v.DrawY + cfg.DrawStartY
	}
	return v
}

// drawOffset is the state-specific vertical draw adjustment.
func (f *Fighter) drawOffset(frame animations.Frame) float64 {
	switch config.Describe(f.state).DrawOffset {
	case config.DrawBeamRaise:
		// Keep the feet on the ground while the sprite grows
		var dy float64
		if ref := f.char.Frames(config.Idle)[0].H; frame.H > ref {
			dy -= float64(frame.H - ref)
		}
		return dy - config.Specials.Beam.DrawRaise
	case config.DrawEmerge:
		if u, ok := f.special.(*underground); ok && u.phase == 2 {
			return u.offset
		}
	}
	return 0
}
