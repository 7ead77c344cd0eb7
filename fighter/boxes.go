package fighter

import (
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
)

// Bounds is the sprite rectangle of the current frame.
func (f *Fighter) Bounds() gamemath.Rect {
	fr := f.Frame()
	return gamemath.NewRect(f.X, f.Y, float64(fr.W), float64(fr.H))
}

// Hitbox is the vulnerable body region: 60% by 80% of the frame, centred.
func (f *Fighter) Hitbox() gamemath.Rect {
	return f.Bounds().Inset(0.6, 0.8)
}

// AttackBox returns the live strike rectangle, if any. It is only present
// while attacking, before the swing has connected, and inside the state's
// active window.
func (f *Fighter) AttackBox() (gamemath.Rect, bool) {
	if !f.attacking || f.attackHit {
		return gamemath.Rect{}, false
	}

	rule := config.Describe(f.state).AttackBox
	switch rule.Shape {
	case config.BoxMidSwing:
		impact := len(f.frames()) / 2
		idx := f.FrameIndex()
		if idx >= impact-1 && idx <= impact+1 {
			return f.frontBox(rule), true
		}
	case config.BoxFrameWindows:
		idx := f.FrameIndex()
		for _, w := range rule.Windows {
			if w.Contains(idx) {
				return f.frontBox(rule), true
			}
		}
	case config.BoxSpecialPhase:
		if f.special != nil && f.special.striking() {
			return f.Bounds().Inset(rule.W, rule.H), true
		}
	case config.BoxBeam:
		if f.special != nil && f.special.striking() {
			return f.beamBox(), true
		}
	}
	return gamemath.Rect{}, false
}

// frontBox places a box in front of the fighter.
func (f *Fighter) frontBox(rule config.AttackBoxRule) gamemath.Rect {
	fr := f.Frame()
	w, h := float64(fr.W), float64(fr.H)
	bw := float64(int(w * rule.W))
	bh := float64(int(h * rule.H))

	x := f.X - bw + w*rule.FrontLeft
	if f.FacingRight {
		x = f.X + w*rule.FrontRight
	}
	return gamemath.NewRect(x, f.Y+h*rule.OffsetY, bw, bh)
}

// beamBox spans a full screen width ahead of the fighter.
func (f *Fighter) beamBox() gamemath.Rect {
	cfg := config.Specials.Beam
	w := f.arena.ScreenW
	x := f.X - w + cfg.OffsetLeft
	if f.FacingRight {
		x = f.X + cfg.OffsetRight
	}
	return gamemath.NewRect(x, f.Y+cfg.OffsetY, w, cfg.Height)
}
