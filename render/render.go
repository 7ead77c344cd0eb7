// Package render draws a duel snapshot with flat shapes: every sprite is a
// frame-sized rectangle in its side's colour.
package render

import (
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/automoto/shinobi-duel/fonts"
	"github.com/automoto/shinobi-duel/projectile"
	"github.com/automoto/shinobi-duel/scenes"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudMargin     = 16
	barGap        = 4
	beamThickness = 28
	facingMarkW   = 6
)

// DrawDuel renders the whole frame.
func DrawDuel(screen *ebiten.Image, snap scenes.DuelSnapshot) {
	drawArena(screen, snap.Arena)

	for side := range snap.Fighters {
		drawFighter(screen, snap.Fighters[side], cfg.HUD.SideColors[side])
	}
	for _, o := range snap.Orbs {
		drawOrb(screen, o)
	}
	if snap.ShowHitboxes {
		drawHitboxes(screen, snap)
	}

	drawHUD(screen, snap)

	switch {
	case snap.Match.State == cfg.MatchStateFinished:
		drawOverlay(screen, BannerText(snap), "Enter or R to restart")
	case snap.Paused:
		drawOverlay(screen, "PAUSED", "P to resume")
	}
}

func drawArena(screen *ebiten.Image, a fighter.Arena) {
	screen.Fill(cfg.HUD.Background)
	vector.FillRect(screen,
		float32(a.Left), float32(a.Top),
		float32(a.Right-a.Left), float32(a.Bottom-a.Top),
		cfg.HUD.Terrain, false)
	vector.StrokeLine(screen,
		float32(a.Left), float32(a.GroundY),
		float32(a.Right), float32(a.GroundY),
		2, cfg.HUD.Ground, false)
}

func drawFighter(screen *ebiten.Image, v fighter.View, side color.RGBA) {
	if v.Flicker {
		return
	}
	body := side
	if v.Flash {
		body = cfg.White
	}

	if v.CrackFrame >= 0 {
		vector.FillRect(screen,
			float32(v.CrackX), float32(v.CrackY),
			float32(v.CrackOverlay.W), float32(v.CrackOverlay.H),
			cfg.HUD.Crack, false)
	}

	vector.FillRect(screen,
		float32(v.DrawX), float32(v.DrawY),
		float32(v.Frame.W), float32(v.Frame.H),
		body, false)

	markX := v.DrawX
	if v.FacingRight {
		markX += float64(v.Frame.W - facingMarkW)
	}
	vector.FillRect(screen, float32(markX), float32(v.DrawY), facingMarkW, float32(v.Frame.H), cfg.Black, false)

	if v.Beam {
		x0, x1 := v.BeamStartX, v.BeamEndX
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		vector.FillRect(screen, float32(x0), float32(v.BeamY), float32(x1-x0), beamThickness, cfg.HUD.Beam, false)
	}

	face := fonts.Small.Get()
	label := v.State.String()
	text.Draw(screen, label, face, int(v.DrawX), int(v.DrawY)-4, cfg.HUD.TextColor)
}

func drawOrb(screen *ebiten.Image, o projectile.View) {
	r := float32(o.Frame.W) / 2
	vector.FillCircle(screen, float32(o.X)+r, float32(o.Y)+float32(o.Frame.H)/2, r, cfg.HUD.Orb, true)
}

func drawHitboxes(screen *ebiten.Image, snap scenes.DuelSnapshot) {
	for _, v := range snap.Fighters {
		strokeRect(screen, v.Hitbox, cfg.HUD.HitboxColor)
		if v.HasAttackBox {
			strokeRect(screen, v.AttackBox, cfg.HUD.AttackColor)
		}
	}
	for _, o := range snap.Orbs {
		strokeRect(screen, gamemath.NewRect(o.X, o.Y, float64(o.Frame.W), float64(o.Frame.H)), cfg.HUD.AttackColor)
	}
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.RGBA) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}

// bar is one resource meter in the HUD.
type bar struct {
	value, max float64
	color      color.RGBA
}

func fighterBars(v fighter.View) []bar {
	fc := cfg.Fighter
	return []bar{
		{float64(v.Health), float64(fc.MaxHealth), cfg.HUD.Health},
		{v.Chakra, fc.ChakraMax, cfg.HUD.Chakra},
		{v.Stamina, fc.StaminaMax, cfg.HUD.Stamina},
		{v.Gauge, fc.GaugeMax, cfg.HUD.Gauge},
	}
}

func drawHUD(screen *ebiten.Image, snap scenes.DuelSnapshot) {
	width := float64(screen.Bounds().Dx())
	face := fonts.HUD.Get()
	hud := cfg.HUD

	for side, v := range snap.Fighters {
		x := float64(hudMargin)
		if cfg.Side(side) == cfg.SideB {
			x = width - hudMargin - hud.BarWidth
		}
		y := float64(hudMargin)

		text.Draw(screen, strings.ToUpper(v.Name), face, int(x), int(y)+12, hud.SideColors[side])
		y += 18

		for i, b := range fighterBars(v) {
			h := hud.BarHeight
			if i > 0 {
				h /= 2
			}
			vector.FillRect(screen, float32(x), float32(y), float32(hud.BarWidth), float32(h), color.RGBA{40, 40, 40, 255}, false)
			fill := Ratio(b.value, b.max) * float32(hud.BarWidth)
			if cfg.Side(side) == cfg.SideB {
				// Side B drains toward the screen edge
				vector.FillRect(screen, float32(x+hud.BarWidth)-fill, float32(y), fill, float32(h), b.color, false)
			} else {
				vector.FillRect(screen, float32(x), float32(y), fill, float32(h), b.color, false)
			}
			y += h + barGap
		}
	}

	clock := TimerText(snap.Match.Elapsed)
	text.Draw(screen, clock, face, centerTextX(clock, face, width), hudMargin+12, hud.TextColor)
}

func drawOverlay(screen *ebiten.Image, title, hint string) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)

	titleFont := fonts.Banner.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2), cfg.HUD.TextColor)

	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height/2)+40, cfg.HUD.TextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

// Ratio is value/limit clamped to [0, 1].
func Ratio(value, limit float64) float32 {
	if limit <= 0 || value <= 0 {
		return 0
	}
	if value >= limit {
		return 1
	}
	return float32(value / limit)
}

// TimerText formats elapsed match time as m:ss.
func TimerText(elapsed float64) string {
	secs := int(elapsed)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// BannerText is the end-of-match headline.
func BannerText(snap scenes.DuelSnapshot) string {
	w := snap.Match.Winner
	if w != cfg.SideA && w != cfg.SideB {
		return "DRAW"
	}
	return strings.ToUpper(snap.Fighters[w].Name) + " WINS"
}
