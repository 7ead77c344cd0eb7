package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	FPS    int
}

// PhysicsConfig contains global movement constants (pixels, seconds)
type PhysicsConfig struct {
	Gravity   float64
	JumpForce float64

	// Knockback decays multiplicatively each tick and snaps to zero below the threshold
	KnockbackFriction float64
	KnockbackSnap     float64
}

// ArenaConfig describes the playable terrain.
// A Tiled map can override these at startup.
type ArenaConfig struct {
	Name         string
	GroundY      float64
	TerrainLeft  float64
	TerrainRight float64
	TerrainTop   float64
	TerrainBot   float64
	Spawns       [2]SpawnConfig
}

// SpawnConfig is a fighter start position.
type SpawnConfig struct {
	X           float64
	FacingRight bool
}

// FighterRole selects movement speed.
type FighterRole int

const (
	RolePlayer FighterRole = iota
	RoleEnemy
)

// FighterConfig contains per-fighter resource tuning
type FighterConfig struct {
	MaxHealth int

	// Speed by role
	Speeds map[FighterRole]float64

	// Block
	StaminaMax   float64
	StaminaRegen float64 // per second while not blocking
	StaminaDrain float64 // per second while blocking

	// Chakra
	ChakraMax   float64
	ChakraRegen float64 // per second while not attacking

	// Kyubi gauge
	GaugeMax     float64
	GaugePerHit  float64
	DefaultAnim  float64 // frames per second when a state has no override
	HitFlashRate float64
	FlickerRate  float64
}

// AttackSpec is one row of the attack table.
type AttackSpec struct {
	Damage    int
	State     StateID
	AirState  StateID // used when airborne; equals State when there is no air variant
	Cooldown  float64
	ChakraMin float64
	ChakraUse float64
	NeedGauge bool
}

// ReactionTier is a hit-reaction severity bucket.
type ReactionTier struct {
	MinDamage  int
	State      StateID
	AirState   StateID
	HitStun    float64
	Invincible float64
	Knockback  float64
}

// CombatConfig contains damage resolution values
type CombatConfig struct {
	Attacks map[AttackKind]AttackSpec

	// Ordered heaviest first
	Heavy  ReactionTier
	Medium ReactionTier
	Light  ReactionTier
	Kyubi  ReactionTier

	BlockDamageFactor  float64
	BlockStaminaFactor float64
	BlockKnockback     float64

	ComboRearmFrame int
}

// TeleportConfig contains teleport strike timings
type TeleportConfig struct {
	VanishFrameTime float64 // per frame of the disappear phase
	VanishTime      float64
	HoldTime        float64
	ReappearTime    float64
	LandTime        float64
	BehindOffset    float64
	BlindOffset     float64 // used when there is no opponent
	ReappearHeight  float64
}

// UndergroundConfig contains underground strike timings
type UndergroundConfig struct {
	IntroFrameTime float64
	IntroTime      float64
	SmokeTime      float64
	EmergeStep     float64
	EmergeTime     float64
	TargetOffset   float64
	BlindOffset    float64
	EmergeRise     float64 // draw offset at the start of the emerge phase
	CrackOffsetY   float64
}

// BeamConfig contains the kyubi beam values
type BeamConfig struct {
	TransformFPS float64
	Duration     float64
	WarmUp       float64 // firing time before the beam box becomes active
	Height       float64
	OffsetRight  float64
	OffsetLeft   float64
	OffsetY      float64
	DrawRaise    float64

	// Sprite segment placement relative to the fighter
	DrawStartRight float64
	DrawStartLeft  float64
	DrawStartY     float64
}

// SpecialsConfig groups the special-move sub-machines
type SpecialsConfig struct {
	Teleport    TeleportConfig
	Underground UndergroundConfig
	Beam        BeamConfig
}

// OrbConfig contains chakra orb projectile values
type OrbConfig struct {
	Speed      float64
	Damage     int
	AnimFPS    float64
	OffsetR    float64
	OffsetL    float64
	OffsetY    float64
	OffScreen  float64 // distance past the screen edge before deactivation
	MaxLive    int
	ReleaseEnd bool // release when the special animation reaches its last frame
}

// HUDConfig contains viewer colours
type HUDConfig struct {
	Background   color.RGBA
	Terrain      color.RGBA
	Ground       color.RGBA
	SideColors   [2]color.RGBA
	Health       color.RGBA
	Chakra       color.RGBA
	Stamina      color.RGBA
	Gauge        color.RGBA
	Orb          color.RGBA
	Beam         color.RGBA
	Crack        color.RGBA
	HitboxColor  color.RGBA
	AttackColor  color.RGBA
	OverlayColor color.RGBA
	TextColor    color.RGBA
	BarWidth     float64
	BarHeight    float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	Verbose      bool
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Arena ArenaConfig
var Fighter FighterConfig
var Combat CombatConfig
var Specials SpecialsConfig
var Orb OrbConfig
var HUD HUDConfig
var Debug DebugConfig

// Color palette
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1200,
		Height: 600,
		FPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:           1200,
		JumpForce:         -400,
		KnockbackFriction: 0.85,
		KnockbackSnap:     10,
	}

	Arena = ArenaConfig{
		Name:         "training-field",
		GroundY:      350,
		TerrainLeft:  60,
		TerrainRight: 1140,
		TerrainTop:   230,
		TerrainBot:   490,
		Spawns: [2]SpawnConfig{
			{X: 150, FacingRight: true},
			{X: 1000, FacingRight: false},
		},
	}

	Fighter = FighterConfig{
		MaxHealth: 100,
		Speeds: map[FighterRole]float64{
			RolePlayer: 200,
			RoleEnemy:  150,
		},
		StaminaMax:   100,
		StaminaRegen: 30,
		StaminaDrain: 40,
		ChakraMax:    100,
		ChakraRegen:  15,
		GaugeMax:     100,
		GaugePerHit:  10,
		DefaultAnim:  10,
		HitFlashRate: 10,
		FlickerRate:  8,
	}

	Combat = CombatConfig{
		Attacks: map[AttackKind]AttackSpec{
			AttackLight: {
				Damage: 5, State: Attack, AirState: Attack, Cooldown: 0.4,
			},
			AttackHeavyKind: {
				Damage: 12, State: AttackHeavy, AirState: AttackHeavyAir, Cooldown: 0.6,
			},
			AttackTeleportKind: {
				Damage: 15, State: AttackTeleport, AirState: AttackTeleport, Cooldown: 1.5,
			},
			AttackComboKind: {
				Damage: 8, State: AttackCombo, AirState: AttackCombo, Cooldown: 0.8,
			},
			AttackSpecialKind: {
				Damage: 20, State: AttackSpecial, AirState: AttackSpecial, Cooldown: 2.0,
				ChakraMin: 50, ChakraUse: 50,
			},
			AttackUndergroundKind: {
				Damage: 27, State: AttackUnderground, AirState: AttackUnderground, Cooldown: 2.5,
				ChakraMin: 30, ChakraUse: 30,
			},
			AttackKyubiKind: {
				Damage: 1, State: AttackKyubi, AirState: AttackKyubi, Cooldown: 3.0,
				NeedGauge: true,
			},
		},
		Heavy: ReactionTier{
			MinDamage: 25, State: HitHeavy, AirState: HitKnockdown,
			HitStun: 0.5, Invincible: 1.0, Knockback: 500,
		},
		Medium: ReactionTier{
			MinDamage: 15, State: HitHeavy, AirState: HitHeavy,
			HitStun: 0.4, Invincible: 0.8, Knockback: 350,
		},
		Light: ReactionTier{
			State: HitLight, AirState: HitLight,
			HitStun: 0.3, Invincible: 0.6, Knockback: 250,
		},
		Kyubi: ReactionTier{
			State: HitKyubi, AirState: HitKyubi,
			HitStun: 2.0, Invincible: 2.0,
		},
		BlockDamageFactor:  0.1,
		BlockStaminaFactor: 0.5,
		BlockKnockback:     100,
		ComboRearmFrame:    7,
	}

	Specials = SpecialsConfig{
		Teleport: TeleportConfig{
			VanishFrameTime: 0.15,
			VanishTime:      0.3,
			HoldTime:        0.2,
			ReappearTime:    0.2,
			LandTime:        0.15,
			BehindOffset:    100,
			BlindOffset:     200,
			ReappearHeight:  150,
		},
		Underground: UndergroundConfig{
			IntroFrameTime: 0.2,
			IntroTime:      0.4,
			SmokeTime:      0.4,
			EmergeStep:     0.2,
			EmergeTime:     0.6,
			TargetOffset:   80,
			BlindOffset:    200,
			EmergeRise:     60,
			CrackOffsetY:   50,
		},
		Beam: BeamConfig{
			TransformFPS: 10,
			Duration:     1.0,
			WarmUp:       0.5,
			Height:       100,
			OffsetRight:  130,
			OffsetLeft:   50,
			OffsetY:      40,
			DrawRaise:    25,

			DrawStartRight: 130,
			DrawStartLeft:  -70,
			DrawStartY:     35,
		},
	}

	Orb = OrbConfig{
		Speed:      600,
		Damage:     20,
		AnimFPS:    12,
		OffsetR:    80,
		OffsetL:    -40,
		OffsetY:    30,
		OffScreen:  100,
		MaxLive:    8,
		ReleaseEnd: true,
	}

	HUD = HUDConfig{
		Background:   color.RGBA{R: 24, G: 32, B: 64, A: 255},
		Terrain:      color.RGBA{R: 86, G: 120, B: 60, A: 255},
		Ground:       color.RGBA{R: 120, G: 90, B: 60, A: 255},
		SideColors:   [2]color.RGBA{Orange, LightBlue},
		Health:       Green,
		Chakra:       Blue,
		Stamina:      Yellow,
		Gauge:        Red,
		Orb:          color.RGBA{R: 80, G: 200, B: 255, A: 220},
		Beam:         color.RGBA{R: 255, G: 120, B: 30, A: 200},
		Crack:        color.RGBA{R: 60, G: 40, B: 20, A: 255},
		HitboxColor:  color.RGBA{R: 0, G: 255, B: 0, A: 90},
		AttackColor:  color.RGBA{R: 255, G: 0, B: 0, A: 110},
		OverlayColor: BlackOverlay,
		TextColor:    White,
		BarWidth:     300,
		BarHeight:    14,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		Verbose:      false,
	}
}

// SpeedFor returns the movement speed for a role.
func SpeedFor(role FighterRole) float64 {
	if s, ok := Fighter.Speeds[role]; ok {
		return s
	}
	return Fighter.Speeds[RolePlayer]
}
