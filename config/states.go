package config

// StateID is the top-level animation/combat state of a fighter.
type StateID int

const (
	Idle StateID = iota
	Run
	Jump
	Block
	Attack
	AttackHeavy
	AttackHeavyAir
	AttackTeleport
	AttackCombo
	AttackSpecial
	AttackKyubi
	AttackUnderground
	HitLight
	HitHeavy
	HitKnockdown
	HitKyubi
	StateCount // Must be last - used for array sizing
)

// StateToName maps each state to the tag used in roster files.
var StateToName = map[StateID]string{
	Idle:              "idle",
	Run:               "run",
	Jump:              "jump",
	Block:             "block",
	Attack:            "attack",
	AttackHeavy:       "attack_heavy",
	AttackHeavyAir:    "attack_heavy_air",
	AttackTeleport:    "attack_teleport",
	AttackCombo:       "attack_combo",
	AttackSpecial:     "attack_special",
	AttackKyubi:       "attack_kyubi",
	AttackUnderground: "attack_underground",
	HitLight:          "hit_light",
	HitHeavy:          "hit_heavy",
	HitKnockdown:      "hit_knockdown",
	HitKyubi:          "hit_kyubi",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}

// StateFromName is the inverse of StateToName.
func StateFromName(name string) (StateID, bool) {
	for id, n := range StateToName {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// IsAttack reports whether s is one of the attack states.
func (s StateID) IsAttack() bool {
	return s >= Attack && s <= AttackUnderground
}

// IsHit reports whether s is a hit reaction.
func (s StateID) IsHit() bool {
	return s >= HitLight && s <= HitKyubi
}

// AttackKind selects an entry of the attack table.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackLight
	AttackHeavyKind
	AttackTeleportKind
	AttackComboKind
	AttackSpecialKind
	AttackUndergroundKind
	AttackKyubiKind
)

var attackKindNames = map[AttackKind]string{
	AttackNone:            "none",
	AttackLight:           "light",
	AttackHeavyKind:       "heavy",
	AttackTeleportKind:    "teleport",
	AttackComboKind:       "combo",
	AttackSpecialKind:     "special",
	AttackUndergroundKind: "underground",
	AttackKyubiKind:       "kyubi",
}

func (k AttackKind) String() string {
	if name, ok := attackKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseAttackKind accepts the names printed by String.
func ParseAttackKind(name string) (AttackKind, bool) {
	for k, n := range attackKindNames {
		if n == name {
			return k, true
		}
	}
	return AttackNone, false
}

// DamageKind tells TakeDamage which reaction rules apply.
type DamageKind int

const (
	DamageLight DamageKind = iota
	DamageHeavy
	DamageTeleport
	DamageCombo
	DamageSpecial
	DamageUnderground
	DamageKyubiBeam
)

// DamageKindFor maps an attack to the damage kind it inflicts.
func DamageKindFor(k AttackKind) DamageKind {
	switch k {
	case AttackHeavyKind:
		return DamageHeavy
	case AttackTeleportKind:
		return DamageTeleport
	case AttackComboKind:
		return DamageCombo
	case AttackSpecialKind:
		return DamageSpecial
	case AttackUndergroundKind:
		return DamageUnderground
	case AttackKyubiKind:
		return DamageKyubiBeam
	}
	return DamageLight
}

// MatchStateID tracks the lifecycle of a duel.
type MatchStateID int

const (
	MatchStatePlaying MatchStateID = iota
	MatchStateFinished
)

// Side identifies one of the two fighters.
type Side int

const (
	SideNone Side = iota - 1
	SideA
	SideB
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	}
	return SideNone
}
