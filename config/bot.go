package config

// BotDifficulty affects ranges, attack pacing and defensive play
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

var botDifficultyNames = map[BotDifficulty]string{
	BotDifficultyEasy:   "easy",
	BotDifficultyNormal: "normal",
	BotDifficultyHard:   "hard",
}

func (d BotDifficulty) String() string {
	if name, ok := botDifficultyNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseBotDifficulty accepts the names printed by String.
func ParseBotDifficulty(name string) (BotDifficulty, bool) {
	for d, n := range botDifficultyNames {
		if n == name {
			return d, true
		}
	}
	return BotDifficultyNormal, false
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	AttackRange    float64 // Horizontal distance to start attacking
	DetectionRange float64 // Horizontal distance to start chasing
	CooldownMin    float64 // Seconds between AI attacks, drawn uniformly
	CooldownMax    float64
	PatrolMin      float64 // Seconds a patrol direction is held, drawn uniformly
	PatrolMax      float64
	BlockChance    float64 // Chance to guard an incoming swing while on cooldown
	Attack         AttackKind
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				AttackRange:    80,
				DetectionRange: 250,
				CooldownMin:    2.0,
				CooldownMax:    3.0,
				PatrolMin:      1,
				PatrolMax:      3,
				Attack:         AttackLight,
			},
			BotDifficultyNormal: {
				AttackRange:    100,
				DetectionRange: 300,
				CooldownMin:    1.5,
				CooldownMax:    2.5,
				PatrolMin:      1,
				PatrolMax:      3,
				Attack:         AttackLight,
			},
			BotDifficultyHard: {
				AttackRange:    110,
				DetectionRange: 400,
				CooldownMin:    0.8,
				CooldownMax:    1.4,
				PatrolMin:      0.5,
				PatrolMax:      1.5,
				BlockChance:    0.5,
				Attack:         AttackLight,
			},
		},
	}
}

// BotTuning returns the tuning for d, falling back to normal.
func BotTuning(d BotDifficulty) BotDifficultyConfig {
	if c, ok := Bot.Difficulties[d]; ok {
		return c
	}
	return Bot.Difficulties[BotDifficultyNormal]
}
