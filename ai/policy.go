// Package ai drives a fighter with the same commands a human player issues.
package ai

import (
	"math"
	"math/rand"

	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
)

// Behavior is the policy's current intent.
type Behavior int

const (
	Patrol Behavior = iota
	Chase
	Attack
)

func (b Behavior) String() string {
	switch b {
	case Chase:
		return "chase"
	case Attack:
		return "attack"
	}
	return "patrol"
}

// Policy is a distance-threshold enemy brain. It never reaches into the
// fighter beyond its public commands and queries.
type Policy struct {
	fighter *fighter.Fighter
	rng     *rand.Rand
	tuning  config.BotDifficultyConfig

	behavior       Behavior
	patrolTimer    float64
	attackCooldown float64
	lastErr        error
}

// New creates a policy for f. All randomness comes from rng, so a seeded
// generator replays the same decisions.
func New(f *fighter.Fighter, rng *rand.Rand, tuning config.BotDifficultyConfig) *Policy {
	return &Policy{
		fighter: f,
		rng:     rng,
		tuning:  tuning,
	}
}

// Reset forgets all decisions and draws from rng from now on.
func (p *Policy) Reset(rng *rand.Rand) {
	p.rng = rng
	p.behavior = Patrol
	p.patrolTimer = 0
	p.attackCooldown = 0
	p.lastErr = nil
}

// Decision state, exposed for tests and debug overlays.
func (p *Policy) Behavior() Behavior        { return p.behavior }
func (p *Policy) AttackCooldown() float64   { return p.attackCooldown }
func (p *Policy) PatrolTimer() float64      { return p.patrolTimer }
func (p *Policy) Fighter() *fighter.Fighter { return p.fighter }

// LastAttackError is the result of the most recent attack attempt.
func (p *Policy) LastAttackError() error { return p.lastErr }

// Update issues this tick's commands against player.
func (p *Policy) Update(dt float64, player *fighter.Fighter) {
	f := p.fighter
	if p.attackCooldown > 0 {
		p.attackCooldown -= dt
	}
	if player == nil {
		return
	}

	if f.IsBlocking() && !player.IsAttacking() {
		f.StopBlock()
	}

	distance := math.Abs(f.X - player.X)
	switch {
	case distance < p.tuning.AttackRange && !f.IsAttacking():
		if p.attackCooldown > 0 {
			p.guard(player)
			return
		}
		p.behavior = Attack
		f.StopBlock()
		p.lastErr = f.Attack(p.tuning.Attack)
		f.Move(0)
		p.attackCooldown = p.uniform(p.tuning.CooldownMin, p.tuning.CooldownMax)

	case distance < p.tuning.DetectionRange:
		p.behavior = Chase
		dir := -1
		if player.X > f.X {
			dir = 1
		}
		f.Move(dir)
		if !player.OnGround && f.OnGround {
			f.Jump()
		}

	default:
		p.behavior = Patrol
		p.patrolTimer -= dt
		if p.patrolTimer <= 0 {
			f.Move(p.rng.Intn(3) - 1)
			p.patrolTimer = p.uniform(p.tuning.PatrolMin, p.tuning.PatrolMax)
		}
	}
}

// guard raises a block against a swing while the attack is on cooldown.
func (p *Policy) guard(player *fighter.Fighter) {
	if p.tuning.BlockChance <= 0 || !player.IsAttacking() || p.fighter.IsBlocking() {
		return
	}
	if p.rng.Float64() < p.tuning.BlockChance {
		p.fighter.StartBlock()
	}
}

func (p *Policy) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}
