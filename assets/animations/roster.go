package animations

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/shinobi-duel/config"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrMissingState     = errors.New("missing state")
	ErrEmptySequence    = errors.New("empty frame sequence")
	ErrBadFrame         = errors.New("frame size must be positive")
	ErrShortSequence    = errors.New("sequence shorter than its frame windows")
	ErrUnknownMove      = errors.New("unknown move")
)

// baseStates must be present for every character.
var baseStates = []config.StateID{
	config.Idle, config.Run, config.Jump, config.Block,
	config.HitLight, config.HitHeavy, config.HitKnockdown,
}

// moveStates lists the states a move needs when a character declares it.
var moveStates = map[config.AttackKind][]config.StateID{
	config.AttackLight:           {config.Attack},
	config.AttackHeavyKind:       {config.AttackHeavy},
	config.AttackTeleportKind:    {config.AttackTeleport},
	config.AttackComboKind:       {config.AttackCombo},
	config.AttackSpecialKind:     {config.AttackSpecial},
	config.AttackUndergroundKind: {config.AttackUnderground},
	config.AttackKyubiKind:       {config.AttackKyubi},
}

// fallbacks name the state whose frames stand in for an absent one.
// Anything not listed falls back to idle.
var fallbacks = map[config.StateID]config.StateID{
	config.AttackHeavyAir: config.AttackHeavy,
}

// Frame is an opaque frame handle; only its size matters to the simulation.
type Frame struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Provider hands out frame sequences per character and state.
type Provider interface {
	Frames(character string, state config.StateID) ([]Frame, error)
}

// Character is the validated animation table of one fighter.
type Character struct {
	Name       string
	Role       config.FighterRole
	Moves      map[config.AttackKind]bool
	States     [config.StateCount][]Frame
	Projectile []Frame
	Overlay    []Frame
	Beam       []Frame
}

// Frames returns the sequence for state.
func (c *Character) Frames(state config.StateID) []Frame {
	if state < 0 || state >= config.StateCount {
		return c.States[config.Idle]
	}
	return c.States[state]
}

// CanPerform reports whether the character declared kind.
func (c *Character) CanPerform(kind config.AttackKind) bool {
	return c.Moves[kind]
}

// Roster is the set of loaded characters.
type Roster struct {
	characters map[string]*Character
}

// Frames implements Provider.
func (r *Roster) Frames(character string, state config.StateID) ([]Frame, error) {
	c, err := r.Character(character)
	if err != nil {
		return nil, err
	}
	return c.Frames(state), nil
}

// Character looks up a loaded character by name.
func (r *Roster) Character(name string) (*Character, error) {
	c, ok := r.characters[name]
	if !ok {
		return nil, fmt.Errorf("animations: %q: %w", name, ErrUnknownCharacter)
	}
	return c, nil
}

// Names returns the loaded character names in sorted order.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.characters))
	for n := range r.characters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type sequenceSpec struct {
	Count  int     `yaml:"count"`
	W      int     `yaml:"w"`
	H      int     `yaml:"h"`
	Frames []Frame `yaml:"frames"`
}

// CharacterSpec is the on-disk shape of a character file.
type CharacterSpec struct {
	Name       string                  `yaml:"name"`
	Role       string                  `yaml:"role"`
	Moves      []string                `yaml:"moves"`
	States     map[string]sequenceSpec `yaml:"states"`
	Projectile *sequenceSpec           `yaml:"projectile"`
	Overlay    *sequenceSpec           `yaml:"overlay"`
	Beam       *sequenceSpec           `yaml:"beam"`
}

func (s sequenceSpec) expand() []Frame {
	if len(s.Frames) > 0 {
		return append([]Frame(nil), s.Frames...)
	}
	frames := make([]Frame, s.Count)
	for i := range frames {
		frames[i] = Frame{W: s.W, H: s.H}
	}
	return frames
}

func optional(s *sequenceSpec) []Frame {
	if s == nil {
		return nil
	}
	return s.expand()
}

// ParseCharacter decodes and validates one character file.
func ParseCharacter(data []byte) (*Character, error) {
	var spec CharacterSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("animations: unmarshal: %w", err)
	}
	return spec.build()
}

func (spec CharacterSpec) build() (*Character, error) {
	if spec.Name == "" {
		return nil, errors.New("animations: character without a name")
	}

	c := &Character{
		Name:       spec.Name,
		Projectile: optional(spec.Projectile),
		Overlay:    optional(spec.Overlay),
		Beam:       optional(spec.Beam),
	}
	switch spec.Role {
	case "", "player":
		c.Role = config.RolePlayer
	case "enemy":
		c.Role = config.RoleEnemy
	default:
		return nil, fmt.Errorf("animations: %s: unknown role %q", spec.Name, spec.Role)
	}

	for name := range spec.States {
		if _, ok := config.StateFromName(name); !ok {
			return nil, fmt.Errorf("animations: %s: unknown state %q", spec.Name, name)
		}
	}

	required := map[config.StateID]bool{}
	for _, id := range baseStates {
		required[id] = true
	}
	c.Moves = make(map[config.AttackKind]bool, len(spec.Moves))
	for _, name := range spec.Moves {
		kind, ok := config.ParseAttackKind(name)
		if !ok || kind == config.AttackNone {
			return nil, fmt.Errorf("animations: %s: %q: %w", spec.Name, name, ErrUnknownMove)
		}
		c.Moves[kind] = true
		for _, id := range moveStates[kind] {
			required[id] = true
		}
	}

	for id := config.StateID(0); id < config.StateCount; id++ {
		seq, ok := spec.States[id.String()]
		if !ok {
			if required[id] {
				return nil, fmt.Errorf("animations: %s: state %s: %w", spec.Name, id, ErrMissingState)
			}
			continue
		}
		frames := seq.expand()
		if err := validateSequence(id, frames, required[id]); err != nil {
			return nil, fmt.Errorf("animations: %s: state %s: %w", spec.Name, id, err)
		}
		c.States[id] = frames
	}

	// Absent optional states borrow frames, idle by default
	for id := config.StateID(0); id < config.StateCount; id++ {
		if len(c.States[id]) > 0 {
			continue
		}
		from, ok := fallbacks[id]
		if !ok || len(c.States[from]) == 0 {
			from = config.Idle
		}
		c.States[id] = c.States[from]
	}

	for label, frames := range map[string][]Frame{
		"projectile": c.Projectile,
		"overlay":    c.Overlay,
		"beam":       c.Beam,
	} {
		for _, f := range frames {
			if f.W <= 0 || f.H <= 0 {
				return nil, fmt.Errorf("animations: %s: %s: %w", spec.Name, label, ErrBadFrame)
			}
		}
	}

	return c, nil
}

func validateSequence(id config.StateID, frames []Frame, required bool) error {
	if len(frames) == 0 {
		return ErrEmptySequence
	}
	for _, f := range frames {
		if f.W <= 0 || f.H <= 0 {
			return ErrBadFrame
		}
	}
	if !required {
		return nil
	}
	if need := RequiredFrames(id); len(frames) < need {
		return fmt.Errorf("%w: have %d, need %d", ErrShortSequence, len(frames), need)
	}
	return nil
}

// RequiredFrames is the shortest sequence a state can play without its
// frame windows pointing past the end.
func RequiredFrames(id config.StateID) int {
	desc := config.Describe(id)
	need := desc.MinFrames
	for _, w := range desc.AttackBox.Windows {
		if w.Last+1 > need {
			need = w.Last + 1
		}
	}
	if need < 1 {
		need = 1
	}
	return need
}

// NewRoster builds a roster from already validated characters.
func NewRoster(chars ...*Character) *Roster {
	r := &Roster{characters: make(map[string]*Character, len(chars))}
	for _, c := range chars {
		r.characters[c.Name] = c
	}
	return r
}

// LoadRoster reads every .yaml file in dir. Any invalid character fails
// the whole load.
func LoadRoster(fsys fs.FS, dir string) (*Roster, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("animations: read %s: %w", dir, err)
	}

	var chars []*Character
	for _, e := range entries {
		if e.IsDir() || !isSpecFile(e.Name()) {
			continue
		}
		filename := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, filename)
		if err != nil {
			return nil, fmt.Errorf("animations: load %s: %w", filename, err)
		}
		c, err := ParseCharacter(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		chars = append(chars, c)
	}
	if len(chars) == 0 {
		return nil, fmt.Errorf("animations: no character files in %s", dir)
	}
	return NewRoster(chars...), nil
}

func isSpecFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
