// Package assets embeds the data files the duel needs: character animation
// tables and Tiled arena maps.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/shared/leveldata"
)

const (
	CharactersDir = "characters"
	ArenasDir     = "arenas"
	DefaultArena  = "training_field"
)

var (
	//go:embed characters/*.yaml
	characterFS embed.FS

	//go:embed arenas/*.tmx
	arenaFS embed.FS
)

// FS exposes the embedded character files.
func CharacterFS() fs.FS {
	return characterFS
}

// LoadRoster loads the embedded character roster.
func LoadRoster() (*animations.Roster, error) {
	return animations.LoadRoster(characterFS, CharactersDir)
}

// LoadArena loads an embedded arena by stem name.
func LoadArena(name string) (*leveldata.ArenaData, error) {
	if name == "" {
		name = DefaultArena
	}
	return leveldata.LoadArena(arenaFS, fmt.Sprintf("%s/%s.tmx", ArenasDir, name))
}

// ArenaNames lists the embedded arenas.
func ArenaNames() ([]string, error) {
	_, names, err := leveldata.LoadAllArenas(arenaFS, ArenasDir)
	return names, err
}
