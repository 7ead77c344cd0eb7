package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoTerrain is returned when an arena file has no terrain rectangle.
var ErrNoTerrain = errors.New("arena has no terrain object")

// LoadArena parses a TMX file and returns the arena bounds, ground line and
// spawn points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	var haveTerrain, haveGround bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Arena":
			for _, o := range og.Objects {
				switch o.Name {
				case "terrain":
					data.TerrainLeft = o.X
					data.TerrainTop = o.Y
					data.TerrainRight = o.X + o.Width
					data.TerrainBot = o.Y + o.Height
					haveTerrain = true
				case "ground":
					data.GroundY = o.Y
					haveGround = true
				}
			}
		case "Spawns":
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, SpawnPoint{
					X:           o.X,
					Side:        o.Properties.GetInt("side"),
					FacingRight: o.Properties.GetString("facing") != "left",
				})
			}
		}
	}

	if !haveTerrain {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoTerrain)
	}
	if !haveGround {
		// Fall back to the bottom of the terrain
		data.GroundY = data.TerrainBot
	}
	if data.GroundY < data.TerrainTop || data.GroundY > data.TerrainBot {
		return nil, fmt.Errorf("%s: ground line %.0f outside terrain", tmxPath, data.GroundY)
	}

	sort.Slice(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Side < data.Spawns[j].Side
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
