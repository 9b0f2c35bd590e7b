// Package leveldata loads arena layouts from Tiled TMX files. It has no
// dependencies on ebitengine or donburi, pure data only.
package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/kiclash/config"
)

// Object group and property names read from the TMX file.
const (
	SpawnGroup     = "FighterSpawn"
	PropSide       = "side"
	PropFacing     = "facing"
	FacingLeft     = "left"
	FacingRight    = "right"
	arenaExtension = ".tmx"
)

var (
	ErrSpawnCount   = errors.New("leveldata: arena needs one spawn per side")
	ErrSpawnOutside = errors.New("leveldata: spawn outside the arena")
	ErrNoArenas     = errors.New("leveldata: no arenas found")
)

// Arena is the playfield size and the two fighter spawns parsed from a TMX
// map.
type Arena struct {
	Name   string
	Width  float64
	Height float64
	Spawns [2]config.Spawn
}

// LoadArena parses one TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), arenaExtension),
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	var seen [2]bool
	for _, og := range m.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			side := o.Properties.GetInt(PropSide)
			if side < 0 || side > 1 || seen[side] {
				return nil, fmt.Errorf("%w: %s has side %d twice or out of range", ErrSpawnCount, tmxPath, side)
			}
			if o.X < 0 || o.Y < 0 || o.X > a.Width || o.Y > a.Height {
				return nil, fmt.Errorf("%w: %s side %d at (%.0f, %.0f)", ErrSpawnOutside, tmxPath, side, o.X, o.Y)
			}
			seen[side] = true
			a.Spawns[side] = config.Spawn{
				X:           o.X,
				Y:           o.Y,
				FacingRight: facing(o.Properties.GetString(PropFacing), o.X, a.Width),
			}
		}
	}
	if !seen[0] || !seen[1] {
		return nil, fmt.Errorf("%w: %s", ErrSpawnCount, tmxPath)
	}
	return a, nil
}

// facing honours an explicit property and otherwise faces the centre.
func facing(prop string, x, width float64) bool {
	switch strings.ToLower(prop) {
	case FacingRight:
		return true
	case FacingLeft:
		return false
	}
	return x < width/2
}

// Apply copies the arena into a config.
func (a *Arena) Apply(cfg *config.Config) {
	cfg.Arena.Width = a.Width
	cfg.Arena.Height = a.Height
	cfg.Arena.Spawns = a.Spawns
}

// LoadAll discovers every .tmx file in dir within fsys and returns the
// arenas keyed by stem name plus the sorted names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*" + arenaExtension
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoArenas, dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return arenas, names, nil
}
