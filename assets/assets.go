// Package assets embeds the arena maps shipped with the game.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/kiclash/shared/leveldata"
)

// ArenaDir is the directory inside Arenas holding the TMX files.
const ArenaDir = "arenas"

var (
	//go:embed arenas/*.tmx
	arenaFS embed.FS
)

// Arenas exposes the embedded maps.
func Arenas() fs.FS { return arenaFS }

// LoadArenas parses every embedded arena.
func LoadArenas() (map[string]*leveldata.Arena, []string, error) {
	return leveldata.LoadAll(arenaFS, ArenaDir)
}
