package leveldata

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kiclash/config"
)

const tmxTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="%d" height="%d" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="3">
 <objectgroup id="1" name="FighterSpawn">%s
 </objectgroup>
</map>
`

func spawnObject(id, side int, x, y float64, facing string) string {
	props := fmt.Sprintf(`<property name="side" type="int" value="%d"/>`, side)
	if facing != "" {
		props += fmt.Sprintf(`<property name="facing" value="%s"/>`, facing)
	}
	return fmt.Sprintf(`
  <object id="%d" x="%g" y="%g"><properties>%s</properties></object>`, id, x, y, props)
}

func tmx(w, h int, objects ...string) *fstest.MapFile {
	body := ""
	for _, o := range objects {
		body += o
	}
	return &fstest.MapFile{Data: []byte(fmt.Sprintf(tmxTemplate, w, h, body))}
}

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/plains.tmx": tmx(25, 20,
			spawnObject(1, 1, 600, 370, ""),
			spawnObject(2, 0, 100, 370, ""),
		),
	}

	a, err := LoadArena(fsys, "arenas/plains.tmx")
	require.NoError(t, err)
	assert.Equal(t, "plains", a.Name)
	assert.Equal(t, 800.0, a.Width)
	assert.Equal(t, 640.0, a.Height)
	assert.Equal(t, config.Spawn{X: 100, Y: 370, FacingRight: true}, a.Spawns[0])
	assert.Equal(t, config.Spawn{X: 600, Y: 370, FacingRight: false}, a.Spawns[1])

	cfg := config.Default()
	a.Apply(&cfg)
	assert.Equal(t, 640.0, cfg.Arena.Height)
	assert.Equal(t, a.Spawns, cfg.Arena.Spawns)
	assert.NoError(t, cfg.Validate())
}

func TestLoadArena_ExplicitFacing(t *testing.T) {
	fsys := fstest.MapFS{
		"swap.tmx": tmx(25, 20,
			spawnObject(1, 0, 100, 370, "left"),
			spawnObject(2, 1, 600, 370, "RIGHT"),
		),
	}
	a, err := LoadArena(fsys, "swap.tmx")
	require.NoError(t, err)
	assert.False(t, a.Spawns[0].FacingRight)
	assert.True(t, a.Spawns[1].FacingRight)
}

func TestLoadArena_Errors(t *testing.T) {
	tests := []struct {
		name string
		file *fstest.MapFile
		want error
	}{
		{"one spawn", tmx(25, 20, spawnObject(1, 0, 100, 370, "")), ErrSpawnCount},
		{"same side twice", tmx(25, 20,
			spawnObject(1, 0, 100, 370, ""),
			spawnObject(2, 0, 600, 370, ""),
		), ErrSpawnCount},
		{"side out of range", tmx(25, 20,
			spawnObject(1, 0, 100, 370, ""),
			spawnObject(2, 2, 600, 370, ""),
		), ErrSpawnCount},
		{"outside the map", tmx(10, 10,
			spawnObject(1, 0, 100, 370, ""),
			spawnObject(2, 1, 600, 100, ""),
		), ErrSpawnOutside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArena(fstest.MapFS{"a.tmx": tt.file}, "a.tmx")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := LoadArena(fstest.MapFS{}, "missing.tmx")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	pair := []string{spawnObject(1, 0, 100, 370, ""), spawnObject(2, 1, 600, 370, "")}
	fsys := fstest.MapFS{
		"arenas/volcano.tmx": tmx(25, 20, pair...),
		"arenas/city.tmx":    tmx(30, 20, pair...),
		"arenas/notes.txt":   &fstest.MapFile{Data: []byte("ignored")},
	}

	arenas, names, err := LoadAll(fsys, "arenas")
	require.NoError(t, err)
	assert.Equal(t, []string{"city", "volcano"}, names)
	assert.Equal(t, 960.0, arenas["city"].Width)

	_, _, err = LoadAll(fsys, "empty")
	assert.ErrorIs(t, err, ErrNoArenas)
}
