package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kiclash/config"
)

func TestLoadArenas(t *testing.T) {
	arenas, names, err := LoadArenas()
	require.NoError(t, err)
	assert.Equal(t, []string{"tournament", "wasteland"}, names)

	for _, name := range names {
		a := arenas[name]
		cfg := config.Default()
		a.Apply(&cfg)
		assert.NoError(t, cfg.Validate(), name)
		assert.True(t, a.Spawns[0].FacingRight, name)
		assert.False(t, a.Spawns[1].FacingRight, name)
	}
	assert.Equal(t, 800.0, arenas["tournament"].Width)
	assert.Equal(t, 960.0, arenas["wasteland"].Width)
}
