package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}), "touching edges")
	assert.False(t, a.Overlaps(Rect{X: 20, Y: 20, W: 5, H: 5}))
	assert.False(t, a.Overlaps(Rect{X: 2, Y: 2, W: 0, H: 5}), "empty box")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
	assert.Equal(t, 2.0, Clamp(1, 2, 0), "inverted range pins to lo")
	assert.Equal(t, -4.0, ClampSpeed(-9, 4))
}

func TestSignAndDistance(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-0.5))
	assert.Equal(t, 0.0, Sign(0))
	dx, dy := Distance(10, 20, 4, 26)
	assert.Equal(t, 6.0, dx)
	assert.Equal(t, 6.0, dy)
}
