package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/match"
)

type failingStore struct{ MemoryStore }

func (*failingStore) Add(context.Context, Record) error { return errors.New("offline") }

func TestSide(t *testing.T) {
	tests := []struct {
		name   string
		human  [2]bool
		winner combat.Side
		want   combat.Side
	}{
		{"human p1 lost", [2]bool{true, false}, combat.SideP2, combat.SideP1},
		{"human p2 lost", [2]bool{false, true}, combat.SideP1, combat.SideP2},
		{"bots, p2 won", [2]bool{}, combat.SideP2, combat.SideP2},
		{"bots, p1 won", [2]bool{}, combat.SideP1, combat.SideP1},
		{"two humans", [2]bool{true, true}, combat.SideP2, combat.SideP2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Side(match.Result{Human: tt.human, Winner: tt.winner}))
		})
	}
}

func TestRecorder_RecordMatch(t *testing.T) {
	store := NewMemoryStore()
	rc := NewRecorder(store)
	rc.now = func() time.Time { return epoch }

	_, ok := rc.Last()
	assert.False(t, ok)

	require.NoError(t, rc.RecordMatch(match.Result{
		Winner:     combat.SideP1,
		Names:      [2]string{"kai", "CPU"},
		Archetypes: [2]string{"gohan", "freezer"},
		Human:      [2]bool{true, false},
		RoundsWon:  [2]int{2, 0},
		Stats:      [2]combat.Stats{{Strikes: 5, DamageDealt: 200}},
		Seconds:    42,
	}))

	last, ok := rc.Last()
	require.True(t, ok)
	assert.Equal(t, "KAI", last.Name)
	assert.Equal(t, 2000+50+1000+500, last.Score)
	assert.Equal(t, epoch, last.CreatedAt)

	top, err := rc.Top(context.Background(), ModeVersus, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, last, top[0])
}

func TestRecorder_RecordTower(t *testing.T) {
	rc := NewRecorder(NewMemoryStore())
	tower, err := match.NewTower(config.Default(), "goku", "son")
	require.NoError(t, err)
	for range tower.Opponents() {
		require.NoError(t, tower.RecordMatch(match.Result{
			Winner:  combat.SideP1,
			Stats:   [2]combat.Stats{{Strikes: 10, DamageDealt: 100, DamageTaken: 20}},
			Seconds: 40,
		}))
	}

	require.NoError(t, rc.RecordTower(tower.Result()))
	last, _ := rc.Last()
	assert.Equal(t, ModeTower, last.Mode)
	assert.Equal(t, "SON", last.Name)
	assert.Equal(t, 14670, last.Score)
}

func TestRecorder_StoreFailure(t *testing.T) {
	rc := NewRecorder(&failingStore{})
	assert.Error(t, rc.RecordMatch(match.Result{Winner: combat.SideP1}))
	_, ok := rc.Last()
	assert.False(t, ok)
}
