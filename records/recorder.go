package records

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/match"
)

const recordTimeout = 2 * time.Second

// Recorder scores finished matches and climbs and writes them to a Store.
// It is a match.ResultSink.
type Recorder struct {
	store Store
	now   func() time.Time

	mu   sync.Mutex
	last Record
	has  bool
}

var _ match.ResultSink = (*Recorder)(nil)

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// Side picks whose record a match produces: the only human side when there
// is exactly one, otherwise the winner.
func Side(r match.Result) combat.Side {
	switch {
	case r.Human[combat.SideP1] && !r.Human[combat.SideP2]:
		return combat.SideP1
	case r.Human[combat.SideP2] && !r.Human[combat.SideP1]:
		return combat.SideP2
	case r.Winner == combat.SideP2:
		return combat.SideP2
	}
	return combat.SideP1
}

// RecordMatch stores the versus record of a finished match.
func (rc *Recorder) RecordMatch(r match.Result) error {
	return rc.add(FromMatch(r, Side(r), rc.now()))
}

// RecordTower stores the record of a finished climb.
func (rc *Recorder) RecordTower(t match.TowerResult) error {
	return rc.add(FromTower(t, rc.now()))
}

func (rc *Recorder) add(rec Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := rc.store.Add(ctx, rec); err != nil {
		return err
	}
	log.Printf("[records] %s %s scored %d", rec.Mode, rec.Name, rec.Score)

	rc.mu.Lock()
	rc.last, rc.has = rec, true
	rc.mu.Unlock()
	return nil
}

// Last returns the most recently stored record.
func (rc *Recorder) Last() (Record, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.last, rc.has
}

// Top lists a leaderboard.
func (rc *Recorder) Top(ctx context.Context, mode Mode, n int) ([]Record, error) {
	return rc.store.Top(ctx, mode, n)
}
