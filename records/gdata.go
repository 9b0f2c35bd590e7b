package records

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

// ItemStore is the subset of *gdata.Manager the gdata store uses.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// GdataStore keeps each leaderboard as one JSON item in the player's data
// directory.
type GdataStore struct {
	mu    sync.Mutex
	items ItemStore
}

var _ Store = (*GdataStore)(nil)

// OpenGdata opens the application data directory for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata %s: %w", appName, err)
	}
	return NewGdataStore(m), nil
}

// NewGdataStore wraps an already open item store.
func NewGdataStore(items ItemStore) *GdataStore {
	return &GdataStore{items: items}
}

func itemKey(mode Mode) string { return "records_" + string(mode) }

func (g *GdataStore) load(mode Mode) ([]Record, error) {
	data, err := g.items.LoadItem(itemKey(mode))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", itemKey(mode), err)
	}
	if len(data) == 0 {
		// Nothing saved yet
		return nil, nil
	}
	var rows []Record
	if err := json.Unmarshal(data, &rows); err != nil {
		log.Printf("[records] could not parse %s, starting over: %v", itemKey(mode), err)
		return nil, nil
	}
	return rows, nil
}

func (g *GdataStore) Add(_ context.Context, rec Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	rows, err := g.load(rec.Mode)
	if err != nil {
		return err
	}
	rows = append(rows, rec)
	rank(rows)

	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := g.items.SaveItem(itemKey(rec.Mode), data); err != nil {
		return fmt.Errorf("save %s: %w", itemKey(rec.Mode), err)
	}
	return nil
}

func (g *GdataStore) Top(_ context.Context, mode Mode, n int) ([]Record, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	rows, err := g.load(mode)
	if err != nil {
		return nil, err
	}
	return head(rows, n), nil
}

func (g *GdataStore) Close() error { return nil }
