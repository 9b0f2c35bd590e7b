package records

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/automoto/kiclash/config"
)

var (
	ErrInvalidRecord  = errors.New("records: record needs an id and a valid mode")
	ErrInvalidMode    = errors.New("records: unknown leaderboard")
	ErrUnknownBackend = errors.New("records: unknown backend")
)

// Store persists leaderboard rows. Top returns at most n rows of one mode,
// best score first; rows with equal score keep insertion order.
type Store interface {
	Add(ctx context.Context, rec Record) error
	Top(ctx context.Context, mode Mode, n int) ([]Record, error)
	Close() error
}

func validate(rec Record) error {
	if rec.ID == "" || !rec.Mode.Valid() {
		return ErrInvalidRecord
	}
	return nil
}

// rank sorts best first, oldest first on ties.
func rank(rs []Record) {
	slices.SortStableFunc(rs, func(a, b Record) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

func head(rs []Record, n int) []Record {
	if n <= 0 {
		n = defaultListingSize
	}
	if len(rs) > n {
		rs = rs[:n]
	}
	return slices.Clone(rs)
}

// Open builds the store selected by cfg.Backend.
func Open(cfg config.RecordsConfig) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "gdata":
		return OpenGdata(cfg.AppName)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return NewRedisStore(&RedisConfig{Client: client, Prefix: cfg.RedisKey})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// MemoryStore keeps records for the lifetime of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[Mode][]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[Mode][]Record)}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) Add(_ context.Context, rec Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := append(m.rows[rec.Mode], rec)
	rank(rows)
	m.rows[rec.Mode] = rows
	return nil
}

func (m *MemoryStore) Top(_ context.Context, mode Mode, n int) ([]Record, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return head(m.rows[mode], n), nil
}

func (m *MemoryStore) Close() error { return nil }
