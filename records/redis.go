package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key pattern: {prefix}:{mode}:rank (sorted set of ids by score) and
// {prefix}:{mode}:rows (hash of id to JSON record).
const defaultRedisPrefix = "kiclash:records"

// RedisConfig holds the configuration for the redis store
type RedisConfig struct {
	Client redis.UniversalClient
	Prefix string
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil || c.Client == nil {
		return errors.New("records: redis client is required")
	}
	return nil
}

// RedisStore ranks records in a sorted set per leaderboard.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a store over an existing client. Close closes the
// client.
func NewRedisStore(cfg *RedisConfig) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: cfg.Client, prefix: prefix}, nil
}

func (r *RedisStore) rankKey(mode Mode) string { return r.prefix + ":" + string(mode) + ":rank" }
func (r *RedisStore) rowsKey(mode Mode) string { return r.prefix + ":" + string(mode) + ":rows" }

func (r *RedisStore) Add(ctx context.Context, rec Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, r.rowsKey(rec.Mode), rec.ID, data)
	pipe.ZAdd(ctx, r.rankKey(rec.Mode), redis.Z{Score: float64(rec.Score), Member: rec.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add record %s: %w", rec.ID, err)
	}
	return nil
}

// Top reads the best ids from the sorted set and then their rows. Ties are
// broken by creation time after the fetch.
func (r *RedisStore) Top(ctx context.Context, mode Mode, n int) ([]Record, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	if n <= 0 {
		n = defaultListingSize
	}

	ids, err := r.client.ZRevRange(ctx, r.rankKey(mode), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("rank %s: %w", mode, err)
	}
	if len(ids) == 0 {
		return []Record{}, nil
	}

	vals, err := r.client.HMGet(ctx, r.rowsKey(mode), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("rows %s: %w", mode, err)
	}

	rows := make([]Record, 0, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// ranked id without a row
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, fmt.Errorf("decode record %s: %w", ids[i], err)
		}
		rows = append(rows, rec)
	}
	rank(rows)
	return rows, nil
}

func (r *RedisStore) Close() error { return r.client.Close() }
