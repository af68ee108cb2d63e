// Package kv provides a starskey-backed store satisfying echo's
// RateLimiterStore interface, so rate-limit state survives restarts.
package kv

import (
	"encoding/json"
	"time"

	"github.com/starskey-io/starskey"

	"github.com/wharfd/wharfd/pkg/logger"
)

// bucket is the persisted token-bucket state for one client.
type bucket struct {
	Tokens   float64   `json:"tokens"`
	LastSeen time.Time `json:"last_seen"`
}

// RateLimiterStore implements echo middleware.RateLimiterStore with a
// token bucket per identifier, persisted in starskey.
type RateLimiterStore struct {
	db    *starskey.Starskey
	rate  float64
	burst int
}

// OpenRateLimiterStore opens (or creates) the store under dir.
func OpenRateLimiterStore(dir string, rate float64, burst int) (*RateLimiterStore, error) {
	db, err := starskey.Open(&starskey.Config{
		Permission:     0o755,
		Directory:      dir,
		FlushThreshold: 8 * 1024 * 1024,
		MaxLevel:       3,
		SizeFactor:     10,
		BloomFilter:    true,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("rate limiter store open", "dir", dir, "rate", rate, "burst", burst)
	return &RateLimiterStore{db: db, rate: rate, burst: burst}, nil
}

// Allow reports whether the identifier may make another request now.
func (s *RateLimiterStore) Allow(identifier string) (bool, error) {
	var allowed bool
	err := s.db.Update(func(txn *starskey.Txn) error {
		now := time.Now()
		key := []byte(identifier)

		b := bucket{Tokens: float64(s.burst), LastSeen: now}
		if value, err := txn.Get(key); err == nil && value != nil {
			if err := json.Unmarshal(value, &b); err != nil {
				b = bucket{Tokens: float64(s.burst), LastSeen: now}
			}
			b.Tokens += now.Sub(b.LastSeen).Seconds() * s.rate
			if b.Tokens > float64(s.burst) {
				b.Tokens = float64(s.burst)
			}
		}
		b.LastSeen = now

		if b.Tokens >= 1 {
			b.Tokens--
			allowed = true
		} else {
			allowed = false
		}

		data, err := json.Marshal(b)
		if err != nil {
			return err
		}
		txn.Put(key, data)
		return nil
	})
	if err != nil {
		// Fail open: a broken store must not take the API down.
		logger.Warn("rate limiter store error", "error", err)
		return true, nil
	}
	if !allowed {
		logger.Debug("request rate limited", "client", identifier)
	}
	return allowed, nil
}

// Reset clears the state for one identifier.
func (s *RateLimiterStore) Reset(identifier string) error {
	return s.db.Delete([]byte(identifier))
}

// Close closes the underlying store.
func (s *RateLimiterStore) Close() error {
	return s.db.Close()
}
