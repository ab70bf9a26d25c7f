// Package tokenstore keeps issued session tokens in a key-value cache so that
// they can be revoked before their JWT expiry.
package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrTokenNotFound is returned by DeleteToken when the token is not stored.
var ErrTokenNotFound = errors.New("token not found")

// KV is the subset of a cache client the store needs. Get must return
// found=false, not an error, for a missing key.
type KV interface {
	SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Del(ctx context.Context, key string) (deleted int64, err error)
}

// Session is the payload stored against a token.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Store saves sessions keyed by their token.
type Store struct {
	kv  KV
	ttl time.Duration
}

// New creates a Store whose entries expire after ttl.
func New(kv KV, ttl time.Duration) *Store {
	return &Store{kv: kv, ttl: ttl}
}

// TTL returns how long tokens are kept.
func (s *Store) TTL() time.Duration { return s.ttl }

// SetToken stores the session under token.
func (s *Store) SetToken(ctx context.Context, token string, session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.SetEx(ctx, token, data, s.ttl); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// GetToken returns the session stored under token, or nil if the token is
// unknown or expired.
func (s *Store) GetToken(ctx context.Context, token string) (*Session, error) {
	data, found, err := s.kv.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if !found {
		return nil, nil
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// DeleteToken removes token. It returns ErrTokenNotFound if nothing was removed.
func (s *Store) DeleteToken(ctx context.Context, token string) error {
	n, err := s.kv.Del(ctx, token)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if n != 1 {
		return ErrTokenNotFound
	}
	return nil
}

var units = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
}

// ParseTTL parses a duration such as "30s", "15m", "12h" or "7d".
func ParseTTL(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	unit, ok := units[s[len(s)-1]]
	if !ok {
		return 0, fmt.Errorf("invalid time unit %q", s[len(s)-1:])
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid duration value %q", s[:len(s)-1])
	}
	return time.Duration(n) * unit, nil
}

// Milliseconds returns ttl in whole milliseconds.
func Milliseconds(ttl time.Duration) int64 {
	return ttl.Milliseconds()
}
