package contact

import (
	"context"
	"strings"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// AdmitStore decides whether a client identity may submit right now.
//
// The policy is a sliding single-slot limiter: at most one admitted request
// per identity per window, no burst allowance. Admission records the current
// timestamp, overwriting any prior entry. The ledger is best-effort: it is
// not durable and resets with the process (memory) or per TTL (redis).
type AdmitStore interface {
	Admit(ctx context.Context, identity string, now time.Time) (bool, error)
}

// MemoryStore is the in-process ledger for single-instance deployments.
type MemoryStore struct {
	mu             sync.Mutex
	window         time.Duration
	pruneAfter     time.Duration
	pruneThreshold int
	last           map[string]time.Time
}

func NewMemoryStore(window, pruneAfter time.Duration, pruneThreshold int) *MemoryStore {
	return &MemoryStore{
		window:         window,
		pruneAfter:     pruneAfter,
		pruneThreshold: pruneThreshold,
		last:           make(map[string]time.Time),
	}
}

func (s *MemoryStore) Admit(_ context.Context, identity string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.last[identity]; ok && now.Sub(last) < s.window {
		return false, nil
	}
	s.last[identity] = now

	// Opportunistic compaction: amortized maintenance on the admit path, not
	// a background task. Only kicks in once the ledger is big enough.
	if len(s.last) > s.pruneThreshold {
		cutoff := now.Add(-s.pruneAfter)
		for k, ts := range s.last {
			if ts.Before(cutoff) {
				delete(s.last, k)
			}
		}
	}

	return true, nil
}

// Len reports the current ledger size.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.last)
}

// RedisStore backs the ledger with an external cache so multiple instances
// share one window per identity. SET NX with the window as TTL gives the
// single-slot semantics atomically; expiry replaces pruning.
type RedisStore struct {
	rdb    *goredis.Client
	window time.Duration
}

func NewRedisStore(rdb *goredis.Client, window time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, window: window}
}

func (s *RedisStore) Admit(ctx context.Context, identity string, now time.Time) (bool, error) {
	return s.rdb.SetNX(ctx, "contact:admit:"+identity, now.Unix(), s.window).Result()
}

// clientIdentity derives the coarse fingerprint used as the ledger key for the
// general-inquiry form: first forwarded-for hop (or X-Real-Ip) plus the
// user-agent string. When no forwarded-address header is present the address
// collapses to the literal "unknown"; clients behind header-stripping proxies
// sharing one bucket is accepted behavior.
func clientIdentity(ci ClientInfo) string {
	ua := ci.UserAgent
	if ua == "" {
		ua = "unknown"
	}
	return clientAddr(ci) + ":" + ua
}

// clientAddr is the legacy form's identity: the best-effort address alone.
func clientAddr(ci ClientInfo) string {
	if first, _, _ := strings.Cut(ci.ForwardedFor, ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	if ci.RealIP != "" {
		return ci.RealIP
	}
	return "unknown"
}
