package sessioncache

import (
	"sync"
	"time"

	"service-courier-tracking/internal/clock"
	"service-courier-tracking/internal/domain"
)

// DefaultTTL is the sliding lifetime of a resolution record.
const DefaultTTL = 5 * time.Minute

const keyPrefix = "session_data_"

// Key returns the cache key for an order.
func Key(orderID string) string {
	return keyPrefix + orderID
}

// Store keeps one ResolutionRecord per order id in memory.
// Records are handed out by value; callers never share the stored copy.
type Store struct {
	ttl     time.Duration
	clock   clock.Clock
	mu      sync.RWMutex
	records map[string]domain.ResolutionRecord
}

// New creates a Store. A non-positive ttl means DefaultTTL.
func New(c clock.Clock, ttl time.Duration) *Store {
	if c == nil {
		c = clock.Real{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:     ttl,
		clock:   c,
		records: make(map[string]domain.ResolutionRecord),
	}
}

// TTL returns the default window used by Put when none is given.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns the record stored for orderID, fresh or not.
func (s *Store) Get(orderID string) (domain.ResolutionRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[Key(orderID)]
	return rec, ok
}

// Put stores rec for orderID with the given ttl, replacing any previous record.
func (s *Store) Put(orderID string, rec domain.ResolutionRecord, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	rec.TTL = ttl

	s.mu.Lock()
	s.records[Key(orderID)] = rec
	s.mu.Unlock()
}

// Refresh re-stores the record for orderID with LastRequestTime set to now,
// restarting its TTL window. It returns the refreshed copy.
func (s *Store) Refresh(orderID string) (domain.ResolutionRecord, bool) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key(orderID)
	rec, ok := s.records[key]
	if !ok {
		return domain.ResolutionRecord{}, false
	}
	rec.LastRequestTime = now
	s.records[key] = rec
	return rec, true
}

// IsExpired reports whether rec can no longer answer a position query.
func (s *Store) IsExpired(rec domain.ResolutionRecord) bool {
	if rec.LastRequestTime.IsZero() {
		return true
	}
	ttl := rec.TTL
	if ttl <= 0 {
		ttl = s.ttl
	}
	return s.clock.Now().Sub(rec.LastRequestTime) > ttl
}

// Purge drops expired records and returns how many were removed.
func (s *Store) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, rec := range s.records {
		if s.IsExpired(rec) {
			delete(s.records, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
