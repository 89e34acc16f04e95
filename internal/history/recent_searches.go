package history

import (
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/constants"
)

const (
	maxRecentSearches = 5
	recentSearchTTL   = 7 * 24 * time.Hour
)

// RecentSearchService keeps a short per-client list of searched flight
// codes, most recent first. The list lives in whichever cache backend the
// server runs with, so with Redis it survives restarts.
type RecentSearchService struct {
	cache common.CacheInterface
}

func NewRecentSearchService(cache common.CacheInterface) *RecentSearchService {
	return &RecentSearchService{cache: cache}
}

// Record inserts flightCode at the head of clientID's list. Codes are
// normalized to uppercase, an existing entry moves to the head instead of
// duplicating, and the list is capped at five entries.
func (s *RecentSearchService) Record(clientID, flightCode string) []string {
	code := common.NormalizeFlightCode(flightCode)
	if clientID == "" || code == "" {
		return s.Get(clientID)
	}

	existing := s.Get(clientID)
	updated := make([]string, 0, maxRecentSearches)
	updated = append(updated, code)
	for _, c := range existing {
		if c == code {
			continue
		}
		updated = append(updated, c)
		if len(updated) == maxRecentSearches {
			break
		}
	}

	s.cache.Set(s.key(clientID), updated, recentSearchTTL)
	return updated
}

// Get returns clientID's list, newest first, empty when nothing is stored.
func (s *RecentSearchService) Get(clientID string) []string {
	if clientID == "" {
		return []string{}
	}

	raw, found := s.cache.Get(s.key(clientID))
	if !found {
		return []string{}
	}
	return coerceStrings(raw)
}

// Clear drops clientID's list.
func (s *RecentSearchService) Clear(clientID string) {
	if clientID == "" {
		return
	}
	s.cache.Delete(s.key(clientID))
}

func (s *RecentSearchService) key(clientID string) string {
	return string(constants.CachePrefixRecentSearch) + clientID
}

// coerceStrings accepts both the in-memory backend's []string and the
// []interface{} shape the Redis backend produces after its JSON round-trip.
func coerceStrings(raw interface{}) []string {
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
