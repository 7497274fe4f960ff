package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// RevokedTokenStore remembers access tokens invalidated by logout until they
// would have expired on their own.
type RevokedTokenStore struct {
	cache *cache.Cache
}

func NewRevokedTokenStore() *RevokedTokenStore {
	// Default expiration of 24h matches the access token lifetime; expired
	// entries are purged every 10 minutes.
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &RevokedTokenStore{
		cache: c,
	}
}

func (s *RevokedTokenStore) Revoke(token string, until time.Time) {
	ttl := time.Until(until)
	if ttl <= 0 {
		return
	}
	s.cache.Set(token, struct{}{}, ttl)
}

func (s *RevokedTokenStore) IsRevoked(token string) bool {
	_, found := s.cache.Get(token)
	return found
}
