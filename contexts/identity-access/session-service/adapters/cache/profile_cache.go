package cacheadapter

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"youthhub/contexts/identity-access/session-service/domain/entities"
	"youthhub/contexts/identity-access/session-service/ports"
)

// ProfileCache keeps resolved profiles for a short TTL so every request does
// not hit the profiles table. Role changes take effect within the TTL.
type ProfileCache struct {
	cache *gocache.Cache
}

func NewProfileCache(ttl time.Duration) *ProfileCache {
	return &ProfileCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *ProfileCache) Get(userID string) (entities.Profile, bool) {
	value, ok := c.cache.Get(userID)
	if !ok {
		return entities.Profile{}, false
	}
	profile, ok := value.(entities.Profile)
	return profile, ok
}

func (c *ProfileCache) Set(profile entities.Profile) {
	c.cache.SetDefault(profile.UserID, profile)
}

var _ ports.ProfileCache = (*ProfileCache)(nil)
