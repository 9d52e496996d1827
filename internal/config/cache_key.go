package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AdminSessionKey returns the cache key tracking an admin's active JWT (jti).
// Deleting it on logout invalidates every token issued for that login.
func (r *CacheKeyStruct) AdminSessionKey(adminID int) string {
	return fmt.Sprintf("admin:%d:session", adminID)
}

// PageConfigKey returns the cache key for a feature area's public (enabled-only)
// page list.
func (r *CacheKeyStruct) PageConfigKey(area string) string {
	return fmt.Sprintf("pageconfig:%s:public", area)
}

// PublicBannersKey returns the cache key for the public banner list.
func (r *CacheKeyStruct) PublicBannersKey() string {
	return "banners:public"
}

// ActivityChannel returns the Redis PubSub channel carrying admin operation
// events for the live activity feed.
func (r *CacheKeyStruct) ActivityChannel() string {
	return "admin:activity"
}

var CacheKey = NewCacheKeyStruct()
