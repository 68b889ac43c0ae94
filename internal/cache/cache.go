// Package cache wraps the in-process TTL stores backing the trend, category
// and generated-prompt pools. Each pool is constructed explicitly and injected
// where it is used, so tests can run against fresh instances. The key builders
// live here too: the keying scheme is part of the pipeline contract, and every
// parameter that changes output must appear in the key.
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is one time-boxed key-value pool. Entries expire by TTL and are never
// explicitly invalidated. Last-writer-wins on identical keys.
type Store struct {
	c *gocache.Cache
}

// New creates a Store with the given TTL. Expired entries are swept at half
// the TTL, capped at five minutes so week-long pools still get cleaned.
func New(ttl time.Duration) *Store {
	cleanup := ttl / 2
	if cleanup > 5*time.Minute {
		cleanup = 5 * time.Minute
	}
	return &Store{c: gocache.New(ttl, cleanup)}
}

// Get returns the stored value for key, or false if absent or expired.
func (s *Store) Get(key string) (any, bool) {
	return s.c.Get(key)
}

// GetText returns a stored text blob for key.
func (s *Store) GetText(key string) (string, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return "", false
	}
	text, ok := v.(string)
	return text, ok
}

// Set stores value under key with the pool's default TTL.
func (s *Store) Set(key string, value any) {
	s.c.Set(key, value, gocache.DefaultExpiration)
}

// ItemCount reports live entries, expired ones included until swept.
func (s *Store) ItemCount() int {
	return s.c.ItemCount()
}

// TrendKey identifies one raw trend fetch. The v4 tag tracks the upstream
// response shape, bump it when the fetch parameters change.
func TrendKey(region, period, categoryID string) string {
	if categoryID == "" || categoryID == "0" {
		categoryID = "all"
	}
	return fmt.Sprintf("trends_v4_%s_%s_%s", region, period, categoryID)
}

// CategoryKey identifies a region's category listing.
func CategoryKey(region string) string {
	return "categories_" + region
}

// StoryboardKey identifies a cached storyboard generation. Duration is part
// of the key — a 15s and a 40s storyboard for the same video must never
// shadow each other.
func StoryboardKey(videoID string, durationSec int) string {
	return fmt.Sprintf("prompt_shorts_%s_%d", videoID, durationSec)
}

// ScriptKey identifies a cached video-script generation, duration-scoped for
// the same reason as StoryboardKey.
func ScriptKey(videoID string, durationSec int) string {
	return fmt.Sprintf("script_video_%s_%ds", videoID, durationSec)
}
