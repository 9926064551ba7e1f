package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

const datesCacheTTL = 2 * time.Minute

// DatesCacheKey keys the cached horizon-scan result per master, service and
// horizon depth. Depth is part of the key so a 30-day query is never answered
// from a cached 14-day result.
func DatesCacheKey(providerID, serviceID uint, days int) string {
	return fmt.Sprintf("availability:dates:%d:%d:%d", providerID, serviceID, days)
}

// GetCachedDates returns the cached date list for a key, if present.
func GetCachedDates(key string) ([]string, bool) {
	raw, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil, false
	}
	return dates, true
}

// CacheDates stores a date list with a short TTL. Failures are ignored: the
// cache is an optimization, not a source of truth.
func CacheDates(key string, dates []string) {
	raw, err := json.Marshal(dates)
	if err != nil {
		return
	}
	Client.Set(Ctx, key, raw, datesCacheTTL)
}

// InvalidateProvider drops every cached date list for a master. Called after
// any write that touches the master's calendar.
func InvalidateProvider(providerID uint) {
	pattern := fmt.Sprintf("availability:dates:%d:*", providerID)
	iter := Client.Scan(Ctx, 0, pattern, 0).Iterator()
	for iter.Next(Ctx) {
		Client.Del(Ctx, iter.Val())
	}
}
