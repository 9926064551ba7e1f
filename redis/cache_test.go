package redis

import (
	"fmt"
	"strings"
	"testing"
)

func TestDatesCacheKeySeparatesHorizons(t *testing.T) {
	short := DatesCacheKey(1, 2, 14)
	long := DatesCacheKey(1, 2, 30)
	if short == long {
		t.Errorf("14-day and 30-day queries share cache key %q", short)
	}
}

func TestDatesCacheKeyMatchesInvalidationPattern(t *testing.T) {
	// InvalidateProvider scans for this prefix; every key variant for the
	// master has to start with it.
	prefix := fmt.Sprintf("availability:dates:%d:", 7)

	for _, key := range []string{
		DatesCacheKey(7, 1, 14),
		DatesCacheKey(7, 2, 30),
	} {
		if !strings.HasPrefix(key, prefix) {
			t.Errorf("key %q does not match invalidation pattern %q*", key, prefix)
		}
	}

	if strings.HasPrefix(DatesCacheKey(70, 1, 14), prefix) {
		t.Error("another master's key must not match the invalidation pattern")
	}
}
