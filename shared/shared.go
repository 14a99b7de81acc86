package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a key prefix with its qualifiers, e.g. "catalog:sessions".
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}
