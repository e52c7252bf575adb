package redisstore

import "strings"

const (
	GlobalKeyPrefix = "pathpilot"
	storeNamespace  = "store"
)

// Key suffixes for the structures backing one collection.
const (
	suffixDocs  = "docs"
	suffixIndex = "index"
	suffixSeq   = "seq"
)

// GenerateKey builds a namespaced key for a collection structure.
// Extra parts are joined by "_" and appended, mirroring the cache key layout.
func GenerateKey(collection, suffix string, parts ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, storeNamespace, collection, suffix}, ":")
	if len(parts) > 0 {
		return strings.Join([]string{baseKey, strings.Join(parts, "_")}, ":")
	}
	return baseKey
}

func docsKey(collection string) string  { return GenerateKey(collection, suffixDocs) }
func indexKey(collection string) string { return GenerateKey(collection, suffixIndex) }
func seqKey(collection string) string   { return GenerateKey(collection, suffixSeq) }
