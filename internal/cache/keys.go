package cache

import "strings"

const (
	GlobalKeyPrefix = "vinterviewer"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SessionKey holds the JSON metadata of an interview session.
func SessionKey(id string) string {
	return GenerateCacheKey("interview", "session", id)
}

// SessionHistoryKey holds the conversation turns of a session as a list.
func SessionHistoryKey(id string) string {
	return GenerateCacheKey("interview", "session", id, "history")
}

// EmbeddingKey addresses a cached vector by text hash and embedder identity.
func EmbeddingKey(textHash string, embedder ...string) string {
	return GenerateCacheKey("embedding", "text", textHash, embedder...)
}
