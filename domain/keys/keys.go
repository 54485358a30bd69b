package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxLock is used for prefixing lock redis keys
	PfxLock = "lock"
	// PfxDrop locks a collection's drop while it is minted or replaced
	PfxDrop = "drop"
	// PfxListing locks one listing while it is bought or cancelled
	PfxListing = "listing"
	// PfxCollection is used for prefixing cached collection records
	PfxCollection = "collection"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key for metric tags.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
