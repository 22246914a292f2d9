package utils

import (
	"crypto/sha256"
	"crypto/subtle"
)

// MatchAPIKey reports whether provided equals one of keys. Both sides are
// hashed first so the comparison is constant-time regardless of key length,
// and every key is compared so timing does not reveal which one matched.
func MatchAPIKey(provided string, keys []string) bool {
	if provided == "" {
		return false
	}
	p := sha256.Sum256([]byte(provided))

	matched := 0
	for _, k := range keys {
		h := sha256.Sum256([]byte(k))
		matched |= subtle.ConstantTimeCompare(p[:], h[:])
	}
	return matched == 1
}
