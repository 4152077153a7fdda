package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
)

// TokensEqual compares two shared secrets (bootstrap tokens and the like) in
// constant time. Both sides are hashed first so the comparison does not leak
// the configured length.
func TokensEqual(provided, expected string) bool {
	a := sha256.Sum256([]byte(provided))
	b := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
