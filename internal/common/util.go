package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns a lowercase hex string encoding size bytes read
// from the system CSPRNG. The result is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
