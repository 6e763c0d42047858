package shareid

import (
	"crypto/rand"
	"encoding/hex"
)

// Length is the number of hex characters in a share identifier.
const Length = 16

// New returns a fresh share identifier: 8 cryptographically random bytes
// encoded as 16 lowercase hex characters.
func New() (string, error) {
	buf := make([]byte, Length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
