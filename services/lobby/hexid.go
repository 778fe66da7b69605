package lobby

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// newHexID draws 4 random bytes and renders them as 8 uppercase hex
// characters. The generator has no memory of earlier ids; uniqueness is
// enforced by checked insertion into the registry.
func newHexID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return strings.ToUpper(hex.EncodeToString(b))
}
