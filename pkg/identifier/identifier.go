package identifier

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Size is the digest width in bytes. Downstream consumers depend on
// the 128-bit identifiers, so this must not be widened to BLAKE2b's
// native 512 bits.
const Size = 16

// Derive generates the stable identifier for a container name by
// hashing its UTF-8 bytes with BLAKE2b at a 16-byte digest size and
// rendering the result as lowercase hex. The same name always yields
// the same identifier.
func Derive(name string) string {
	// New only fails for an out-of-range digest size
	h, _ := blake2b.New(Size, nil)
	h.Write([]byte(name))
	return hex.EncodeToString(h.Sum(nil))
}
