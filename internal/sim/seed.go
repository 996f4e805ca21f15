package sim

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Seed derives a deterministic seed for answer from salt with HKDF-SHA256.
// Games seeded this way replay identically no matter which worker runs them
// or in what order.
func Seed(salt, answer string) uint64 {
	r := hkdf.New(sha256.New, []byte(salt), nil, []byte(answer))
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		// hkdf only fails past 255 blocks of output
		panic(err)
	}
	return binary.BigEndian.Uint64(b[:])
}
