package random

import "math/rand"

// NewSource creates a deterministic pseudo-random source from a seed.
// The same seed and the same call sequence produce identical outputs
// across processes and runs.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewID generates a URL-safe identifier from the provided source.
// The identifier is 26 characters long, lowercase base32 with no padding,
// derived from 16 source bytes with UUIDv4 version and variant bits set.
// Deterministic with respect to the source state.
func NewID(rng *rand.Rand) string {
	var raw [16]byte
	for i := range raw {
		raw[i] = byte(rng.Intn(256))
	}

	// RFC 4122 variant and version bits for a v4 UUID.
	raw[6] = (raw[6] & 0x0f) | 0x40
	raw[8] = (raw[8] & 0x3f) | 0x80

	return encodeID(raw)
}
