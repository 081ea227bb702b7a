package otp

import (
	"context"
	"time"
)

// Store is the key-value store behind the issuer. Keys are email addresses,
// values are the most recently issued code. A Put replaces any previous code
// for the same key. Consume deletes the record only on an exact match, so a
// failed attempt leaves the code in place until its TTL runs out.
type Store interface {
	Put(ctx context.Context, key, value string, ttl time.Duration) error

	// Consume returns true and deletes the record when value matches the
	// stored one. Absent key and mismatching value are indistinguishable.
	Consume(ctx context.Context, key, value string) (bool, error)
}
