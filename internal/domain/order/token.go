package order

import "math/rand"

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tokenLength   = 8
)

// GenerateToken returns the customer-facing pickup code: 8 characters drawn
// uniformly with replacement from [A-Z0-9]. Collisions are not checked here;
// the unique index on orders.token surfaces them as a store error.
func GenerateToken() string {
	b := make([]byte, tokenLength)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}
