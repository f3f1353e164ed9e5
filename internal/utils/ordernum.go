package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderNumber builds the human-facing order identifier:
// ORD-YYYYMMDD-XXXXXX. The 6-character random suffix gives ~2 billion
// combinations per day; collisions are treated as negligible and the unique
// index is the backstop, there is no retry loop.
func GenerateOrderNumber() string {
	datePart := time.Now().Format("20060102")

	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(orderNumberAlphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(fmt.Sprintf("order number generation: %v", err))
		}
		suffix[i] = orderNumberAlphabet[n.Int64()]
	}

	return fmt.Sprintf("ORD-%s-%s", datePart, suffix)
}
