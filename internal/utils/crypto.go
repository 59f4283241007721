// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateOrderNumber builds a human-readable, globally-unique order
// identifier: a date stamp plus a random hex suffix. Collisions are
// handled by the caller retrying on the unique constraint.
func GenerateOrderNumber() (string, error) {
	suffix, err := GenerateRandomHex(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("VC-%s-%s", time.Now().UTC().Format("20060102"), strings.ToUpper(suffix)), nil
}

// GenerateRandomHex returns n random bytes hex-encoded (2n characters).
func GenerateRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
