package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateUniqueHash returns a hex-encoded identifier derived from the current
// time and 128 bits of randomness. Used for component and record IDs.
func GenerateUniqueHash() string {
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)
	hash := sha256.Sum256(hashInput)
	return hex.EncodeToString(hash[:])
}
