package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// sessionIDBytes is the entropy of a session token ID.
const sessionIDBytes = 16

// NewSessionID returns a random hex ID for the jti claim of a session token.
func NewSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
