package main

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a short random identifier used to tag viewer sessions in
// the log.
func NewID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "session"
	}
	return hex.EncodeToString(b)
}
