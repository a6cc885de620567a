package utils

import (
	"crypto/rand"
	"encoding/base64"
)

const sessionTokenBytes = 32

// GenerateSessionToken returns an opaque URL-safe bearer credential with
// 32 bytes of entropy.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
