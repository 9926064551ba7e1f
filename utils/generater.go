package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateLinkCode returns a URL-safe code for a master's booking link.
func GenerateLinkCode() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
