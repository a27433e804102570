package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateTokenID produces a secure random string used as the jti of an
// issued session token.
func GenerateTokenID() (string, error) {
	// 32 bytes = 256 bits of entropy
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b), nil
}
