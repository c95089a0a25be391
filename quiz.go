package client

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashLength is the number of hex characters kept from the digest.
const hashLength = 32

// GenerateHash derives the answer hash for a question/answer pair: the first
// 32 lowercase hex characters of SHA-256(question + answer).
func GenerateHash(question, answer string) string {
	sum := sha256.Sum256([]byte(question + answer))
	return hex.EncodeToString(sum[:])[:hashLength]
}
