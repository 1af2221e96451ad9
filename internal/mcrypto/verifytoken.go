package mcrypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
)

// VerifyTokenSize is the number of random bytes sent in EncryptionRequest
// and expected back byte-identical (after RSA decryption) in
// EncryptionResponse. The source this proxy grew from used the ASCII
// decimal text of a random int64; any 4-16 random bytes serve the same
// purpose, so plain random bytes are generated directly here.
const VerifyTokenSize = 8

// NewVerifyToken returns a fresh random verify token.
func NewVerifyToken() ([]byte, error) {
	token := make([]byte, VerifyTokenSize)
	if _, err := rand.Read(token); err != nil {
		return nil, fmt.Errorf("generate verify token: %w", err)
	}
	return token, nil
}

// VerifyTokenMatches reports whether decrypted equals the originally-sent
// token, in constant time.
func VerifyTokenMatches(sent, decrypted []byte) bool {
	return len(sent) == len(decrypted) && subtle.ConstantTimeCompare(sent, decrypted) == 1
}
