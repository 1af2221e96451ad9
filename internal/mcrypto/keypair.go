package mcrypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
)

// KeySize is the RSA modulus size used for the login encryption exchange.
// The proxy this module was distilled from generated 1024-bit keys; 2048
// is the minimum size modern TLS libraries (and this module) treat as an
// acceptable RSA strength, so key generation was widened accordingly.
const KeySize = 2048

// KeyPair holds the proxy's per-process RSA key, generated once at
// startup and shared by every connection's login handshake.
type KeyPair struct {
	Private *rsa.PrivateKey
	// PublicDER is the SubjectPublicKeyInfo DER encoding sent verbatim in
	// EncryptionRequest and hashed into the Mojang server-hash.
	PublicDER []byte
}

// GenerateKeyPair creates a fresh KeyPair.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, KeySize)
	if err != nil {
		return nil, fmt.Errorf("generate rsa key: %w", err)
	}

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	return &KeyPair{Private: priv, PublicDER: der}, nil
}

// Decrypt reverses the client's RSA-PKCS1v15 encryption of a field from
// EncryptionResponse.
func (k *KeyPair) Decrypt(ciphertext []byte) ([]byte, error) {
	return rsa.DecryptPKCS1v15(rand.Reader, k.Private, ciphertext)
}
