package wire

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"net"
)

// CipherConn wraps a net.Conn so that, after InstallSecret is called, every
// subsequent Read and Write is transparently passed through an AES-128/CFB8
// stream. The cipher install point falls exactly between the last
// plaintext byte and the first ciphered byte in the same read/write call
// sequence: nothing is buffered across the transition, so there is no
// half-encrypted window.
type CipherConn struct {
	net.Conn
	encrypt cipher.Stream
	decrypt cipher.Stream
}

// NewCipherConn wraps conn with no cipher installed; Read/Write pass
// through unmodified until InstallSecret is called.
func NewCipherConn(conn net.Conn) *CipherConn {
	return &CipherConn{Conn: conn}
}

// InstallSecret enables AES-128/CFB8 encryption using secret as both key
// and IV, per the Java Edition protocol's encryption handshake. secret
// must be exactly 16 bytes.
func (c *CipherConn) InstallSecret(secret []byte) error {
	if len(secret) != 16 {
		return fmt.Errorf("shared secret must be 16 bytes, got %d", len(secret))
	}
	block, err := aes.NewCipher(secret)
	if err != nil {
		return fmt.Errorf("create aes cipher: %w", err)
	}
	c.encrypt = newEncryptStream(block, secret)
	c.decrypt = newDecryptStream(block, secret)
	return nil
}

// Encrypted reports whether InstallSecret has been called.
func (c *CipherConn) Encrypted() bool {
	return c.encrypt != nil
}

func (c *CipherConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 && c.decrypt != nil {
		c.decrypt.XORKeyStream(p[:n], p[:n])
	}
	return n, err
}

func (c *CipherConn) Write(p []byte) (int, error) {
	if c.encrypt == nil {
		return c.Conn.Write(p)
	}
	out := make([]byte, len(p))
	c.encrypt.XORKeyStream(out, p)
	return c.Conn.Write(out)
}
