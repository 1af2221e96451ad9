package wire

// CFB8 (8-bit Cipher Feedback) is the stream mode the Java Edition
// protocol uses to turn a 16-byte AES key into a symmetric cipher over an
// otherwise plaintext TCP stream. Key and IV are both the shared secret.
//
// Adapted from the vanilla-server-compatible implementation this module's
// teacher ported from Tnze/go-mc.

import "crypto/cipher"

type cfb8 struct {
	block     cipher.Block
	blockSize int
	iv        []byte
	temp      []byte
	decrypt   bool
}

func newCFB8(block cipher.Block, iv []byte, decrypt bool) *cfb8 {
	ivCopy := make([]byte, len(iv))
	copy(ivCopy, iv)
	return &cfb8{
		block:     block,
		blockSize: block.BlockSize(),
		iv:        ivCopy,
		temp:      make([]byte, block.BlockSize()),
		decrypt:   decrypt,
	}
}

func (c *cfb8) xorKeyStream(dst, src []byte) {
	for i := range src {
		copy(c.temp, c.iv)

		c.block.Encrypt(c.iv, c.iv)
		keystreamByte := c.iv[0]

		outputByte := src[i] ^ keystreamByte
		dst[i] = outputByte
		copy(c.iv, c.temp[1:])

		if c.decrypt {
			c.iv[c.blockSize-1] = src[i]
		} else {
			c.iv[c.blockSize-1] = outputByte
		}
	}
}

// cfb8Stream adapts cfb8 to cipher.Stream.
type cfb8Stream struct{ c *cfb8 }

func (s *cfb8Stream) XORKeyStream(dst, src []byte) { s.c.xorKeyStream(dst, src) }

func newEncryptStream(block cipher.Block, iv []byte) cipher.Stream {
	return &cfb8Stream{c: newCFB8(block, iv, false)}
}

func newDecryptStream(block cipher.Block, iv []byte) cipher.Stream {
	return &cfb8Stream{c: newCFB8(block, iv, true)}
}
