package wire

import (
	"crypto/aes"
	"encoding/hex"
	"testing"
)

// Test vectors from https://github.com/Tnze/go-mc/blob/076f723e3d1467e8bb11fc09dd29e8e92caf339f/net/CFB8/cfb8_test.go
var cfb8TestCases = []struct {
	key, iv, plaintext, ciphertext string
}{
	{
		"2b7e151628aed2a6abf7158809cf4f3c",
		"000102030405060708090a0b0c0d0e0f",
		"6bc1bee22e409f96e93d7e117393172a",
		"3b79424c9c0dd436bace9e0ed4586a4f",
	},
	{
		"2b7e151628aed2a6abf7158809cf4f3c",
		"3B3FD92EB72DAD20333449F8E83CFB4A",
		"ae2d8a571e03ac9c9eb76fac45af8e51",
		"c8b0723943d71f61a2e5b0e8cedf87c8",
	},
}

func TestCFB8RoundTrip(t *testing.T) {
	for i, tc := range cfb8TestCases {
		key, _ := hex.DecodeString(tc.key)
		iv, _ := hex.DecodeString(tc.iv)
		plaintext, _ := hex.DecodeString(tc.plaintext)
		want, _ := hex.DecodeString(tc.ciphertext)

		block, err := aes.NewCipher(key)
		if err != nil {
			t.Fatalf("case %d: aes.NewCipher: %v", i, err)
		}

		ciphertext := make([]byte, len(plaintext))
		newEncryptStream(block, iv).XORKeyStream(ciphertext, plaintext)
		if hex.EncodeToString(ciphertext) != hex.EncodeToString(want) {
			t.Errorf("case %d: encrypt = %x, want %x", i, ciphertext, want)
		}

		decrypted := make([]byte, len(ciphertext))
		newDecryptStream(block, iv).XORKeyStream(decrypted, ciphertext)
		if hex.EncodeToString(decrypted) != hex.EncodeToString(plaintext) {
			t.Errorf("case %d: decrypt = %x, want %x", i, decrypted, plaintext)
		}
	}
}

func TestCipherConnInstallSecretRejectsBadLength(t *testing.T) {
	c := NewCipherConn(nil)
	if err := c.InstallSecret(make([]byte, 15)); err == nil {
		t.Error("InstallSecret should reject a non-16-byte secret")
	}
	if c.Encrypted() {
		t.Error("Encrypted() should be false after a rejected InstallSecret")
	}
}
