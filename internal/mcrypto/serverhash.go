// Package mcrypto implements the RSA key exchange and session-hash
// primitives the login protocol and Mojang session verification depend
// on.
package mcrypto

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// ServerHash computes the signed-hex SHA-1 digest Mojang's hasJoined
// endpoint expects: SHA-1(serverID || sharedSecret || publicKeyDER),
// interpreted as a signed big-endian integer and formatted as lowercase
// hex with a leading '-' if negative. Matches the "jeb_" test vector from
// https://gist.github.com/toqueteos/5372776.
func ServerHash(serverID string, sharedSecret, publicKeyDER []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKeyDER)
	return signedHex(h.Sum(nil))
}

func signedHex(sum []byte) string {
	negative := sum[0]&0x80 == 0x80
	if negative {
		sum = twosComplement(sum)
	}

	res := strings.TrimLeft(hex.EncodeToString(sum), "0")
	if res == "" {
		res = "0"
	}
	if negative {
		res = "-" + res
	}
	return res
}

func twosComplement(p []byte) []byte {
	carry := true
	for i := len(p) - 1; i >= 0; i-- {
		p[i] = ^p[i]
		if carry {
			carry = p[i] == 0xff
			p[i]++
		}
	}
	return p
}
