package mcrypto

import "testing"

// The classic username-only test vectors: each username is hashed on its
// own (passed as serverID, with nil secret and public key), which checks
// the digest's sign handling and leading-zero trimming.
func TestSignedHex(t *testing.T) {
	cases := map[string]string{
		"Notch": "4ed1f46bbe04bc756bcb17c0c7ce3e4632f06a48",
		"jeb_":  "-7c9d5b0044c130109a5d7b5fb5c317c02b4e28c1",
		"simon": "88e16a1019277b15d58faf0541e11910eb756f6",
	}

	for username, want := range cases {
		got := ServerHash(username, nil, nil)
		if got != want {
			t.Errorf("ServerHash(%q) = %q; want %q", username, got, want)
		}
	}
}
