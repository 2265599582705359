package aes128

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// TestEncryptBlockNISTVector checks against the first block of the
// ECB-AES128 example in NIST SP 800-38A, appendix F.1.1.
func TestEncryptBlockNISTVector(t *testing.T) {
	key := mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	plaintext := mustHex("6bc1bee22e409f96e93d7e117393172a")
	want := mustHex("3ad77bb40d7a3660a89ecaf32466ef97")

	c := NewCipher(key)
	got := make([]byte, BlockSize)
	c.EncryptBlock(got, plaintext)

	if !bytes.Equal(got, want) {
		t.Errorf("EncryptBlock = %x, want %x", got, want)
	}
}

func TestCTRIsSelfInverse(t *testing.T) {
	key := mustHex("000102030405060708090a0b0c0d0e0f")
	var nonce [NonceSize]byte
	for i := range nonce {
		nonce[i] = byte(i)
	}

	for _, n := range []int{1, 15, 16, 17, 1000} {
		original := make([]byte, n)
		for i := range original {
			original[i] = byte(i * 7 % 251)
		}

		buf := make([]byte, n)
		copy(buf, original)

		c := NewCipher(key)
		c.CTR(nonce, buf)
		if n > 0 && bytes.Equal(buf, original) {
			t.Fatalf("len=%d: ciphertext should differ from plaintext", n)
		}

		c2 := NewCipher(key)
		c2.CTR(nonce, buf)
		if !bytes.Equal(buf, original) {
			t.Errorf("len=%d: CTR should be self-inverse, got %x want %x", n, buf, original)
		}
	}
}

func TestCTRBlockBoundaries(t *testing.T) {
	key := mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	var nonce [NonceSize]byte

	msg := []byte("0123456789abcdef0123456789abcdef0") // 33 bytes, crosses two block boundaries
	buf := append([]byte(nil), msg...)

	NewCipher(key).CTR(nonce, buf)
	NewCipher(key).CTR(nonce, buf)

	if !bytes.Equal(buf, msg) {
		t.Errorf("unaligned-length CTR round trip failed: got %q want %q", buf, msg)
	}
}
