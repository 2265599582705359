package aes128

// NonceSize is the length in bytes of a CTR-mode nonce, leaving 4 bytes of
// the 16-byte counter block for the block counter.
const NonceSize = 12

// CTR encrypts (or, identically, decrypts) buf in place using AES-128 in
// counter mode: the counter block is the 12-byte nonce followed by a 4-byte
// big-endian counter starting at 0 and incrementing once per block. The
// final block is truncated to whatever remains of buf.
func (c *Cipher) CTR(nonce [NonceSize]byte, buf []byte) {
	var counterBlock, keystream [BlockSize]byte
	copy(counterBlock[:NonceSize], nonce[:])

	for offset := 0; offset < len(buf); offset += BlockSize {
		putBE32(counterBlock[NonceSize:], uint32(offset/BlockSize))
		c.EncryptBlock(keystream[:], counterBlock[:])

		end := offset + BlockSize
		if end > len(buf) {
			end = len(buf)
		}
		for i := offset; i < end; i++ {
			buf[i] ^= keystream[i-offset]
		}
	}
}

func putBE32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
