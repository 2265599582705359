// Package ecies wires bigint256, curve, sha256core and aes128 together into
// an Elliptic Curve Integrated Encryption scheme over secp256k1: shared
// point derivation, an X-coordinate-only SHA-256 KDF, and AES-128-CTR
// payload encryption. No MAC is included; this is confidentiality only.
package ecies

import (
	"crypto/rand"
	"errors"

	"github.com/Sinalsall/ecies/aes128"
	"github.com/Sinalsall/ecies/bigint256"
	"github.com/Sinalsall/ecies/curve"
	"github.com/Sinalsall/ecies/sha256core"
)

// Context capability flags, mirroring the donor secp256k1 library's
// ContextSign/ContextVerify idiom even though this context has only one
// axis of behavior to flag today: whether the caller supplies its own
// ephemeral scalar (OptDeterministic) or Encrypt draws one from
// crypto/rand. The AES-CTR nonce is always supplied by the caller.
const (
	OptDefault       = 0
	OptDeterministic = 1 << 0
)

// Options bundles the caller-tunable parameters of the ECIES driver: the
// capability Flags (OptDefault/OptDeterministic) and KeyOffset, the byte
// offset into the 32-byte KDF digest where the 16-byte AES-128 key window
// starts. The reference scenarios all use offset 0; the field exists so the
// key-selection contract is explicit and testable rather than an unstated
// constant buried in deriveKey.
type Options struct {
	Flags     uint
	KeyOffset int
}

// DefaultOptions is OptDefault with KeyOffset 0, i.e. the first 16 bytes of
// the digest.
var DefaultOptions = Options{Flags: OptDefault, KeyOffset: 0}

// Context holds ECIES driver configuration. The zero Context behaves as
// DefaultOptions.
type Context struct {
	opts Options
}

// NewContext creates an ECIES context with the given option flags and
// DefaultOptions.KeyOffset, the common case of just toggling
// OptDeterministic.
func NewContext(flags uint) *Context {
	opts := DefaultOptions
	opts.Flags = flags
	return &Context{opts: opts}
}

// NewContextWithOptions creates an ECIES context from a fully specified
// Options value. It panics if KeyOffset does not leave room for a full
// 16-byte key window within the digest.
func NewContextWithOptions(opts Options) *Context {
	argCheck(opts.KeyOffset >= 0 && opts.KeyOffset+16 <= sha256core.Size, "KeyOffset in [0, 16]")
	return &Context{opts: opts}
}

// argCheck panics on programmer error (nil receivers, malformed fixed-size
// inputs) rather than returning a Go error, matching the donor library's
// defaultIllegalCallback: these are bugs in the caller, not data conditions
// arising from untrusted input.
func argCheck(condition bool, message string) {
	if !condition {
		panic("ecies: illegal argument: " + message)
	}
}

// Ciphertext is the external shape a transport layer would serialize: the
// ephemeral public point, the nonce used for AES-CTR, and the encrypted
// payload. Serialization itself is out of scope for this module.
type Ciphertext struct {
	Ephemeral curve.Point
	Nonce     [aes128.NonceSize]byte
	Data      []byte
}

var errInvalidPeerPoint = errors.New("ecies: peer point is not on the curve")

// checkPeerPoint rejects any point this module must not multiply a scalar
// into: off-curve points, and the point at infinity (which IsOnCurve treats
// as on-curve by convention but which would make every shared point O,
// collapsing the derived key to a constant regardless of either party's
// scalar).
func checkPeerPoint(p curve.Point) error {
	if p.Infinity || !p.IsOnCurve() {
		return errInvalidPeerPoint
	}
	return nil
}

// deriveKey computes the ECIES KDF: SHA-256 over the shared point's X
// coordinate, serialized big-endian, with the AES-128 key taken from the
// 16-byte window of the digest starting at keyOffset.
func deriveKey(shared curve.Point, keyOffset int) [16]byte {
	xBytes := shared.X.Bytes32()
	digest := sha256core.Sum256(xBytes[:])
	var key [16]byte
	copy(key[:], digest[keyOffset:keyOffset+16])
	return key
}

// Encrypt runs the sender side of ECIES against recipientPub: it generates
// an ephemeral scalar r from crypto/rand (under OptDeterministic it returns
// an error instead, and EncryptWithEphemeral must be used), computes R = r*G and the
// shared point S = r*Pub, derives the AES-128 key from S.X, and encrypts
// plaintext with AES-128-CTR under the given nonce.
func (c *Context) Encrypt(recipientPub curve.Point, plaintext []byte, nonce [aes128.NonceSize]byte) (Ciphertext, error) {
	argCheck(c != nil, "ctx != nil")
	if err := checkPeerPoint(recipientPub); err != nil {
		return Ciphertext{}, err
	}

	r, err := c.ephemeralScalar()
	if err != nil {
		return Ciphertext{}, err
	}
	return c.encryptWithScalar(r, recipientPub, plaintext, nonce)
}

// EncryptWithEphemeral behaves like Encrypt but takes the ephemeral scalar
// explicitly, for deterministic/reproducible encryption (tests, the literal
// seeds in the spec's end-to-end scenarios) regardless of context flags.
func (c *Context) EncryptWithEphemeral(ephemeral bigint256.B256, recipientPub curve.Point, plaintext []byte, nonce [aes128.NonceSize]byte) (Ciphertext, error) {
	argCheck(c != nil, "ctx != nil")
	if err := checkPeerPoint(recipientPub); err != nil {
		return Ciphertext{}, err
	}
	return c.encryptWithScalar(ephemeral, recipientPub, plaintext, nonce)
}

func (c *Context) encryptWithScalar(r bigint256.B256, recipientPub curve.Point, plaintext []byte, nonce [aes128.NonceSize]byte) (Ciphertext, error) {
	ephemeral := curve.Mul(r, curve.Generator)
	shared := curve.Mul(r, recipientPub)

	key := deriveKey(shared, c.opts.KeyOffset)
	data := make([]byte, len(plaintext))
	copy(data, plaintext)

	aes128.NewCipher(key[:]).CTR(nonce, data)

	return Ciphertext{Ephemeral: ephemeral, Nonce: nonce, Data: data}, nil
}

// Decrypt runs the receiver side of ECIES: it recomputes the shared point
// S = priv*R from the recipient's private scalar and the ciphertext's
// ephemeral point, derives the same AES-128 key, and runs AES-128-CTR
// again, which is its own inverse.
func (c *Context) Decrypt(recipientPriv bigint256.B256, ct Ciphertext) ([]byte, error) {
	argCheck(c != nil, "ctx != nil")
	if err := checkPeerPoint(ct.Ephemeral); err != nil {
		return nil, err
	}

	shared := curve.Mul(recipientPriv, ct.Ephemeral)
	key := deriveKey(shared, c.opts.KeyOffset)

	data := make([]byte, len(ct.Data))
	copy(data, ct.Data)
	aes128.NewCipher(key[:]).CTR(ct.Nonce, data)

	return data, nil
}

func (c *Context) ephemeralScalar() (bigint256.B256, error) {
	if c.opts.Flags&OptDeterministic != 0 {
		return bigint256.B256{}, errors.New("ecies: OptDeterministic context requires EncryptWithEphemeral")
	}
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return bigint256.B256{}, err
	}
	return bigint256.FromBytes32(b), nil
}

// PublicKey computes priv*G, the public key for a given private scalar.
func PublicKey(priv bigint256.B256) curve.Point {
	return curve.Mul(priv, curve.Generator)
}
