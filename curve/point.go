// Package curve implements affine point arithmetic on the secp256k1 curve
// y^2 = x^3 + 7 over GF(p), built directly on bigint256 with no external
// elliptic-curve library.
package curve

import "github.com/Sinalsall/ecies/bigint256"

// Point is an affine point on secp256k1. When Infinity is true, X and Y are
// unspecified and must not be read by consumers.
type Point struct {
	X, Y     bigint256.B256
	Infinity bool
}

// O is the point at infinity, the group identity.
var O = Point{Infinity: true}

// B is the curve parameter in y^2 = x^3 + B (a = 0, b = 7).
var B = bigint256.B256{L: [4]uint64{7, 0, 0, 0}}

// Generator is the standard secp256k1 base point G.
var Generator = Point{
	X: bigint256.FromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
	Y: bigint256.FromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
}

// fieldK is 2^256 mod p, i.e. the same pseudo-Mersenne reduction constant
// bigint256 folds with, used here to bring a+b back into range when the
// raw 256-bit addition overflows.
var fieldK = bigint256.B256{L: [4]uint64{0x1000003D1, 0, 0, 0}}

// fAdd computes a + b mod p for a, b already in [0, p). A raw overflow out
// of the top limb is folded back in via 2^256 = k (mod p) before the usual
// conditional subtraction of p.
func fAdd(a, b bigint256.B256) bigint256.B256 {
	sum, carry := a.Add(b)
	if carry != 0 {
		sum, _ = sum.Add(fieldK)
	}
	if sum.Ge(bigint256.P) {
		sum, _ = sum.Sub(bigint256.P)
	}
	return sum
}

// fSub computes a - b mod p, adding p back in when the raw subtraction
// borrows, keeping the intermediate in [0, p).
func fSub(a, b bigint256.B256) bigint256.B256 {
	diff, borrow := a.Sub(b)
	if borrow != 0 {
		diff, _ = diff.Add(bigint256.P)
	}
	return diff
}

func fMul(a, b bigint256.B256) bigint256.B256 {
	return bigint256.ModP(a.Mul(b))
}

// Neg returns -P = (x, p-y). Infinity negates to itself.
func (p Point) Neg() Point {
	if p.Infinity {
		return O
	}
	return Point{X: p.X, Y: fSub(bigint256.Zero, p.Y)}
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + 7 (mod p). The point at
// infinity is considered on-curve by convention.
func (p Point) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := fMul(p.Y, p.Y)
	rhs := fAdd(fMul(fMul(p.X, p.X), p.X), B)
	return lhs.Equal(rhs)
}

// Double computes 2*P.
func Double(p Point) Point {
	if p.Infinity {
		return O
	}
	// lambda = (3*x^2) * (2*y)^-1
	three := bigint256.B256{L: [4]uint64{3, 0, 0, 0}}
	two := bigint256.B256{L: [4]uint64{2, 0, 0, 0}}

	num := fMul(three, fMul(p.X, p.X))
	den := fMul(two, p.Y)
	lambda := fMul(num, bigint256.InvModP(den))

	x3 := fSub(fSub(fMul(lambda, lambda), p.X), p.X)
	y3 := fSub(fMul(lambda, fSub(p.X, x3)), p.Y)

	return Point{X: x3, Y: y3}
}

// Add computes P + Q, handling the point-at-infinity and coincidence cases
// explicitly: P+O=P, O+Q=Q, P+(-P)=O, P+P=Double(P), and the general chord
// formula otherwise.
func Add(p, q Point) Point {
	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return Double(p)
		}
		return O
	}

	num := fSub(q.Y, p.Y)
	den := fSub(q.X, p.X)
	lambda := fMul(num, bigint256.InvModP(den))

	x3 := fSub(fSub(fMul(lambda, lambda), p.X), q.X)
	y3 := fSub(fMul(lambda, fSub(p.X, x3)), p.Y)

	return Point{X: x3, Y: y3}
}

// Mul computes k*P via left-to-right double-and-add over all 256 bits of k,
// most significant bit first. It is not constant-time: both Add and Double
// branch on point coincidence and the infinity flag.
func Mul(k bigint256.B256, p Point) Point {
	acc := O
	for i := 255; i >= 0; i-- {
		acc = Double(acc)
		limbIdx := i / 64
		bitIdx := uint(i % 64)
		if (k.L[limbIdx]>>bitIdx)&1 == 1 {
			acc = Add(acc, p)
		}
	}
	return acc
}
