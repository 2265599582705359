package bigint256

import "math/bits"

// ModP reduces a 512-bit value modulo the secp256k1 field prime p, returning
// a canonical representative in [0, p). It uses the pseudo-Mersenne
// identity 2^256 = k (mod p), k = 2^32 + 977: the high 256 bits of src are
// multiplied by k and folded into the low 256 bits, which can overflow by
// at most one more limb; that overflow is folded once more, after which the
// value is provably less than 2p and a single conditional subtraction
// suffices. The implementation still loops the subtraction up to a small
// bound as a defensive measure, matching the C reference; the bound is
// never actually exercised more than once for well-formed input.
func ModP(src B512) B256 {
	var lo [NumLimbs]uint64
	copy(lo[:], src.L[:NumLimbs])
	var hi [NumLimbs]uint64
	copy(hi[:], src.L[NumLimbs:])

	fifth := foldHighIntoLow(&lo, hi)
	if fifth != 0 {
		foldFifthLimb(&lo, fifth)
	}

	res := B256{L: lo}
	for i := 0; i < 5 && res.Ge(P); i++ {
		res, _ = res.Sub(P)
	}
	return res
}

// foldHighIntoLow computes lo += hi*k as a 320-bit value in place, returning
// the resulting fifth limb (the part that didn't fit back into lo).
func foldHighIntoLow(lo *[NumLimbs]uint64, hi [NumLimbs]uint64) uint64 {
	var carry uint64
	for i := 0; i < NumLimbs; i++ {
		hiProd, loProd := bits.Mul64(hi[i], k)
		sum, c1 := bits.Add64(lo[i], loProd, 0)
		sum, c2 := bits.Add64(sum, carry, 0)
		lo[i] = sum
		carry = hiProd + c1 + c2
	}
	return carry
}

// foldFifthLimb folds a nonzero fifth-limb overflow back into limbs 0 and 1
// (fifth*k itself never spans more than two limbs) and propagates any
// further carry upward through the rest of lo. If that propagation carries
// out past the top limb, the fold has itself overflowed 2^256, which is
// congruent to k mod p, so k is folded in again until no carry remains.
func foldFifthLimb(lo *[NumLimbs]uint64, fifth uint64) {
	hiProd, loProd := bits.Mul64(fifth, k)

	sum, carry := bits.Add64(lo[0], loProd, 0)
	lo[0] = sum

	sum, carry = bits.Add64(lo[1], hiProd, carry)
	lo[1] = sum

	for i := 2; carry != 0 && i < NumLimbs; i++ {
		sum, carry = bits.Add64(lo[i], carry, 0)
		lo[i] = sum
	}

	for carry != 0 {
		sum, c := bits.Add64(lo[0], k, 0)
		lo[0] = sum
		carry = c
		for i := 1; carry != 0 && i < NumLimbs; i++ {
			sum, carry = bits.Add64(lo[i], carry, 0)
			lo[i] = sum
		}
	}
}

// InvModP computes the modular inverse of src modulo p via the binary
// extended Euclidean algorithm. InvModP(0) is defined to return 0; callers
// must not rely on this convention to avoid inverting zero in a
// cryptographic context.
func InvModP(src B256) B256 {
	if src.IsZero() {
		return Zero
	}

	u := src
	v := P
	x1 := One
	x2 := Zero

	for !u.IsZero() && !v.IsZero() {
		for u.L[0]&1 == 0 {
			u = shiftRight1(u)
			x1 = halveModP(x1)
		}
		for v.L[0]&1 == 0 {
			v = shiftRight1(v)
			x2 = halveModP(x2)
		}
		if u.Ge(v) {
			u, _ = u.Sub(v)
			var borrow uint64
			x1, borrow = x1.Sub(x2)
			if borrow != 0 {
				x1, _ = x1.Add(P)
			}
		} else {
			v, _ = v.Sub(u)
			var borrow uint64
			x2, borrow = x2.Sub(x1)
			if borrow != 0 {
				x2, _ = x2.Add(P)
			}
		}
	}

	if v.IsZero() {
		return x1
	}
	return x2
}

// shiftRight1 shifts a right by one bit, propagating the bit shifted out of
// each limb into the top of the next-lower limb.
func shiftRight1(a B256) B256 {
	var r B256
	var carry uint64
	for i := NumLimbs - 1; i >= 0; i-- {
		next := (a.L[i] & 1) << 63
		r.L[i] = (a.L[i] >> 1) | carry
		carry = next
	}
	return r
}

// halveModP computes x/2 mod p. If x is even this is a plain shift; if odd,
// it is (x+p)>>1 with the carry out of that addition reinserted as the new
// top bit. That carry is set for every odd x >= 2^256 - p, so dropping it
// silently produces a wrong half for nearly every odd x and a wrong inverse
// for nearly every input; it must never be discarded.
func halveModP(x B256) B256 {
	if x.L[0]&1 == 0 {
		return shiftRight1(x)
	}
	sum, addCarry := x.Add(P)
	r := shiftRight1(sum)
	r.L[NumLimbs-1] |= addCarry << 63
	return r
}
