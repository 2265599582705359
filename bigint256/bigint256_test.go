package bigint256

import (
	"math/rand"
	"testing"
)

func TestFromHexBasics(t *testing.T) {
	zero := FromHex("0")
	if !zero.IsZero() {
		t.Error("FromHex(\"0\") should be zero")
	}

	one := FromHex("1")
	if !one.Equal(One) {
		t.Error("FromHex(\"1\") should equal One")
	}

	// non-hex characters are skipped
	withJunk := FromHex("0x1")
	if !withJunk.Equal(One) {
		t.Errorf("FromHex should skip non-hex chars, got %+v", withJunk)
	}

	// input longer than 64 nibbles is truncated from the top
	tooLong := FromHex("1" + hexZeros(64))
	if !tooLong.IsZero() {
		t.Error("nibbles beyond 256 bits should be ignored")
	}
}

func hexZeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestBytes32RoundTrip(t *testing.T) {
	a := FromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	back := FromBytes32(a.Bytes32())
	if !a.Equal(back) {
		t.Error("Bytes32/FromBytes32 should round-trip")
	}
}

func TestAddSubCarryBorrow(t *testing.T) {
	maxLimb := ^uint64(0)
	allOnes := B256{L: [4]uint64{maxLimb, maxLimb, maxLimb, maxLimb}}

	sum, carry := allOnes.Add(One)
	if carry != 1 || !sum.IsZero() {
		t.Errorf("allOnes+1 should wrap with carry=1, got sum=%+v carry=%d", sum, carry)
	}

	diff, borrow := Zero.Sub(One)
	if borrow != 1 || !diff.Equal(allOnes) {
		t.Errorf("0-1 should borrow and wrap to all-ones, got diff=%+v borrow=%d", diff, borrow)
	}
}

func TestMulKnownProduct(t *testing.T) {
	a := FromHex("FFFFFFFFFFFFFFFF")
	prod := a.Mul(a)
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	want := B512{L: [8]uint64{1, 0xFFFFFFFFFFFFFFFE, 0, 0, 0, 0, 0, 0}}
	if prod != want {
		t.Errorf("mul mismatch: got %+v want %+v", prod, want)
	}
}

func TestModPReducesBelowP(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		src := randomB512(rng)
		r := ModP(src)
		if r.Ge(P) {
			t.Fatalf("ModP result %+v not below p", r)
		}
	}
}

func TestModPOfPIsZero(t *testing.T) {
	var src B512
	copy(src.L[:4], P.L[:])
	r := ModP(src)
	if !r.IsZero() {
		t.Errorf("ModP(p) should be zero, got %+v", r)
	}
}

func TestInvModPIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		x := randomNonzeroBelowP(rng)
		inv := InvModP(x)
		prod := ModP(x.Mul(inv))
		if !prod.Equal(One) {
			t.Fatalf("x*inv(x) != 1 for x=%+v, got %+v", x, prod)
		}
	}
}

func TestInvModPZero(t *testing.T) {
	if !InvModP(Zero).IsZero() {
		t.Error("InvModP(0) should be 0 by convention")
	}
}

func randomB512(rng *rand.Rand) B512 {
	var b B512
	for i := range b.L {
		b.L[i] = rng.Uint64()
	}
	return b
}

func randomNonzeroBelowP(rng *rand.Rand) B256 {
	for {
		var b B256
		for i := range b.L {
			b.L[i] = rng.Uint64()
		}
		if !b.IsZero() && !b.Ge(P) {
			return b
		}
	}
}
