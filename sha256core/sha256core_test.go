package sha256core

import (
	"encoding/hex"
	"testing"
)

func TestSum256KnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, c := range cases {
		got := Sum256([]byte(c.in))
		want, err := hex.DecodeString(c.want)
		if err != nil {
			t.Fatal(err)
		}
		if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
			t.Errorf("Sum256(%q) = %x, want %x", c.in, got, want)
		}
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	data := make([]byte, 5000)
	for i := range data {
		data[i] = byte(i)
	}

	h := New()
	h.Write(data[:123])
	h.Write(data[123:4096])
	h.Write(data[4096:])
	streamed := h.Sum(nil)

	oneShot := Sum256(data)
	if hex.EncodeToString(streamed) != hex.EncodeToString(oneShot[:]) {
		t.Errorf("streaming digest mismatch: %x vs %x", streamed, oneShot)
	}
}

func TestResetReusesState(t *testing.T) {
	h := New()
	h.Write([]byte("abc"))
	first := h.Sum(nil)

	h.Reset()
	h.Write([]byte("abc"))
	second := h.Sum(nil)

	if hex.EncodeToString(first) != hex.EncodeToString(second) {
		t.Error("Reset should allow reuse of the hasher")
	}
}
