package vncdes

import (
	"crypto/rand"
	"testing"
)

func TestReverseBits(t *testing.T) {
	var cases = [][2]byte{
		{0x00, 0x00},
		{0x01, 0x80},
		{0x80, 0x01},
		{0xaa, 0x55},
		{0xf0, 0x0f},
		{0xff, 0xff},
		{0x17, 0xe8},
	}
	for _, c := range cases {
		if got := reverseBits(c[0]); got != c[1] {
			t.Errorf("reverseBits(%#02x): got %#02x, want %#02x", c[0], got, c[1])
		}
	}
}

// The conditioned form of the well-known fixed key is the raw DES key
// some servers (UltraVNC among them) hardcode directly.
func TestConditionKeyKnown(t *testing.T) {
	want := Key{0xe8, 0x4a, 0xd6, 0x60, 0xc4, 0x72, 0x1a, 0xe0}
	if got := ConditionKey(DefaultKey); got != want {
		t.Errorf("ConditionKey(DefaultKey): got %x, want %x", got, want)
	}
}

func TestConditionKeyInvolution(t *testing.T) {
	for i := 0; i < 32; i++ {
		var k Key
		rand.Read(k[:])
		if got := ConditionKey(ConditionKey(k)); got != k {
			t.Fatalf("ConditionKey twice(%x): got %x, want identity", k, got)
		}
	}
}
