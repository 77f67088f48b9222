package des

import (
	"bytes"
	stddes "crypto/des"
	"crypto/rand"
	"encoding/hex"
	"testing"
)

// Known-answer vectors from the FIPS 81 examples and the classic DES
// walkthroughs.
var knownAnswers = []struct {
	name       string
	key        string
	plaintext  string
	ciphertext string
}{
	{"weak all-zero key", "0101010101010101", "0000000000000000", "8ca64de9c1b123a7"},
	{"textbook key", "133457799bbcdff1", "0123456789abcdef", "85e813540f0ab405"},
	{"fips 81 ecb", "0123456789abcdef", "4e6f772069732074", "3fa40e8a984d4815"},
}

func TestKnownAnswers(t *testing.T) {
	for _, v := range knownAnswers {
		t.Run(v.name, func(t *testing.T) {
			key, _ := hex.DecodeString(v.key)
			plaintext, _ := hex.DecodeString(v.plaintext)
			want, _ := hex.DecodeString(v.ciphertext)

			c, err := NewCipher(key)
			if err != nil {
				t.Fatalf("NewCipher(%s): %v", v.key, err)
			}

			got := make([]byte, BlockSize)
			c.Encrypt(got, plaintext)
			if !bytes.Equal(got, want) {
				t.Errorf("Encrypt(%s): got %x, want %x", v.plaintext, got, want)
			}

			back := make([]byte, BlockSize)
			c.Decrypt(back, got)
			if !bytes.Equal(back, plaintext) {
				t.Errorf("Decrypt(%x): got %x, want %s", got, back, v.plaintext)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		key := make([]byte, KeySize)
		block := make([]byte, BlockSize)
		rand.Read(key)
		rand.Read(block)

		c, err := NewCipher(key)
		if err != nil {
			t.Fatalf("NewCipher(%x): %v", key, err)
		}

		ciphertext := make([]byte, BlockSize)
		plaintext := make([]byte, BlockSize)
		c.Encrypt(ciphertext, block)
		c.Decrypt(plaintext, ciphertext)

		if !bytes.Equal(plaintext, block) {
			t.Fatalf("roundtrip(%x): got %x, want %x", key, plaintext, block)
		}
	}
}

// TestAgainstCryptoDES checks the engine bit for bit against the
// standard library implementation over random keys and blocks.
func TestAgainstCryptoDES(t *testing.T) {
	for i := 0; i < 64; i++ {
		key := make([]byte, KeySize)
		block := make([]byte, BlockSize)
		rand.Read(key)
		rand.Read(block)

		c, err := NewCipher(key)
		if err != nil {
			t.Fatalf("NewCipher(%x): %v", key, err)
		}
		ref, err := stddes.NewCipher(key)
		if err != nil {
			t.Fatalf("des.NewCipher(%x): %v", key, err)
		}

		got := make([]byte, BlockSize)
		want := make([]byte, BlockSize)
		c.Encrypt(got, block)
		ref.Encrypt(want, block)
		if !bytes.Equal(got, want) {
			t.Fatalf("Encrypt(%x, %x): got %x, want %x", key, block, got, want)
		}

		c.Decrypt(got, block)
		ref.Decrypt(want, block)
		if !bytes.Equal(got, want) {
			t.Fatalf("Decrypt(%x, %x): got %x, want %x", key, block, got, want)
		}
	}
}

func TestKeySizeError(t *testing.T) {
	for _, n := range []int{0, 7, 9, 24} {
		if _, err := NewCipher(make([]byte, n)); err == nil {
			t.Errorf("NewCipher(%d bytes): err is nil", n)
		}
	}
}

func TestBlockSize(t *testing.T) {
	c, err := NewCipher(make([]byte, KeySize))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	if c.BlockSize() != 8 {
		t.Errorf("BlockSize: got %d, want 8", c.BlockSize())
	}
}
