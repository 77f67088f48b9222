package vncdes

// BlockSize is the size in bytes of the single block VNC authentication
// encrypts.
const BlockSize = 8

// KeySize is the DES key size in bytes.
const KeySize = 8

// Key is 8-byte DES key material. The parity bits are neither checked
// nor honored, matching VNC's non-standard key usage.
type Key [KeySize]byte

// DefaultKey is the fixed obfuscation key hardcoded by TightVNC, RealVNC
// and most other servers for stored passwords. It is an implementation
// convention, not part of RFC 6143.
var DefaultKey = Key{23, 82, 107, 6, 35, 78, 88, 7}

// ConditionKey mirrors the bit order within every byte of k: bit i of
// each output byte is bit 7-i of the input byte. VNC hands keys to DES
// in this reversed order; it is the single deviation from textbook DES
// and the reason standard DES tools cannot read VNC ciphertexts.
// Conditioning is an involution and is applied exactly once, before the
// key schedule.
func ConditionKey(k Key) Key {
	var out Key
	for i, b := range k {
		out[i] = reverseBits(b)
	}
	return out
}

// reverseBits mirrors the bit order of a single byte by swapping
// adjacent bits, then pairs, then nibbles.
func reverseBits(b byte) byte {
	b = (b&0x55)<<1 | (b&0xaa)>>1
	b = (b&0x33)<<2 | (b&0xcc)>>2
	return (b&0x0f)<<4 | (b&0xf0)>>4
}
