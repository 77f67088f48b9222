// Package des implements the Data Encryption Standard as the table-driven
// 16-round Feistel network of FIPS 46-3.
//
// It exists because the VNC authentication scheme runs DES with
// bit-reversed key bytes, and the exact tables have to be visible for
// interoperability testing. The Cipher type satisfies the
// crypto/cipher.Block interface, so it is a drop-in for crypto/des.
package des

import (
	"encoding/binary"
	"strconv"
)

// BlockSize is the DES block size in bytes.
const BlockSize = 8

// KeySize is the DES key size in bytes. Only 56 of the 64 bits are used;
// the eighth bit of every byte is a parity bit that permutedChoice1
// discards. No parity checking is performed.
const KeySize = 8

type KeySizeError int

func (k KeySizeError) Error() string {
	return "des: invalid key size " + strconv.Itoa(int(k))
}

// A Cipher is an instance of DES encryption using a particular key.
// The 16 round subkeys are derived once, in NewCipher, and belong to
// that Cipher value alone.
type Cipher struct {
	subkeys [16]uint64
}

// NewCipher creates and returns a Cipher.
// The key argument must be 8 bytes.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	c := new(Cipher)
	c.generateSubkeys(key)
	return c, nil
}

// BlockSize returns the DES block size, 8 bytes.
// It is necessary to satisfy the Block interface in the
// package "crypto/cipher".
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the 8-byte block in src and stores the result in dst.
func (c *Cipher) Encrypt(dst, src []byte) { c.crypt(dst, src, false) }

// Decrypt decrypts the 8-byte block in src and stores the result in dst.
// Decryption is encryption with the subkey order reversed.
func (c *Cipher) Decrypt(dst, src []byte) { c.crypt(dst, src, true) }

func (c *Cipher) crypt(dst, src []byte, decrypt bool) {
	if len(src) < BlockSize {
		panic("des: input not full block")
	}
	if len(dst) < BlockSize {
		panic("des: output not full block")
	}

	b := permuteBlock(binary.BigEndian.Uint64(src), 64, initialPermutation[:])
	left, right := uint32(b>>32), uint32(b)

	for i := 0; i < 16; i++ {
		k := c.subkeys[i]
		if decrypt {
			k = c.subkeys[15-i]
		}
		left, right = right, left^feistel(right, k)
	}

	// The halves are swapped once more after round 16, which undoes the
	// swap of the final round.
	preoutput := uint64(right)<<32 | uint64(left)
	binary.BigEndian.PutUint64(dst, permuteBlock(preoutput, 64, finalPermutation[:]))
}

// generateSubkeys computes the 16 48-bit round subkeys: permutedChoice1
// splits the key into two 28-bit halves, each half is rotated left per
// the round schedule, and permutedChoice2 contracts the joined halves.
func (c *Cipher) generateSubkeys(key []byte) {
	k := permuteBlock(binary.BigEndian.Uint64(key), 64, permutedChoice1[:])
	left := uint32(k>>28) & 0x0fffffff
	right := uint32(k) & 0x0fffffff
	for i, shift := range keyShifts {
		left = rotate28(left, uint(shift))
		right = rotate28(right, uint(shift))
		c.subkeys[i] = permuteBlock(uint64(left)<<28|uint64(right), 56, permutedChoice2[:])
	}
}

// feistel is the DES round function: expand the half block to 48 bits,
// mix in the subkey, substitute each 6-bit group through its S-box and
// permute the 32-bit result.
func feistel(right uint32, subkey uint64) uint32 {
	x := permuteBlock(uint64(right), 32, expansion[:]) ^ subkey
	var out uint32
	for i := 0; i < 8; i++ {
		six := uint8(x>>(uint(7-i)*6)) & 0x3f
		row := six>>4&2 | six&1
		col := six >> 1 & 0x0f
		out = out<<4 | uint32(sBoxes[i][row][col])
	}
	return uint32(permuteBlock(uint64(out), 32, pBox[:]))
}

// permuteBlock returns the bits of src rearranged by table. Positions in
// table are 1-indexed from the most significant of width bits; the
// output is as wide as the table. Pure data movement, no computation.
func permuteBlock(src uint64, width uint, table []uint8) uint64 {
	var out uint64
	for _, pos := range table {
		out = out<<1 | src>>(width-uint(pos))&1
	}
	return out
}

// rotate28 rotates a 28-bit key half left by n bits.
func rotate28(v uint32, n uint) uint32 {
	return (v<<n | v>>(28-n)) & 0x0fffffff
}
