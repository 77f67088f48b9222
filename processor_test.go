package vncdes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Vault ciphertexts produced by TightVNC's vncpasswd under the
// well-known fixed key.
func TestEncryptPasswordKnownVectors(t *testing.T) {
	p := DefaultProcessor()

	var vectors = map[string]string{
		"password": "dbd83cfd727a1458",
		"test":     "2f981dc548e09ec2",
	}
	for password, want := range vectors {
		got, err := p.EncryptPasswordHex(password)
		require.NoError(t, err)
		require.Equal(t, want, got, "EncryptPasswordHex(%q)", password)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	p := DefaultProcessor()

	for _, password := range []string{"a", "test", "password", "s3cr3t!"} {
		ciphertext, err := p.EncryptPassword(password)
		require.NoError(t, err)
		require.Len(t, ciphertext, BlockSize)

		decrypted, err := p.DecryptPassword(ciphertext)
		require.NoError(t, err)
		require.Equal(t, password, decrypted)
	}
}

func TestVerifyPassword(t *testing.T) {
	p := DefaultProcessor()

	ok, err := p.VerifyPassword("password", "dbd83cfd727a1458")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.VerifyPassword("wrongpass", "dbd83cfd727a1458")
	require.NoError(t, err)
	require.False(t, ok)
}

// A short password is zero-padded, so a password carrying its own
// trailing NUL packs into the same block.
func TestZeroPadding(t *testing.T) {
	p := DefaultProcessor()

	short, err := p.EncryptPassword("abc")
	require.NoError(t, err)
	padded, err := p.EncryptPassword("abc\x00")
	require.NoError(t, err)
	require.Equal(t, short, padded)

	// Decryption strips at the first NUL either way.
	decrypted, err := p.DecryptPassword(padded)
	require.NoError(t, err)
	require.Equal(t, "abc", decrypted)
}

func TestTruncationBoundary(t *testing.T) {
	lenient := DefaultProcessor() // AutoTruncate on

	nine, err := lenient.EncryptPassword("123456789")
	require.NoError(t, err)
	eight, err := lenient.EncryptPassword("12345678")
	require.NoError(t, err)
	require.Equal(t, eight, nine, "9-byte password must clip to its 8-byte prefix")

	config, err := NewConfigBuilder().StrictMode(true).AutoTruncate(false).Build()
	require.NoError(t, err)
	strict, err := NewProcessor(config)
	require.NoError(t, err)

	_, err = strict.EncryptPassword("123456789")
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestEmptyPassword(t *testing.T) {
	_, err := DefaultProcessor().EncryptPassword("")
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestDecodeBlockErrors(t *testing.T) {
	for _, s := range []string{
		"zz",
		"dbd83cfd727a145",  // 15 characters
		"zzzzzzzzzzzzzzzz", // right length, not hex
	} {
		_, err := DecodeBlock(s)
		require.ErrorIs(t, err, ErrInvalidHexInput, "DecodeBlock(%q)", s)
	}

	block, err := DecodeBlock("dbd83cfd727a1458")
	require.NoError(t, err)
	require.Len(t, block, BlockSize)
}

func TestDecryptPasswordBlockLength(t *testing.T) {
	p := DefaultProcessor()
	for _, n := range []int{0, 7, 9} {
		_, err := p.DecryptPassword(make([]byte, n))
		require.ErrorIs(t, err, ErrInvalidBlockLength)
	}
}

func TestStatelessHelpers(t *testing.T) {
	key := Key{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	ciphertext, err := EncryptWithKey("custom", key)
	require.NoError(t, err)

	decrypted, err := DecryptWithKey(ciphertext, key)
	require.NoError(t, err)
	require.Equal(t, "custom", decrypted)

	hexBlock, err := EncodeBlock(ciphertext)
	require.NoError(t, err)

	ok, err := VerifyWithKey("custom", hexBlock, key)
	require.NoError(t, err)
	require.True(t, ok)

	// A different key must not conflate with the default-key helpers.
	defaultCiphertext, err := EncryptPassword("custom")
	require.NoError(t, err)
	require.NotEqual(t, ciphertext, defaultCiphertext)
}
