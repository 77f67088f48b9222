package vncdes

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/ultram4rine/go-vncdes/des"
)

// A Processor encrypts, decrypts and verifies VNC password vault blocks
// under a fixed Config. In this direction the padded password is the
// plaintext and the configured key, conditioned per VNC convention, is
// the DES key. Every call derives its own cipher state, so a Processor
// is safe for concurrent use.
type Processor struct {
	config Config
}

// NewProcessor returns a Processor for the given Config.
func NewProcessor(config Config) (*Processor, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Processor{config: config}, nil
}

// DefaultProcessor returns a Processor with DefaultConfig.
func DefaultProcessor() *Processor {
	return &Processor{config: DefaultConfig()}
}

// Config returns the Processor's configuration.
func (p *Processor) Config() Config {
	return p.config
}

// packPassword applies the length policy and packs the password into a
// zero-padded block. AutoTruncate wins over StrictMode: a clipped
// password is policy, not an error.
func (p *Processor) packPassword(password string) ([BlockSize]byte, error) {
	var block [BlockSize]byte
	if password == "" {
		return block, ErrEmptyPassword
	}
	pw := []byte(password)
	if len(pw) > p.config.MaxPasswordLength {
		if p.config.StrictMode && !p.config.AutoTruncate {
			return block, fmt.Errorf("%w: %d bytes over limit of %d",
				ErrPasswordTooLong, len(pw), p.config.MaxPasswordLength)
		}
		pw = pw[:p.config.MaxPasswordLength]
	}
	copy(block[:], pw)
	return block, nil
}

// EncryptPassword encrypts password into the 8-byte vault block that
// vncpasswd files store.
func (p *Processor) EncryptPassword(password string) ([]byte, error) {
	block, err := p.packPassword(password)
	if err != nil {
		return nil, err
	}
	key := ConditionKey(p.config.Key)
	c, err := des.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, BlockSize)
	c.Encrypt(ciphertext, block[:])
	return ciphertext, nil
}

// EncryptPasswordHex is EncryptPassword rendered as 16 lowercase hex
// characters.
func (p *Processor) EncryptPasswordHex(password string) (string, error) {
	ciphertext, err := p.EncryptPassword(password)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(ciphertext), nil
}

// DecryptPassword recovers the password stored in an 8-byte vault
// block. The protocol itself never decrypts; this exists to inspect
// stored passwords and to test the encrypt path.
func (p *Processor) DecryptPassword(block []byte) (string, error) {
	if len(block) != BlockSize {
		return "", fmt.Errorf("%w: want %d bytes, got %d",
			ErrInvalidBlockLength, BlockSize, len(block))
	}
	key := ConditionKey(p.config.Key)
	c, err := des.NewCipher(key[:])
	if err != nil {
		return "", err
	}
	plaintext := make([]byte, BlockSize)
	c.Decrypt(plaintext, block)
	if i := bytes.IndexByte(plaintext, 0); i >= 0 {
		plaintext = plaintext[:i]
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("vncdes: decrypted password is not valid UTF-8")
	}
	return string(plaintext), nil
}

// DecryptPasswordHex is DecryptPassword on a hex-encoded block.
func (p *Processor) DecryptPasswordHex(hexBlock string) (string, error) {
	block, err := DecodeBlock(hexBlock)
	if err != nil {
		return "", err
	}
	return p.DecryptPassword(block)
}

// VerifyPassword reports whether password encrypts to expectedHex under
// the configured key.
func (p *Processor) VerifyPassword(password, expectedHex string) (bool, error) {
	expected, err := DecodeBlock(expectedHex)
	if err != nil {
		return false, err
	}
	actual, err := p.EncryptPassword(password)
	if err != nil {
		return false, err
	}
	return bytes.Equal(actual, expected), nil
}

// EncodeBlock renders an 8-byte block as 16 lowercase hex characters.
func EncodeBlock(block []byte) (string, error) {
	if len(block) != BlockSize {
		return "", fmt.Errorf("%w: want %d bytes, got %d",
			ErrInvalidBlockLength, BlockSize, len(block))
	}
	return hex.EncodeToString(block), nil
}

// DecodeBlock parses a block given as exactly 16 hex characters.
func DecodeBlock(s string) ([]byte, error) {
	if len(s) != 2*BlockSize {
		return nil, fmt.Errorf("%w: want %d characters, got %d",
			ErrInvalidHexInput, 2*BlockSize, len(s))
	}
	block, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHexInput, s)
	}
	return block, nil
}

// EncryptWithKey encrypts password under an explicit key with the
// default length policy.
func EncryptWithKey(password string, key Key) ([]byte, error) {
	p := Processor{config: DefaultConfig()}
	p.config.Key = key
	return p.EncryptPassword(password)
}

// DecryptWithKey decrypts an 8-byte vault block under an explicit key.
func DecryptWithKey(block []byte, key Key) (string, error) {
	p := Processor{config: DefaultConfig()}
	p.config.Key = key
	return p.DecryptPassword(block)
}

// VerifyWithKey reports whether password encrypts to expectedHex under
// an explicit key.
func VerifyWithKey(password, expectedHex string, key Key) (bool, error) {
	p := Processor{config: DefaultConfig()}
	p.config.Key = key
	return p.VerifyPassword(password, expectedHex)
}

// EncryptPassword encrypts password under DefaultKey.
func EncryptPassword(password string) ([]byte, error) {
	return EncryptWithKey(password, DefaultKey)
}

// DecryptPassword decrypts an 8-byte vault block under DefaultKey.
func DecryptPassword(block []byte) (string, error) {
	return DecryptWithKey(block, DefaultKey)
}
