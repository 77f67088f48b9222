package vncdes

import (
	"bytes"
	"fmt"

	"github.com/ultram4rine/go-vncdes/des"
)

// ChallengeSize is the length of the random challenge a VNC server
// sends during authentication (RFC 6143, section 7.2.2).
const ChallengeSize = 16

// passwordKey derives the challenge-exchange DES key from a password:
// zero-padded to 8 bytes, clipped beyond that, bit-reversed per byte.
// The Config length policy never applies here; the protocol fixes the
// key to the first 8 password bytes.
func passwordKey(password string) Key {
	var k Key
	copy(k[:], password)
	return ConditionKey(k)
}

// ChallengeResponse computes the client's reply to a server challenge:
// both 8-byte halves of the challenge are DES-encrypted in ECB under
// the password-derived key. In this direction the password is the key
// and the challenge is the plaintext, which is the reverse of the
// vault roles on Processor.
func ChallengeResponse(password string, challenge []byte) ([]byte, error) {
	if len(challenge) != ChallengeSize {
		return nil, fmt.Errorf("%w: want %d-byte challenge, got %d",
			ErrInvalidBlockLength, ChallengeSize, len(challenge))
	}
	key := passwordKey(password)
	c, err := des.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	response := make([]byte, ChallengeSize)
	for i := 0; i < ChallengeSize; i += des.BlockSize {
		c.Encrypt(response[i:i+des.BlockSize], challenge[i:i+des.BlockSize])
	}
	return response, nil
}

// VerifyChallengeResponse reports whether response is the correct reply
// to challenge for the given password. This is the check a server runs
// on the client's answer.
func VerifyChallengeResponse(password string, challenge, response []byte) (bool, error) {
	if len(response) != ChallengeSize {
		return false, fmt.Errorf("%w: want %d-byte response, got %d",
			ErrInvalidBlockLength, ChallengeSize, len(response))
	}
	want, err := ChallengeResponse(password, challenge)
	if err != nil {
		return false, err
	}
	return bytes.Equal(want, response), nil
}
