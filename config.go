package vncdes

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
)

// MaxProtocolPasswordLength is the password length ceiling fixed by the
// VNC protocol: only the first 8 bytes ever reach the cipher.
const MaxProtocolPasswordLength = 8

// Config holds the active key and the password length policy. A Config
// is a plain value: build it once, hand it to a Processor, never mutate
// it afterwards. Changing the key means building a new Config.
type Config struct {
	// Key is the DES key for the vault direction, in raw (unconditioned)
	// form.
	Key Key

	// StrictMode makes over-long passwords an error instead of a silent
	// policy.
	StrictMode bool

	// AutoTruncate permits clipping over-long passwords to the limit.
	// It wins over StrictMode.
	AutoTruncate bool

	// MaxPasswordLength is the password byte limit. The protocol fixes
	// it at 8; larger values are only meaningful outside strict mode.
	MaxPasswordLength int
}

// DefaultConfig returns the configuration of stock VNC servers: the
// well-known fixed key and the lenient clip-to-8-bytes policy.
func DefaultConfig() Config {
	return Config{
		Key:               DefaultKey,
		AutoTruncate:      true,
		MaxPasswordLength: MaxProtocolPasswordLength,
	}
}

// KeyHex returns the key as 16 lowercase hex characters.
func (c Config) KeyHex() string {
	return hex.EncodeToString(c.Key[:])
}

func (c Config) validate() error {
	if c.MaxPasswordLength <= 0 {
		return fmt.Errorf("%w: max password length must be positive", ErrInvalidConfig)
	}
	// Strict mode promises protocol behavior, and the protocol caps
	// passwords at 8 bytes, so a larger limit is a contradiction.
	if c.StrictMode && c.MaxPasswordLength > MaxProtocolPasswordLength {
		return fmt.Errorf("%w: strict mode caps max password length at %d",
			ErrInvalidConfig, MaxProtocolPasswordLength)
	}
	return nil
}

// ParseHexKey decodes a key given as exactly 16 hex characters.
func ParseHexKey(s string) (Key, error) {
	var k Key
	if len(s) != 2*KeySize {
		return k, fmt.Errorf("%w: want %d hex characters, got %d",
			ErrInvalidKeyFormat, 2*KeySize, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return k, fmt.Errorf("%w: %q", ErrInvalidKeyFormat, s)
	}
	copy(k[:], raw)
	return k, nil
}

// A ConfigBuilder accumulates settings on top of DefaultConfig and
// validates them in Build.
type ConfigBuilder struct {
	config Config
	err    error
}

// NewConfigBuilder returns a builder seeded with DefaultConfig.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: DefaultConfig()}
}

// Key sets the encryption key from raw bytes.
func (b *ConfigBuilder) Key(k Key) *ConfigBuilder {
	b.config.Key = k
	return b
}

// HexKey sets the encryption key from 16 hex characters. A malformed
// string surfaces as ErrInvalidKeyFormat from Build.
func (b *ConfigBuilder) HexKey(s string) *ConfigBuilder {
	k, err := ParseHexKey(s)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.config.Key = k
	return b
}

// StrictMode toggles strict password length enforcement.
func (b *ConfigBuilder) StrictMode(strict bool) *ConfigBuilder {
	b.config.StrictMode = strict
	return b
}

// AutoTruncate toggles clipping of over-long passwords.
func (b *ConfigBuilder) AutoTruncate(truncate bool) *ConfigBuilder {
	b.config.AutoTruncate = truncate
	return b
}

// MaxPasswordLength sets the password byte limit.
func (b *ConfigBuilder) MaxPasswordLength(n int) *ConfigBuilder {
	b.config.MaxPasswordLength = n
	return b
}

// Build returns the accumulated Config, or the first error recorded by
// a setter, or ErrInvalidConfig for contradictory settings.
func (b *ConfigBuilder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}
	if err := b.config.validate(); err != nil {
		return Config{}, err
	}
	return b.config, nil
}

// configJSON is the on-disk form of a Config. The key is stored as 16
// lowercase hex characters.
type configJSON struct {
	Key               string `json:"key"`
	StrictMode        bool   `json:"strict_mode"`
	AutoTruncate      bool   `json:"auto_truncate"`
	MaxPasswordLength int    `json:"max_password_length"`
}

// ParseConfig parses and validates the JSON form of a Config.
func ParseConfig(js []byte) (Config, error) {
	var cj configJSON
	if err := json.Unmarshal(js, &cj); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	key, err := ParseHexKey(cj.Key)
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Key:               key,
		StrictMode:        cj.StrictMode,
		AutoTruncate:      cj.AutoTruncate,
		MaxPasswordLength: cj.MaxPasswordLength,
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads a JSON config file from disk.
func LoadConfig(path string) (Config, error) {
	js, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(js)
}

// Save writes the Config to path as JSON. The file is created with mode
// 0600 since the key is secret-adjacent.
func (c Config) Save(path string) error {
	if err := c.validate(); err != nil {
		return err
	}
	cj := configJSON{
		Key:               c.KeyHex(),
		StrictMode:        c.StrictMode,
		AutoTruncate:      c.AutoTruncate,
		MaxPasswordLength: c.MaxPasswordLength,
	}
	js, err := json.MarshalIndent(cj, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, append(js, '\n'), 0600)
}
