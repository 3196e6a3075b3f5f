package types

import (
	"encoding/binary"
	"encoding/hex"
)

// SaltWordOffset is where the counter word starts inside a salt.
const SaltWordOffset = 32 - 8

// Salt is a CREATE2 salt. Its trailing 8 bytes hold a big-endian uint64
// counter that workers step through; the leading 24 bytes never change.
type Salt [32]byte

// NewSalt returns the all-zero salt with its counter word set to word.
func NewSalt(word uint64) Salt {
	var s Salt
	s.SetWord(word)
	return s
}

// Word returns the counter word.
func (s *Salt) Word() uint64 {
	return binary.BigEndian.Uint64(s[SaltWordOffset:])
}

// SetWord overwrites the counter word.
func (s *Salt) SetWord(word uint64) {
	binary.BigEndian.PutUint64(s[SaltWordOffset:], word)
}

// Advance adds stride to the counter word, wrapping modulo 2^64.
// The carry never reaches the leading 24 bytes.
func (s *Salt) Advance(stride uint64) {
	s.SetWord(s.Word() + stride)
}

// Hex returns the 0x-prefixed hex encoding of the salt.
func (s Salt) Hex() string {
	return "0x" + hex.EncodeToString(s[:])
}

// String implements fmt.Stringer.
func (s Salt) String() string {
	return s.Hex()
}
