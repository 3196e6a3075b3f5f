package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/screa/pair-salt-miner/internal/crypto"
)

const (
	// DefaultWorkers is the number of search goroutines unless overridden.
	DefaultWorkers = 4

	// DefaultLogInterval is the progress logging period in seconds.
	DefaultLogInterval = 5
)

// Errors
var (
	ErrInvalidFingerprint = errors.New("invalid init code hash")
	ErrInvalidBitCount    = errors.New("invalid leading zero bit count")
	ErrInvalidWorkers     = errors.New("--workers must not be negative")
	ErrInvalidLogInterval = errors.New("--log-interval must be positive")
)

// Config holds the application configuration
type Config struct {
	Workers     int
	Verbose     bool
	LogFile     string
	LogInterval int // Logging interval in seconds

	// Set by ParseArgs.
	TokenInitCodeHash common.Hash
	LeadingZeroBits   int
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Workers:     DefaultWorkers,
		LogInterval: DefaultLogInterval,
	}
}

// ParseArgs decodes the positional <init-code-hash> <leading-zero-bits> arguments.
func (c *Config) ParseArgs(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", len(args))
	}

	hash, err := ParseFingerprint(args[0])
	if err != nil {
		return err
	}
	bits, err := ParseLeadingZeroBits(args[1])
	if err != nil {
		return err
	}

	c.TokenInitCodeHash = hash
	c.LeadingZeroBits = bits
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return ErrInvalidWorkers
	}
	if c.LogInterval <= 0 {
		return ErrInvalidLogInterval
	}
	return nil
}

// Unreachable reports whether the requested bit count can never be met.
func (c *Config) Unreachable() bool {
	return c.LeadingZeroBits > crypto.AddressBits
}

// ParseFingerprint decodes a 32-byte hex value, with or without 0x prefix.
func ParseFingerprint(s string) (common.Hash, error) {
	h := strings.TrimSpace(s)
	if len(h) >= 2 && (h[0:2] == "0x" || h[0:2] == "0X") {
		h = h[2:]
	}

	b, err := hex.DecodeString(h)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %w", ErrInvalidFingerprint, err)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidFingerprint, len(b), common.HashLength)
	}
	return common.BytesToHash(b), nil
}

// ParseLeadingZeroBits parses a non-negative bit count. Counts above
// math.MaxInt are clamped; anything past 160 can never match anyway.
func ParseLeadingZeroBits(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBitCount, err)
	}
	if n > math.MaxInt {
		return math.MaxInt, nil
	}
	return int(n), nil
}
