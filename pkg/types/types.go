package types

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Result represents a mining result
type Result struct {
	Salt            Salt
	TokenAddress    common.Address
	PairAddress     common.Address
	LeadingZeroBits int // required bit count the pair address satisfies
	Attempts        uint64
	Duration        time.Duration
}

// Rate returns hashes per second, or 0 before any time has elapsed.
func (r *Result) Rate() float64 {
	if r.Duration.Seconds() <= 0 {
		return 0
	}
	return float64(r.Attempts) / r.Duration.Seconds()
}

// WorkerConfig describes one worker's slice of the search space.
// It is immutable once the worker starts.
type WorkerConfig struct {
	Deployer          common.Address
	TokenInitCodeHash common.Hash
	LeadingZeroBits   int
	Workers           int // stride between consecutive salts
	Index             int // first salt word, 0 <= Index < Workers
}

// WorkerResult represents a local match from a single worker
type WorkerResult struct {
	Salt         Salt
	TokenAddress common.Address
	PairAddress  common.Address
	Index        int
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // Total number of candidates checked
	HashRate    float64 // Candidates per second
	ElapsedSecs float64 // Time elapsed since start
	BestBits    int     // Most leading zero bits seen, -1 if not tracked
}
