package worker

import (
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"

	"github.com/screa/pair-salt-miner/internal/crypto"
	"github.com/screa/pair-salt-miner/pkg/types"
)

// FlushInterval is how many candidates a worker checks between updates of
// the shared attempt counter.
const FlushInterval = 1 << 12

// Worker scans one partition of the salt space: salts whose counter word
// starts at config.Index and steps by config.Workers.
type Worker struct {
	config   *types.WorkerConfig
	attempts *atomic.Uint64
	best     *atomic.Int64 // nil disables best-so-far tracking

	deriver *crypto.PairDeriver
	salt    types.Salt
	stride  uint64
	pending uint64
	local   int // best bit count seen by this worker
}

// NewWorker creates a new worker positioned at the first salt of its partition.
// attempts and best are shared between workers; best may be nil.
func NewWorker(config *types.WorkerConfig, attempts *atomic.Uint64, best *atomic.Int64) *Worker {
	return &Worker{
		config:   config,
		attempts: attempts,
		best:     best,
		deriver:  crypto.NewPairDeriver(config.Deployer, config.TokenInitCodeHash),
		salt:     types.NewSalt(uint64(config.Index)),
		stride:   uint64(config.Workers),
		local:    -1,
	}
}

// Salt returns the salt the worker will check next.
func (w *Worker) Salt() types.Salt {
	return w.salt
}

// Check derives the token and pair addresses for the current salt and
// reports whether the pair address has the required leading zero bits.
func (w *Worker) Check() (token, pair common.Address, ok bool) {
	token, pair = w.deriver.Derive(w.salt)

	w.pending++
	if w.pending == FlushInterval {
		w.flush()
	}
	if w.best != nil {
		w.track(pair)
	}
	return token, pair, crypto.HasLeadingZeroBits(pair, w.config.LeadingZeroBits)
}

// Next moves to the following salt of the partition.
func (w *Worker) Next() {
	w.salt.Advance(w.stride)
}

// Run checks salts until one matches or stop is observed. The flag is only
// read before each candidate, so a candidate in flight is always finished.
// Returns nil if stopped without a local match.
func (w *Worker) Run(stop *atomic.Bool) *types.WorkerResult {
	defer w.flush()

	for !stop.Load() {
		token, pair, ok := w.Check()
		if ok {
			return &types.WorkerResult{
				Salt:         w.salt,
				TokenAddress: token,
				PairAddress:  pair,
				Index:        w.config.Index,
			}
		}
		w.Next()
	}
	return nil
}

func (w *Worker) flush() {
	if w.pending == 0 {
		return
	}
	w.attempts.Add(w.pending)
	w.pending = 0
}

// track publishes a new personal best to the shared maximum. Improvements
// are rare, so the CAS loop stays off the hot path.
func (w *Worker) track(pair common.Address) {
	bits := crypto.LeadingZeroBits(pair)
	if bits <= w.local {
		return
	}
	w.local = bits
	for {
		cur := w.best.Load()
		if int64(bits) <= cur || w.best.CompareAndSwap(cur, int64(bits)) {
			return
		}
	}
}
