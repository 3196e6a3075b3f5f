package miner

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/screa/pair-salt-miner/internal/config"
	"github.com/screa/pair-salt-miner/internal/crypto"
	"github.com/screa/pair-salt-miner/internal/logger"
	"github.com/screa/pair-salt-miner/pkg/types"
	"github.com/screa/pair-salt-miner/pkg/worker"
)

// Miner runs a partitioned salt search: worker i checks salt words
// i, i+W, i+2W, ... until some worker finds a pair address with enough
// leading zero bits.
type Miner struct {
	config *config.Config
	logger *logger.Logger

	attempts atomic.Uint64
	best     atomic.Int64
	found    atomic.Bool // flipped false->true once, by the winner
	started  atomic.Bool
	start    atomic.Int64 // UnixNano of the current run

	mu     sync.Mutex
	result *types.Result
	wg     sync.WaitGroup
}

// NewMiner creates a new miner instance. Workers <= 0 means one per CPU.
func NewMiner(cfg *config.Config, log *logger.Logger) *Miner {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	m := &Miner{
		config: cfg,
		logger: log,
	}
	m.best.Store(-1)
	m.start.Store(time.Now().UnixNano())
	return m
}

// Mine starts the workers and blocks until all of them have exited.
// It returns nil only if every worker stopped without a match, which the
// search loop never does on its own. A Miner searches once: later calls
// return the first run's result without searching again.
func (m *Miner) Mine() *types.Result {
	if !m.started.CompareAndSwap(false, true) {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.result
	}
	m.start.Store(time.Now().UnixNano())

	for i := 0; i < m.config.Workers; i++ {
		m.wg.Add(1)
		go m.worker(i)
	}

	// Start periodic logging if verbose mode is enabled
	var logTicker *time.Ticker
	var logDone chan struct{}
	if m.config.Verbose {
		seconds := m.config.LogInterval
		if seconds <= 0 {
			seconds = config.DefaultLogInterval
		}
		interval := time.Duration(seconds) * time.Second
		logTicker = time.NewTicker(interval)
		logDone = make(chan struct{})
		go m.periodicLogger(logTicker, logDone)

		m.logger.Printf("Mining started with %d workers, logging every %d seconds...",
			m.config.Workers, seconds)
	}

	m.wg.Wait()

	if logTicker != nil {
		logTicker.Stop()
		close(logDone)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.result != nil {
		m.result.Attempts = m.attempts.Load()
		m.result.Duration = m.elapsed()
	}
	return m.result
}

// worker runs the search over one partition and records a match if it is
// the first to raise the found flag.
func (m *Miner) worker(index int) {
	defer m.wg.Done()

	var best *atomic.Int64
	if m.config.Verbose {
		best = &m.best
	}
	w := worker.NewWorker(&types.WorkerConfig{
		Deployer:          crypto.Deployer,
		TokenInitCodeHash: m.config.TokenInitCodeHash,
		LeadingZeroBits:   m.config.LeadingZeroBits,
		Workers:           m.config.Workers,
		Index:             index,
	}, &m.attempts, best)

	res := w.Run(&m.found)
	if res == nil {
		return
	}
	// Losing the race still ends this worker.
	if !m.found.CompareAndSwap(false, true) {
		return
	}

	m.mu.Lock()
	m.result = &types.Result{
		Salt:            res.Salt,
		TokenAddress:    res.TokenAddress,
		PairAddress:     res.PairAddress,
		LeadingZeroBits: m.config.LeadingZeroBits,
	}
	m.mu.Unlock()

	if m.config.Verbose {
		m.logger.Debugf("worker %d won with salt %s", index, res.Salt)
	}
}

func (m *Miner) elapsed() time.Duration {
	return time.Since(time.Unix(0, m.start.Load()))
}

// Stats returns the current performance statistics.
// This method is safe to call concurrently from any goroutine, including
// while Mine is running.
func (m *Miner) Stats() types.Stats {
	attempts := m.attempts.Load()
	elapsed := m.elapsed().Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return types.Stats{
		Attempts:    attempts,
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
		BestBits:    int(m.best.Load()),
	}
}

// periodicLogger logs mining progress at regular intervals
func (m *Miner) periodicLogger(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			stats := m.Stats()
			if stats.BestBits >= 0 {
				m.logger.Printf("Progress: %d attempts, %.2f hashes/sec, Best so far: %d/%d bits",
					stats.Attempts, stats.HashRate, stats.BestBits, m.config.LeadingZeroBits)
			} else {
				m.logger.Printf("Progress: %d attempts, %.2f hashes/sec, No candidate yet",
					stats.Attempts, stats.HashRate)
			}
		case <-done:
			return
		}
	}
}
