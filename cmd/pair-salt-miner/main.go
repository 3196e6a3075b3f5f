package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/screa/pair-salt-miner/internal/config"
	"github.com/screa/pair-salt-miner/internal/crypto"
	logpkg "github.com/screa/pair-salt-miner/internal/logger"
	minerpkg "github.com/screa/pair-salt-miner/pkg/miner"
	"github.com/screa/pair-salt-miner/pkg/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "pair-salt-miner <token_initcode_hash> <leading_zero_bits>",
		Short: "Mine a CREATE2 salt whose Uniswap V2 WETH pair has leading zero bits",
		Long: `Searches for a salt such that the token deployed through the deterministic
deployment proxy with that salt gets a Uniswap V2 WETH pair address starting
with the requested number of zero bits.`,
		Example:       "  pair-salt-miner 0x8f5e...(32-byte hex) 16",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ParseArgs(args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return runMiner(cfg, cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().IntVarP(&cfg.Workers, "workers", "w", config.DefaultWorkers, "Number of worker goroutines (0 = one per CPU)")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().StringVarP(&cfg.LogFile, "log-file", "l", "", "Log file for progress tracking (default: stdout)")
	rootCmd.Flags().IntVarP(&cfg.LogInterval, "log-interval", "i", config.DefaultLogInterval, "Logging interval in seconds")

	return rootCmd
}

func runMiner(cfg *config.Config, out io.Writer) error {
	logger, closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	miner := minerpkg.NewMiner(cfg, logger)

	logger.Printf("Starting pair salt miner with %d workers...", cfg.Workers)
	logger.Printf("Deployer: %s", crypto.ChecksumAddress(crypto.Deployer))
	logger.Printf("Token init code hash: %s", cfg.TokenInitCodeHash.Hex())
	logger.Printf("Target: %d leading zero bits (%s)", cfg.LeadingZeroBits, crypto.DifficultyString(cfg.LeadingZeroBits))
	if cfg.Unreachable() {
		logger.Warnf("%d bits exceeds the %d-bit address width; the search will never finish",
			cfg.LeadingZeroBits, crypto.AddressBits)
	}

	printResult(out, cfg, miner.Mine())
	return nil
}

func setupLogging(cfg *config.Config) (*logpkg.Logger, func(), error) {
	if cfg.LogFile == "" {
		logger := logpkg.New()
		return logger, func() { _ = logger.Sync() }, nil
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := logpkg.NewWriter(file)
	return logger, func() {
		_ = logger.Sync()
		_ = file.Close()
	}, nil
}

func printResult(out io.Writer, cfg *config.Config, result *types.Result) {
	if result == nil {
		fmt.Fprintln(out, "No salt found (the search stopped without a match).")
		return
	}

	fmt.Fprintln(out, "\nSuccess!")
	fmt.Fprintf(out, "Required leading zero bits: %d\n", cfg.LeadingZeroBits)
	fmt.Fprintf(out, "Salt (hex):    %s\n", result.Salt.Hex())
	fmt.Fprintf(out, "Token Address: %s\n", crypto.ChecksumAddress(result.TokenAddress))
	fmt.Fprintf(out, "Pair Address:  %s\n", crypto.ChecksumAddress(result.PairAddress))
	fmt.Fprintf(out, "Attempts:      %d\n", result.Attempts)
	fmt.Fprintf(out, "Duration:      %v\n", result.Duration)
	fmt.Fprintf(out, "Rate:          %.2f hashes/sec\n", result.Rate())
}
