package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/screa/pair-salt-miner/internal/config"
)

const zeroHash = "0x0000000000000000000000000000000000000000000000000000000000000000"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmdFindsSalt(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "miner.log")
	out, _, err := execute(t, zeroHash, "0", "--workers", "1", "--log-file", logFile)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Success!",
		"Required leading zero bits: 0",
		"Salt (hex):    " + zeroHash,
		"Token Address: 0x",
		"Pair Address:  0x",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	log, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(log), "Starting pair salt miner with 1 workers") {
		t.Errorf("log file missing start line:\n%s", log)
	}
}

func TestRootCmdArgCount(t *testing.T) {
	tests := [][]string{
		{},
		{zeroHash},
		{zeroHash, "1", "extra"},
	}
	for _, args := range tests {
		stdout, stderr, err := execute(t, args...)
		if err == nil {
			t.Errorf("args %q: expected error", args)
		} else if !strings.Contains(stdout+stderr, "Usage:") {
			t.Errorf("args %q: usage not printed", args)
		}
	}
}

func TestRootCmdRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"31-byte hash", []string{zeroHash[:64], "4"}, config.ErrInvalidFingerprint},
		{"non-hex hash", []string{"0x" + strings.Repeat("g", 64), "4"}, config.ErrInvalidFingerprint},
		{"bad bits", []string{zeroHash, "four"}, config.ErrInvalidBitCount},
		{"negative bits", []string{"--", zeroHash, "-4"}, config.ErrInvalidBitCount},
		{"negative workers", []string{zeroHash, "4", "--workers", "-2"}, config.ErrInvalidWorkers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Execute() error = %v, want %v", err, tt.want)
			}
			if strings.Contains(out, "Success!") {
				t.Errorf("search ran despite invalid input: %q", out)
			}
		})
	}
}
