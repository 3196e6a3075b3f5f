package crypto

import "github.com/holiman/uint256"

// ExpectedAttempts returns 2^k, the mean number of candidates needed to hit
// k leading zero bits. Returns nil when k exceeds the address width, since
// no candidate can ever match.
func ExpectedAttempts(k int) *uint256.Int {
	if k < 0 {
		k = 0
	}
	if k > AddressBits {
		return nil
	}
	return new(uint256.Int).Lsh(uint256.NewInt(1), uint(k))
}

// DifficultyString formats ExpectedAttempts for logging.
func DifficultyString(k int) string {
	n := ExpectedAttempts(k)
	if n == nil {
		return "unreachable"
	}
	return "1/" + n.Dec()
}
