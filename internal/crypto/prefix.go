package crypto

import (
	"math/bits"

	"github.com/ethereum/go-ethereum/common"
)

// AddressBits is the width of an address viewed as a big-endian integer.
const AddressBits = common.AddressLength * 8

// LeadingZeroBits counts the zero bits before the first set bit of addr,
// reading it as a 160-bit big-endian integer. The zero address yields 160.
func LeadingZeroBits(addr common.Address) int {
	for i, b := range addr {
		if b != 0 {
			return i*8 + bits.LeadingZeros8(b)
		}
	}
	return AddressBits
}

// HasLeadingZeroBits reports whether the top k bits of addr are zero.
// k = 0 always matches; k > 160 never does.
func HasLeadingZeroBits(addr common.Address, k int) bool {
	if k <= 0 {
		return true
	}
	if k > AddressBits {
		return false
	}

	full, rem := k/8, k%8
	for _, b := range addr[:full] {
		if b != 0 {
			return false
		}
	}
	if rem == 0 {
		return true
	}
	return addr[full]>>(8-rem) == 0
}
