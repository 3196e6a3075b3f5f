package crypto

import (
	"hash"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

const (
	// Deterministic deployment proxy that deploys the token.
	DeployerAddress = "0x4e59b44847b379578588920cA78FbF26c0B4956C"

	// Uniswap V2 factory that deploys the pair.
	UniswapFactoryAddress = "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f"

	// WETH, the other side of every pair we mine for.
	WETHAddress = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"

	// keccak256 of the Uniswap V2 pair init code.
	PairInitCodeHash = "0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f"

	// CREATE2 input layout: 0xff (1) + origin (20) + salt (32) + initcodeHash (32) = 85
	Create2PrefixLen = 1 + common.AddressLength
	Create2SaltLen   = 32
	Create2SuffixLen = 32
	Create2InputLen  = Create2PrefixLen + Create2SaltLen + Create2SuffixLen
)

var (
	Deployer        = common.HexToAddress(DeployerAddress)
	UniswapFactory  = common.HexToAddress(UniswapFactoryAddress)
	WETH            = common.HexToAddress(WETHAddress)
	PairFingerprint = common.HexToHash(PairInitCodeHash)
)

// Deriver computes CREATE2 addresses for a single origin.
// The 0xff + origin prefix is primed once and the hasher and buffers are
// reused between calls, so a Deriver must not be shared between goroutines.
type Deriver struct {
	hasher hash.Hash
	input  [Create2InputLen]byte
	sum    [32]byte
}

// NewDeriver returns a Deriver primed for origin.
func NewDeriver(origin common.Address) *Deriver {
	d := &Deriver{hasher: sha3.NewLegacyKeccak256()}
	d.input[0] = 0xff
	copy(d.input[1:Create2PrefixLen], origin[:])
	return d
}

// Origin returns the address the Deriver was primed with.
func (d *Deriver) Origin() common.Address {
	return common.BytesToAddress(d.input[1:Create2PrefixLen])
}

// Derive returns keccak256(0xff ++ origin ++ salt ++ codeHash)[12:].
func (d *Deriver) Derive(salt, codeHash [32]byte) common.Address {
	copy(d.input[Create2PrefixLen:], salt[:])
	copy(d.input[Create2PrefixLen+Create2SaltLen:], codeHash[:])

	d.hasher.Reset()
	d.hasher.Write(d.input[:])
	sum := d.hasher.Sum(d.sum[:0])

	var addr common.Address
	copy(addr[:], sum[12:32])
	return addr
}

// Create2Address is the one-shot form of Deriver.Derive.
func Create2Address(origin common.Address, salt, codeHash [32]byte) common.Address {
	return NewDeriver(origin).Derive(salt, codeHash)
}

// Keccak256 calculates the keccak256 hash of the concatenated inputs.
func Keccak256(data ...[]byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		_, _ = h.Write(b)
	}
	var out common.Hash
	h.Sum(out[:0])
	return out
}

// ChecksumAddress converts an address to its EIP-55 checksummed string.
// Only call when you need the string (e.g. for result output).
func ChecksumAddress(addr common.Address) string {
	return addr.Hex()
}
