package crypto

import (
	"bytes"
	"errors"
	"hash"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// ErrIdenticalAddresses is raised when a token address collides with WETH.
// A pair of a token with itself cannot exist.
var ErrIdenticalAddresses = errors.New("pair tokens must be distinct")

// SortTokens returns a and b ordered by byte value, lower first.
func SortTokens(a, b common.Address) (common.Address, common.Address) {
	switch bytes.Compare(a[:], b[:]) {
	case -1:
		return a, b
	case 1:
		return b, a
	}
	panic(ErrIdenticalAddresses)
}

// PairSalt returns keccak256(token0 ++ token1) for the sorted pair.
func PairSalt(a, b common.Address) common.Hash {
	token0, token1 := SortTokens(a, b)
	return Keccak256(token0[:], token1[:])
}

// PairAddress computes the Uniswap V2 pair address of token against WETH.
func PairAddress(token common.Address) common.Address {
	return Create2Address(UniswapFactory, PairSalt(token, WETH), PairFingerprint)
}

// TokenAddress computes the address the deployer assigns to salt.
func TokenAddress(salt, tokenCodeHash [32]byte) common.Address {
	return Create2Address(Deployer, salt, tokenCodeHash)
}

// PairDeriver chains the token and pair derivations for one search worker.
// Like Deriver it owns its buffers and is not safe for concurrent use.
type PairDeriver struct {
	token         *Deriver
	pair          *Deriver
	tokenCodeHash [32]byte
	pairCodeHash  [32]byte
	other         common.Address

	hasher    hash.Hash
	pairInput [2 * common.AddressLength]byte
	pairSalt  [32]byte
}

// NewPairDeriver returns a PairDeriver deriving tokens from deployer and
// tokenCodeHash, paired with WETH on the canonical Uniswap V2 factory.
func NewPairDeriver(deployer common.Address, tokenCodeHash common.Hash) *PairDeriver {
	return &PairDeriver{
		token:         NewDeriver(deployer),
		pair:          NewDeriver(UniswapFactory),
		tokenCodeHash: tokenCodeHash,
		pairCodeHash:  PairFingerprint,
		other:         WETH,
		hasher:        sha3.NewLegacyKeccak256(),
	}
}

// Derive returns the token address for salt and the pair address of that
// token against WETH.
func (p *PairDeriver) Derive(salt [32]byte) (token, pair common.Address) {
	token = p.token.Derive(salt, p.tokenCodeHash)

	token0, token1 := SortTokens(token, p.other)
	copy(p.pairInput[:common.AddressLength], token0[:])
	copy(p.pairInput[common.AddressLength:], token1[:])

	p.hasher.Reset()
	p.hasher.Write(p.pairInput[:])
	p.hasher.Sum(p.pairSalt[:0])

	pair = p.pair.Derive(p.pairSalt, p.pairCodeHash)
	return token, pair
}
