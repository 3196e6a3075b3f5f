package crypto

import (
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

func TestCreate2AddressEIP1014(t *testing.T) {
	// EIP-1014 example 0.
	codeHash := Keccak256([]byte{0x00})
	got := Create2Address(common.Address{}, [32]byte{}, codeHash)
	want := common.HexToAddress("0x4D1A2e2bB4F88F0250f26Ffff098B0b30B26BF38")
	if got != want {
		t.Errorf("Create2Address() = %s, want %s", got.Hex(), want.Hex())
	}
}

func TestDeriverMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	codeHash := ethcrypto.Keccak256Hash([]byte("token init code"))
	d := NewDeriver(Deployer)

	for i := 0; i < 64; i++ {
		var salt [32]byte
		rng.Read(salt[:])
		got := d.Derive(salt, codeHash)
		want := ethcrypto.CreateAddress2(Deployer, salt, codeHash[:])
		if got != want {
			t.Fatalf("salt %x: Derive() = %s, want %s", salt, got.Hex(), want.Hex())
		}
	}
}

func TestDeriverDeterministic(t *testing.T) {
	salt := [32]byte{31: 0x2a}
	codeHash := Keccak256([]byte("x"))

	a := NewDeriver(Deployer).Derive(salt, codeHash)
	b := NewDeriver(Deployer).Derive(salt, codeHash)
	c := Create2Address(Deployer, salt, codeHash)
	if a != b || a != c {
		t.Errorf("derivations differ: %s %s %s", a.Hex(), b.Hex(), c.Hex())
	}
}

func TestDeriverOrigin(t *testing.T) {
	if got := NewDeriver(UniswapFactory).Origin(); got != UniswapFactory {
		t.Errorf("Origin() = %s, want %s", got.Hex(), UniswapFactory.Hex())
	}
}

func TestDeriverAvalanche(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	codeHash := Keccak256([]byte("avalanche"))
	d := NewDeriver(Deployer)

	for i := 0; i < 256; i++ {
		var salt [32]byte
		rng.Read(salt[:])
		base := d.Derive(salt, codeHash)

		pos := rng.Intn(len(salt))
		flipped := salt
		flipped[pos] ^= byte(rng.Intn(255) + 1)
		if d.Derive(flipped, codeHash) == base {
			t.Fatalf("changing salt byte %d did not change the address", pos)
		}
	}
}

func TestKeccak256(t *testing.T) {
	a, b := []byte("hello "), []byte("world")
	got := Keccak256(a, b)
	want := ethcrypto.Keccak256Hash([]byte("hello world"))
	if got != want {
		t.Errorf("Keccak256() = %s, want %s", got.Hex(), want.Hex())
	}
}

func TestChecksumAddress(t *testing.T) {
	const want = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	if got := ChecksumAddress(WETH); got != want {
		t.Errorf("ChecksumAddress() = %s, want %s", got, want)
	}
}
