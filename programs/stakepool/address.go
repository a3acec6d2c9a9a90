// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"github.com/liquidstake/pool/cache"
	"github.com/liquidstake/pool/solana"
)

// seeds of the program derived addresses of a pool.
const (
	MintAuthoritySeed  = "mint_authority"
	ReserveAccountSeed = "reserve_account"
)

// DerivedAddress is a program derived address with its bump.
type DerivedAddress struct {
	Address solana.Pubkey
	Bump    uint8
}

// DeriveAddress computes the address the program controls for pool under seed.
func DeriveAddress(programID, pool solana.Pubkey, seed string) (DerivedAddress, error) {
	addr, bump, err := solana.FindProgramAddress([][]byte{pool.Bytes(), []byte(seed)}, programID)
	if err != nil {
		return DerivedAddress{}, err
	}
	return DerivedAddress{Address: addr, Bump: bump}, nil
}

type derivationKey struct {
	pool solana.Pubkey
	seed string
}

// AddressDeriver memoizes derived addresses of one program.
type AddressDeriver struct {
	programID solana.Pubkey
	cache     *cache.LRU[derivationKey, DerivedAddress]
}

// NewAddressDeriver creates a deriver remembering up to cacheSize addresses.
func NewAddressDeriver(programID solana.Pubkey, cacheSize int) (*AddressDeriver, error) {
	c, err := cache.NewLRU[derivationKey, DerivedAddress](cacheSize)
	if err != nil {
		return nil, err
	}
	return &AddressDeriver{programID: programID, cache: c}, nil
}

func (d *AddressDeriver) Derive(pool solana.Pubkey, seed string) (DerivedAddress, error) {
	return d.cache.GetOrLoad(derivationKey{pool, seed}, func(k derivationKey) (DerivedAddress, error) {
		return DeriveAddress(d.programID, k.pool, k.seed)
	})
}

// MintAuthority returns the address allowed to mint the pool token.
func (d *AddressDeriver) MintAuthority(pool solana.Pubkey) (DerivedAddress, error) {
	return d.Derive(pool, MintAuthoritySeed)
}

// Reserve returns the address holding deposited base asset.
func (d *AddressDeriver) Reserve(pool solana.Pubkey) (DerivedAddress, error) {
	return d.Derive(pool, ReserveAccountSeed)
}

// signerSeeds returns the seeds signing for the derived address of seed.
func (d *AddressDeriver) signerSeeds(pool solana.Pubkey, seed string) ([][]byte, error) {
	derived, err := d.Derive(pool, seed)
	if err != nil {
		return nil, err
	}
	return [][]byte{pool.Bytes(), []byte(seed), {derived.Bump}}, nil
}
