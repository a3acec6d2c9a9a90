// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liquidstake/pool/solana"
)

func TestDeriveAddress(t *testing.T) {
	pool := pk(1)
	mintAuthority, err := DeriveAddress(DefaultProgramID, pool, MintAuthoritySeed)
	require.NoError(t, err)
	reserve, err := DeriveAddress(DefaultProgramID, pool, ReserveAccountSeed)
	require.NoError(t, err)

	assert.NotEqual(t, mintAuthority.Address, reserve.Address)
	assert.False(t, solana.IsOnCurve(mintAuthority.Address.Bytes()))
	assert.False(t, solana.IsOnCurve(reserve.Address.Bytes()))

	again, err := DeriveAddress(DefaultProgramID, pool, MintAuthoritySeed)
	require.NoError(t, err)
	assert.Equal(t, mintAuthority, again)

	other, err := DeriveAddress(DefaultProgramID, pk(2), MintAuthoritySeed)
	require.NoError(t, err)
	assert.NotEqual(t, mintAuthority.Address, other.Address)

	// the bump recreates the address
	addr, err := solana.CreateProgramAddress(
		[][]byte{pool.Bytes(), []byte(MintAuthoritySeed), {mintAuthority.Bump}}, DefaultProgramID)
	require.NoError(t, err)
	assert.Equal(t, mintAuthority.Address, addr)
}

func TestAddressDeriverCaches(t *testing.T) {
	d, err := NewAddressDeriver(DefaultProgramID, 2)
	require.NoError(t, err)

	first, err := d.Reserve(pk(1))
	require.NoError(t, err)
	second, err := d.Reserve(pk(1))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	hit, miss := d.cache.Stats()
	assert.Equal(t, int64(1), hit)
	assert.Equal(t, int64(1), miss)

	want, err := DeriveAddress(DefaultProgramID, pk(1), ReserveAccountSeed)
	require.NoError(t, err)
	assert.Equal(t, want, first)

	seeds, err := d.signerSeeds(pk(1), ReserveAccountSeed)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{pk(1).Bytes(), []byte(ReserveAccountSeed), {first.Bump}}, seeds)

	_, err = NewAddressDeriver(DefaultProgramID, 0)
	assert.Error(t, err)
}
