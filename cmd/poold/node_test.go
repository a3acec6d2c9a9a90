// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liquidstake/pool/kv"
	"github.com/liquidstake/pool/lvldb"
	"github.com/liquidstake/pool/programs/stakepool"
	"github.com/liquidstake/pool/programs/system"
	"github.com/liquidstake/pool/programs/token"
	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

const testConfig = `
airdrops:
  manager: 1000000000000
  alice: 10000000000
  bob: 10000000000
pool:
  fee-policy: {treasury: 5, validation: 3, developer: 2, appreciation: 90}
  max-validators: 4
  max-maintainers: 4
  validators:
    - name: validator-1
      commission: 5
  maintainers: [maintainer-1]
deposits:
  - {from: alice, amount: 1000000000}
  - {from: alice, amount: 500000000}
  - {from: bob, amount: 2000000000}
`

func newTestNode(t *testing.T, store kv.Store, epoch uint64) *poolNode {
	cfg, err := parseConfig([]byte(testConfig))
	require.NoError(t, err)
	cfg.Epoch = epoch

	node, err := newPoolNode(store, cfg)
	require.NoError(t, err)
	return node
}

func tokenBalance(t *testing.T, node *poolNode, account solana.Pubkey) uint64 {
	acc, err := node.rt.Account(account)
	require.NoError(t, err)
	ta, err := token.DecodeAccount(acc.Data)
	require.NoError(t, err)
	return ta.Amount
}

func TestPoolNode(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	node := newTestNode(t, db, 0)
	require.NoError(t, node.bootstrap())
	require.NoError(t, node.runDeposits(context.Background()))

	pool, err := node.state()
	require.NoError(t, err)
	assert.Equal(t, node.manager, pool.Manager)
	assert.Equal(t, node.mint, pool.StTokenMint)
	assert.Equal(t, uint64(3_500_000_000), pool.Metrics.TotalDeposited)
	assert.Equal(t, uint64(3), pool.Metrics.DepositAmount.Count)

	require.Equal(t, 1, pool.Validators.Len())
	v := pool.Validators.Entries[0]
	assert.Equal(t, keyOf("validator-1/vote"), v.Pubkey)
	assert.Equal(t, keyOf("validator-1/fee"), v.Entry.FeeAddress)
	assert.True(t, v.Entry.Active)
	assert.True(t, pool.Maintainers.Contains(keyOf("maintainer-1")))

	// no snapshot yet, deposits mint one to one
	assert.Equal(t, uint64(1_500_000_000), tokenBalance(t, node, node.stTokenAccount("alice")))
	assert.Equal(t, uint64(2_000_000_000), tokenBalance(t, node, node.stTokenAccount("bob")))

	reserve, err := node.rt.Account(node.reserve)
	require.NoError(t, err)
	assert.Equal(t, node.rt.Rent().MinimumBalance(0)+3_500_000_000, reserve.Lamports)
}

func TestPoolNodeBootstrapOnce(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	node := newTestNode(t, db, 0)
	require.NoError(t, node.bootstrap())
	require.NoError(t, node.bootstrap())

	pool, err := node.state()
	require.NoError(t, err)
	assert.Equal(t, 1, pool.Validators.Len())

	_, err = node.rt.Execute(runtime.NewTransaction([]solana.Pubkey{node.manager, node.key},
		stakepool.Initialize(node.program.ID(), stakepool.InitializeAccounts{
			Pool:      node.key,
			Manager:   node.manager,
			Mint:      node.mint,
			Treasury:  node.treasury,
			Developer: node.developer,
			Reserve:   node.reserve,
		}, pool.FeePolicy, 4, 4),
	))
	assert.ErrorIs(t, err, system.ErrAccountAlreadyInUse)
}

func TestPoolNodeReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := openLedgerDB(dir)
	require.NoError(t, err)
	node := newTestNode(t, db, 0)
	require.NoError(t, node.bootstrap())
	require.NoError(t, node.runDeposits(context.Background()))
	require.NoError(t, db.Close())

	db, err = openLedgerDB(dir)
	require.NoError(t, err)
	defer db.Close()

	node = newTestNode(t, db, 2)
	require.NoError(t, node.bootstrap())

	pool, err := node.state()
	require.NoError(t, err)
	assert.Equal(t, uint64(3_500_000_000), pool.Metrics.TotalDeposited)
	assert.Equal(t, stakepool.ExchangeRate{
		ComputedInEpoch: 2,
		StTokenSupply:   3_500_000_000,
		BaseBalance:     3_500_000_000,
	}, pool.ExchangeRate)

	// the recipient accounts exist, only the deposits run again
	require.NoError(t, node.runDeposits(context.Background()))
	pool, err = node.state()
	require.NoError(t, err)
	assert.Equal(t, uint64(7_000_000_000), pool.Metrics.TotalDeposited)
	assert.Equal(t, uint64(3_000_000_000), tokenBalance(t, node, node.stTokenAccount("alice")))
}

func TestRunDepositsCancelled(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	node := newTestNode(t, db, 0)
	require.NoError(t, node.bootstrap())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, node.runDeposits(ctx), context.Canceled)

	pool, err := node.state()
	require.NoError(t, err)
	assert.Zero(t, pool.Metrics.TotalDeposited)
}

func TestPrintPool(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	node := newTestNode(t, db, 0)
	require.NoError(t, node.bootstrap())
	pool, err := node.state()
	require.NoError(t, err)

	var summary bytes.Buffer
	printPool(&summary, node.key, pool, false)
	assert.Contains(t, summary.String(), "Pool          "+node.key.String())
	assert.Contains(t, summary.String(), "Validators    1/4")
	assert.Contains(t, summary.String(), "Maintainers   1/4")

	var dump bytes.Buffer
	printPool(&dump, node.key, pool, true)
	assert.Contains(t, dump.String(), "TotalDeposited")
	assert.Contains(t, dump.String(), "AppreciationShare: (uint32) 90")
}
