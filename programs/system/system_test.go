// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liquidstake/pool/ledger"
	"github.com/liquidstake/pool/lvldb"
	"github.com/liquidstake/pool/programs/system"
	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

func newTestRuntime(t *testing.T) *runtime.Runtime {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return runtime.New(ledger.New(db), solana.DefaultRent(), system.New())
}

func key(name string) solana.Pubkey {
	return solana.BytesToPubkey([]byte(name))
}

func TestTransfer(t *testing.T) {
	rt := newTestRuntime(t)
	alice, bob := key("alice"), key("bob")
	require.NoError(t, rt.Airdrop(alice, 1000))

	_, err := rt.Execute(runtime.NewTransaction([]solana.Pubkey{alice}, system.Transfer(alice, bob, 400)))
	require.NoError(t, err)

	a, _ := rt.Account(alice)
	b, _ := rt.Account(bob)
	assert.Equal(t, uint64(600), a.Lamports)
	assert.Equal(t, uint64(400), b.Lamports)

	_, err = rt.Execute(runtime.NewTransaction([]solana.Pubkey{alice}, system.Transfer(alice, bob, 601)))
	assert.ErrorIs(t, err, system.ErrResultWithNegativeLamports)

	// bob did not sign
	_, err = rt.Execute(runtime.NewTransaction(nil, system.Transfer(bob, alice, 1)))
	assert.ErrorIs(t, err, runtime.ErrMissingRequiredSignature)
}

func TestCreateAccount(t *testing.T) {
	rt := newTestRuntime(t)
	payer, fresh, owner := key("payer"), key("fresh"), solana.TokenProgramID
	require.NoError(t, rt.Airdrop(payer, 10_000_000))

	rent := rt.Rent().MinimumBalance(82)
	ix := system.CreateAccount(payer, fresh, rent, 82, owner)
	_, err := rt.Execute(runtime.NewTransaction([]solana.Pubkey{payer, fresh}, ix))
	require.NoError(t, err)

	acc, err := rt.Account(fresh)
	require.NoError(t, err)
	assert.Equal(t, owner, acc.Owner)
	assert.Equal(t, rent, acc.Lamports)
	assert.Len(t, acc.Data, 82)

	// second time the account is in use
	_, err = rt.Execute(runtime.NewTransaction([]solana.Pubkey{payer, fresh}, ix))
	assert.ErrorIs(t, err, system.ErrAccountAlreadyInUse)

	// not rent exempt
	other := key("other")
	_, err = rt.Execute(runtime.NewTransaction([]solana.Pubkey{payer, other},
		system.CreateAccount(payer, other, rent-1, 82, owner)))
	assert.ErrorIs(t, err, system.ErrAccountNotRentExempt)
}

func TestAssign(t *testing.T) {
	rt := newTestRuntime(t)
	acc := key("acc")
	require.NoError(t, rt.Airdrop(acc, 1))

	_, err := rt.Execute(runtime.NewTransaction([]solana.Pubkey{acc}, system.Assign(acc, solana.VoteProgramID)))
	require.NoError(t, err)

	got, _ := rt.Account(acc)
	assert.Equal(t, solana.VoteProgramID, got.Owner)

	_, err = rt.Execute(runtime.NewTransaction([]solana.Pubkey{acc}, system.Assign(acc, solana.TokenProgramID)))
	assert.ErrorIs(t, err, system.ErrInvalidProgramID)
}

func TestInvalidInstruction(t *testing.T) {
	rt := newTestRuntime(t)
	_, err := rt.Execute(runtime.NewTransaction(nil, runtime.Instruction{
		ProgramID: solana.SystemProgramID,
		Data:      []byte{9, 0, 0, 0},
	}))
	assert.ErrorIs(t, err, system.ErrInvalidInstruction)
	assert.Equal(t, "system: invalid instruction data", system.ErrInvalidInstruction.Error())
}
