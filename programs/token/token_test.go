// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liquidstake/pool/ledger"
	"github.com/liquidstake/pool/lvldb"
	"github.com/liquidstake/pool/programs/system"
	"github.com/liquidstake/pool/programs/token"
	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

func key(name string) solana.Pubkey {
	return solana.BytesToPubkey([]byte(name))
}

type fixture struct {
	rt    *runtime.Runtime
	payer solana.Pubkey
}

func newFixture(t *testing.T) *fixture {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rt := runtime.New(ledger.New(db), solana.DefaultRent(), system.New(), token.New())
	payer := key("payer")
	require.NoError(t, rt.Airdrop(payer, 1_000_000_000))
	return &fixture{rt: rt, payer: payer}
}

func (f *fixture) exec(t *testing.T, signers []solana.Pubkey, ixs ...runtime.Instruction) error {
	_, err := f.rt.Execute(runtime.NewTransaction(append(signers, f.payer), ixs...))
	return err
}

func (f *fixture) createMint(t *testing.T, mint, authority solana.Pubkey) {
	rent := f.rt.Rent().MinimumBalance(token.MintSize)
	require.NoError(t, f.exec(t, []solana.Pubkey{mint},
		system.CreateAccount(f.payer, mint, rent, token.MintSize, solana.TokenProgramID),
		token.InitializeMint(mint, 9, authority),
	))
}

func (f *fixture) createAccount(t *testing.T, account, mint, owner solana.Pubkey) {
	rent := f.rt.Rent().MinimumBalance(token.AccountSize)
	require.NoError(t, f.exec(t, []solana.Pubkey{account},
		system.CreateAccount(f.payer, account, rent, token.AccountSize, solana.TokenProgramID),
		token.InitializeAccount(account, mint, owner),
	))
}

func (f *fixture) tokenAccount(t *testing.T, key solana.Pubkey) *token.Account {
	acc, err := f.rt.Account(key)
	require.NoError(t, err)
	ta, err := token.DecodeAccount(acc.Data)
	require.NoError(t, err)
	return ta
}

func (f *fixture) mint(t *testing.T, key solana.Pubkey) *token.Mint {
	acc, err := f.rt.Account(key)
	require.NoError(t, err)
	m, err := token.DecodeMint(acc.Data)
	require.NoError(t, err)
	return m
}

func TestInitializeMint(t *testing.T) {
	f := newFixture(t)
	mint, authority := key("mint"), key("authority")
	f.createMint(t, mint, authority)

	m := f.mint(t, mint)
	got, ok := m.Authority()
	assert.True(t, ok)
	assert.Equal(t, authority, got)
	assert.Equal(t, uint8(9), m.Decimals)
	assert.Zero(t, m.Supply)

	err := f.exec(t, nil, token.InitializeMint(mint, 6, authority))
	assert.ErrorIs(t, err, token.ErrAlreadyInUse)
}

func TestInitializeAccountRequiresMint(t *testing.T) {
	f := newFixture(t)
	account, notMint := key("account"), key("not-mint")

	rent := f.rt.Rent().MinimumBalance(token.AccountSize)
	err := f.exec(t, []solana.Pubkey{account},
		system.CreateAccount(f.payer, account, rent, token.AccountSize, solana.TokenProgramID),
		token.InitializeAccount(account, notMint, key("owner")),
	)
	// not-mint is a plain system account
	assert.ErrorIs(t, err, token.ErrIncorrectProgramID)

	acc, err := f.rt.Account(account)
	require.NoError(t, err)
	assert.True(t, acc.IsEmpty(), "failed transaction must not leave the account behind")
}

func TestMintTo(t *testing.T) {
	f := newFixture(t)
	mint, authority, holder, account := key("mint"), key("authority"), key("holder"), key("account")
	f.createMint(t, mint, authority)
	f.createAccount(t, account, mint, holder)

	require.NoError(t, f.exec(t, []solana.Pubkey{authority}, token.MintTo(mint, account, authority, 500)))
	assert.Equal(t, uint64(500), f.tokenAccount(t, account).Amount)
	assert.Equal(t, uint64(500), f.mint(t, mint).Supply)

	err := f.exec(t, []solana.Pubkey{holder}, token.MintTo(mint, account, holder, 1))
	assert.ErrorIs(t, err, token.ErrOwnerMismatch)

	other := key("other-mint")
	f.createMint(t, other, authority)
	err = f.exec(t, []solana.Pubkey{authority}, token.MintTo(other, account, authority, 1))
	assert.ErrorIs(t, err, token.ErrMintMismatch)
}

func TestTransfer(t *testing.T) {
	f := newFixture(t)
	mint, authority := key("mint"), key("authority")
	alice, bob := key("alice"), key("bob")
	aliceTokens, bobTokens := key("alice-tokens"), key("bob-tokens")
	f.createMint(t, mint, authority)
	f.createAccount(t, aliceTokens, mint, alice)
	f.createAccount(t, bobTokens, mint, bob)
	require.NoError(t, f.exec(t, []solana.Pubkey{authority}, token.MintTo(mint, aliceTokens, authority, 100)))

	require.NoError(t, f.exec(t, []solana.Pubkey{alice}, token.Transfer(aliceTokens, bobTokens, alice, 30)))
	assert.Equal(t, uint64(70), f.tokenAccount(t, aliceTokens).Amount)
	assert.Equal(t, uint64(30), f.tokenAccount(t, bobTokens).Amount)

	err := f.exec(t, []solana.Pubkey{alice}, token.Transfer(aliceTokens, bobTokens, alice, 71))
	assert.ErrorIs(t, err, token.ErrInsufficientFunds)

	err = f.exec(t, []solana.Pubkey{bob}, token.Transfer(aliceTokens, bobTokens, bob, 1))
	assert.ErrorIs(t, err, token.ErrOwnerMismatch)

	// self transfer is a no-op
	require.NoError(t, f.exec(t, []solana.Pubkey{alice}, token.Transfer(aliceTokens, aliceTokens, alice, 70)))
	assert.Equal(t, uint64(70), f.tokenAccount(t, aliceTokens).Amount)
}

func TestDecodeRejectsWrongSize(t *testing.T) {
	_, err := token.DecodeMint(make([]byte, 10))
	assert.ErrorIs(t, err, token.ErrInvalidAccountData)

	_, err = token.DecodeAccount(make([]byte, token.AccountSize))
	assert.ErrorIs(t, err, token.ErrUninitializedState)
}
