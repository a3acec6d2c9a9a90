// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liquidstake/pool/ledger"
	"github.com/liquidstake/pool/lvldb"
	"github.com/liquidstake/pool/programs/system"
	"github.com/liquidstake/pool/programs/vote"
	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

func key(name string) solana.Pubkey {
	return solana.BytesToPubkey([]byte(name))
}

func TestInitializeAccount(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	rt := runtime.New(ledger.New(db), solana.DefaultRent(), system.New(), vote.New())
	payer, voteAccount, node, withdrawer := key("payer"), key("vote"), key("node"), key("withdrawer")
	require.NoError(t, rt.Airdrop(payer, 1_000_000_000))

	rent := rt.Rent().MinimumBalance(vote.StateSize)
	_, err = rt.Execute(runtime.NewTransaction([]solana.Pubkey{payer, voteAccount, node},
		system.CreateAccount(payer, voteAccount, rent, vote.StateSize, solana.VoteProgramID),
		vote.InitializeAccount(voteAccount, node, withdrawer, 10),
	))
	require.NoError(t, err)

	acc, err := rt.Account(voteAccount)
	require.NoError(t, err)
	assert.Equal(t, solana.VoteProgramID, acc.Owner)

	state, err := vote.DecodePartialState(acc.Data)
	require.NoError(t, err)
	assert.Equal(t, &vote.PartialState{
		Version:              vote.CurrentVersion,
		Node:                 node,
		AuthorizedWithdrawer: withdrawer,
		Commission:           10,
	}, state)

	_, err = rt.Execute(runtime.NewTransaction([]solana.Pubkey{node}, vote.InitializeAccount(voteAccount, node, withdrawer, 10)))
	assert.ErrorIs(t, err, vote.ErrAccountAlreadyInitialized)
}

func TestInitializeAccountRejects(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	rt := runtime.New(ledger.New(db), solana.DefaultRent(), system.New(), vote.New())
	payer, node := key("payer"), key("node")
	require.NoError(t, rt.Airdrop(payer, 1_000_000_000))
	rent := rt.Rent().MinimumBalance(vote.StateSize)

	tests := []struct {
		name    string
		owner   solana.Pubkey
		space   uint64
		comm    uint8
		wantErr error
	}{
		{"wrong owner", solana.TokenProgramID, vote.StateSize, 0, vote.ErrIncorrectProgramID},
		{"too small", solana.VoteProgramID, 100, 0, vote.ErrInvalidAccountData},
		{"commission", solana.VoteProgramID, vote.StateSize, 101, vote.ErrInvalidCommission},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := key("vote-" + tt.name)
			_, err := rt.Execute(runtime.NewTransaction([]solana.Pubkey{payer, acc, node},
				system.CreateAccount(payer, acc, rent, tt.space, tt.owner),
				vote.InitializeAccount(acc, node, node, tt.comm),
			))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodePartialState(t *testing.T) {
	_, err := vote.DecodePartialState(make([]byte, 10))
	assert.ErrorIs(t, err, vote.ErrInvalidAccountData)

	_, err = vote.DecodePartialState(make([]byte, vote.StateSize))
	assert.ErrorIs(t, err, vote.ErrUninitializedAccount)
}
