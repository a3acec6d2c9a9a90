// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vote

import (
	"github.com/near/borsh-go"

	"github.com/liquidstake/pool/solana"
)

// StateSize is the size of a vote account.
const StateSize = 3762

// CurrentVersion is the state version written by InitializeAccount.
const CurrentVersion uint32 = 1

// partialStateSize covers the leading fields decoded by DecodePartialState.
const partialStateSize = 4 + 32 + 32 + 1

// PartialState is the head of a vote account: enough to identify the
// validator without decoding vote history.
type PartialState struct {
	Version              uint32
	Node                 solana.Pubkey
	AuthorizedWithdrawer solana.Pubkey
	Commission           uint8
}

// DecodePartialState parses the head of an initialized vote account.
func DecodePartialState(data []byte) (*PartialState, error) {
	if len(data) < partialStateSize {
		return nil, ErrInvalidAccountData
	}
	var s PartialState
	if err := borsh.Deserialize(&s, data[:partialStateSize]); err != nil {
		return nil, ErrInvalidAccountData
	}
	if s.Version == 0 {
		return nil, ErrUninitializedAccount
	}
	return &s, nil
}
