// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"bytes"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"

	"github.com/liquidstake/pool/solana"
)

// Account is the ledger record stored under a pubkey.
// A missing account reads as the zero Account, owned by the system program.
type Account struct {
	Lamports   uint64
	Owner      solana.Pubkey
	Executable bool
	Data       []byte
}

// IsEmpty returns if the account holds nothing and could be deleted.
func (a *Account) IsEmpty() bool {
	return a.Lamports == 0 && len(a.Data) == 0 && a.Owner == solana.SystemProgramID && !a.Executable
}

// Copy returns a deep copy of the account.
func (a *Account) Copy() *Account {
	cpy := *a
	if a.Data != nil {
		cpy.Data = bytes.Clone(a.Data)
	}
	return &cpy
}

// Equal returns whether two accounts hold the same content.
func (a *Account) Equal(b *Account) bool {
	return a.Lamports == b.Lamports &&
		a.Owner == b.Owner &&
		a.Executable == b.Executable &&
		bytes.Equal(a.Data, b.Data)
}

// accountHeader is the fixed part of a stored account, followed by the raw data.
type accountHeader struct {
	Lamports   uint64
	Owner      solana.Pubkey
	Executable bool
}

const accountHeaderSize = 8 + solana.PubkeyLength + 1

func encodeAccount(a *Account) ([]byte, error) {
	header, err := borsh.Serialize(accountHeader{
		Lamports:   a.Lamports,
		Owner:      a.Owner,
		Executable: a.Executable,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode account")
	}
	return append(header, a.Data...), nil
}

func decodeAccount(data []byte) (*Account, error) {
	if len(data) < accountHeaderSize {
		return nil, errors.New("decode account: short record")
	}
	var h accountHeader
	if err := borsh.Deserialize(&h, data[:accountHeaderSize]); err != nil {
		return nil, errors.Wrap(err, "decode account")
	}
	return &Account{
		Lamports:   h.Lamports,
		Owner:      h.Owner,
		Executable: h.Executable,
		Data:       bytes.Clone(data[accountHeaderSize:]),
	}, nil
}
