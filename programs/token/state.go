// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/near/borsh-go"

	"github.com/liquidstake/pool/solana"
)

// account sizes in bytes.
const (
	MintSize    = 82
	AccountSize = 165
)

// AccountState is the state of a token account.
type AccountState uint8

const (
	AccountUninitialized AccountState = iota
	AccountInitialized
	AccountFrozen
)

// Mint is the on-ledger layout of a token mint.
// Option fields are encoded as a u32 tag followed by the value.
type Mint struct {
	MintAuthorityOption   uint32
	MintAuthority         solana.Pubkey
	Supply                uint64
	Decimals              uint8
	IsInitialized         bool
	FreezeAuthorityOption uint32
	FreezeAuthority       solana.Pubkey
}

// Authority returns the mint authority, if any.
func (m *Mint) Authority() (solana.Pubkey, bool) {
	return m.MintAuthority, m.MintAuthorityOption == 1
}

// Account is the on-ledger layout of a token account.
type Account struct {
	Mint                 solana.Pubkey
	Owner                solana.Pubkey
	Amount               uint64
	DelegateOption       uint32
	Delegate             solana.Pubkey
	State                AccountState
	IsNativeOption       uint32
	IsNative             uint64
	DelegatedAmount      uint64
	CloseAuthorityOption uint32
	CloseAuthority       solana.Pubkey
}

// DecodeMint parses an initialized mint.
func DecodeMint(data []byte) (*Mint, error) {
	if len(data) != MintSize {
		return nil, ErrInvalidAccountData
	}
	var m Mint
	if err := borsh.Deserialize(&m, data); err != nil {
		return nil, ErrInvalidAccountData
	}
	if !m.IsInitialized {
		return nil, ErrUninitializedState
	}
	return &m, nil
}

// DecodeAccount parses an initialized token account.
func DecodeAccount(data []byte) (*Account, error) {
	if len(data) != AccountSize {
		return nil, ErrInvalidAccountData
	}
	var a Account
	if err := borsh.Deserialize(&a, data); err != nil {
		return nil, ErrInvalidAccountData
	}
	if a.State == AccountUninitialized {
		return nil, ErrUninitializedState
	}
	return &a, nil
}

func encode(v any, dst []byte) error {
	data, err := borsh.Serialize(v)
	if err != nil {
		return err
	}
	if len(data) != len(dst) {
		return ErrInvalidAccountData
	}
	copy(dst, data)
	return nil
}

// isBlank reports whether data has never been initialized.
func isBlank(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
