// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import "fmt"

// Error is a token program failure.
type Error uint32

const (
	ErrNotRentExempt Error = iota
	ErrInsufficientFunds
	ErrInvalidMint
	ErrMintMismatch
	ErrOwnerMismatch
	ErrFixedSupply
	ErrAlreadyInUse
	ErrUninitializedState
	ErrInvalidInstruction
	ErrInvalidAccountData
	ErrOverflow
	ErrAccountFrozen
	ErrIncorrectProgramID
)

var errorNames = map[Error]string{
	ErrNotRentExempt:      "lamport balance below rent-exempt threshold",
	ErrInsufficientFunds:  "insufficient funds",
	ErrInvalidMint:        "invalid mint",
	ErrMintMismatch:       "account not associated with this mint",
	ErrOwnerMismatch:      "owner does not match",
	ErrFixedSupply:        "fixed supply",
	ErrAlreadyInUse:       "already in use",
	ErrUninitializedState: "state is uninitialized",
	ErrInvalidInstruction: "invalid instruction",
	ErrInvalidAccountData: "invalid account data",
	ErrOverflow:           "operation overflowed",
	ErrAccountFrozen:      "account is frozen",
	ErrIncorrectProgramID: "account not owned by the token program",
}

func (e Error) Error() string {
	if name, ok := errorNames[e]; ok {
		return "token: " + name
	}
	return fmt.Sprintf("token: error %d", uint32(e))
}
