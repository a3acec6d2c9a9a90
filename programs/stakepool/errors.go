// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import "fmt"

// Error is a pool program failure code.
type Error uint32

const (
	ErrInvalidMint Error = 6000 + iota
	ErrInvalidFeeRecipient
	ErrReserveNotFunded
	ErrDuplicatedEntry
	ErrEntryNotFound
	ErrRegistryFull
	ErrInvalidAmount
	ErrUnauthorized
	ErrInvalidOwner
	ErrInvalidFeeAmount
	ErrInvalidReserveAccount
	ErrInvalidMintAuthority
	ErrInvalidStTokenAccount
	ErrInvalidVoteAccount
	ErrValidatorVoteAccountHasDifferentOwner
	ErrCalculationFailure
	ErrExchangeRateAlreadyUpToDate
	ErrInvalidInstruction
	ErrInvalidAccountData
)

var errorNames = map[Error]string{
	ErrInvalidMint:                           "mint authority is not the pool's derived authority",
	ErrInvalidFeeRecipient:                   "fee recipient is not a token account of the pool mint",
	ErrReserveNotFunded:                      "reserve account is not rent exempt",
	ErrDuplicatedEntry:                       "entry already present",
	ErrEntryNotFound:                         "entry not found",
	ErrRegistryFull:                          "registry is full",
	ErrInvalidAmount:                         "invalid amount",
	ErrUnauthorized:                          "signer is not authorized",
	ErrInvalidOwner:                          "pool account is not owned by the program",
	ErrInvalidFeeAmount:                      "fee policy does not sum to 100",
	ErrInvalidReserveAccount:                 "reserve account does not match the derived address",
	ErrInvalidMintAuthority:                  "mint authority does not match the derived address",
	ErrInvalidStTokenAccount:                 "not a token account of the pool mint",
	ErrInvalidVoteAccount:                    "invalid vote account",
	ErrValidatorVoteAccountHasDifferentOwner: "vote account is not owned by the vote program",
	ErrCalculationFailure:                    "calculation overflowed",
	ErrExchangeRateAlreadyUpToDate:           "exchange rate already updated in this epoch",
	ErrInvalidInstruction:                    "invalid instruction",
	ErrInvalidAccountData:                    "invalid pool account data",
}

func (e Error) Error() string {
	if name, ok := errorNames[e]; ok {
		return "stakepool: " + name
	}
	return fmt.Sprintf("stakepool: error %d", uint32(e))
}
