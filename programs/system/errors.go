// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package system

import "fmt"

// Error is a system program failure.
type Error uint32

const (
	ErrAccountAlreadyInUse Error = iota
	ErrResultWithNegativeLamports
	ErrInvalidProgramID
	ErrInvalidAccountDataLength
	ErrAccountNotRentExempt
	ErrInvalidFromAccount
	ErrInvalidInstruction
)

var errorNames = map[Error]string{
	ErrAccountAlreadyInUse:        "account already in use",
	ErrResultWithNegativeLamports: "account does not have enough lamports",
	ErrInvalidProgramID:           "cannot assign account to this program id",
	ErrInvalidAccountDataLength:   "account data length out of range",
	ErrAccountNotRentExempt:       "new account would not be rent exempt",
	ErrInvalidFromAccount:         "from account must be a plain system account",
	ErrInvalidInstruction:         "invalid instruction data",
}

func (e Error) Error() string {
	if name, ok := errorNames[e]; ok {
		return "system: " + name
	}
	return fmt.Sprintf("system: error %d", uint32(e))
}
