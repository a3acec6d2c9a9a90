// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vote

import "fmt"

// Error is a vote program failure.
type Error uint32

const (
	ErrInvalidInstruction Error = iota
	ErrInvalidAccountData
	ErrAccountAlreadyInitialized
	ErrUninitializedAccount
	ErrIncorrectProgramID
	ErrInvalidCommission
)

var errorNames = map[Error]string{
	ErrInvalidInstruction:        "invalid instruction data",
	ErrInvalidAccountData:        "invalid account data",
	ErrAccountAlreadyInitialized: "account already initialized",
	ErrUninitializedAccount:      "account is not initialized",
	ErrIncorrectProgramID:        "account not owned by the vote program",
	ErrInvalidCommission:         "commission above 100",
}

func (e Error) Error() string {
	if name, ok := errorNames[e]; ok {
		return "vote: " + name
	}
	return fmt.Sprintf("vote: error %d", uint32(e))
}
