// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyTransaction            = errors.New("transaction has no instructions")
	ErrMissingRequiredSignature    = errors.New("missing required signature")
	ErrUnknownProgram              = errors.New("unknown program")
	ErrNotEnoughAccountKeys        = errors.New("not enough account keys")
	ErrMissingAccount              = errors.New("account not passed to the calling instruction")
	ErrPrivilegeEscalation         = errors.New("cross-program invocation with unauthorized signer or writable account")
	ErrCallDepth                   = errors.New("cross-program invocation depth exceeded")
	ErrReadonlyDataModified        = errors.New("instruction modified a read-only account")
	ErrExternalAccountDataModified = errors.New("instruction modified data of an account it does not own")
	ErrExternalAccountLamportSpend = errors.New("instruction spent from the balance of an account it does not own")
	ErrInvalidOwnerChange          = errors.New("instruction changed the owner of an account holding data")
	ErrExecutableModified          = errors.New("instruction changed the executable flag")
	ErrUnbalancedInstruction       = errors.New("sum of account balances before and after instruction do not match")
	ErrLamportsOverflow            = errors.New("lamports overflow")
)

// InstructionError tells which instruction of a transaction failed.
type InstructionError struct {
	Index int
	Err   error
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("instruction %d: %v", e.Index, e.Err)
}

func (e *InstructionError) Unwrap() error {
	return e.Err
}
