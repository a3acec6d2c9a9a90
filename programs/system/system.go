// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package system implements the native program that owns plain accounts,
// moves lamports and allocates accounts for other programs.
package system

import (
	"github.com/pkg/errors"

	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

// MaxPermittedDataLength is the max size of an account.
const MaxPermittedDataLength = 10 * 1024 * 1024

// Program is the system program.
type Program struct{}

var _ runtime.Program = (*Program)(nil)

// New creates the system program.
func New() *Program { return &Program{} }

func (p *Program) ID() solana.Pubkey { return solana.SystemProgramID }

func (p *Program) Process(ctx *runtime.InvokeContext, data []byte) error {
	tag, err := decodeTag(data)
	if err != nil {
		return err
	}
	switch tag {
	case InstructionCreateAccount:
		var args createAccountData
		if err := decode(data, &args); err != nil {
			return err
		}
		return createAccount(ctx, args)
	case InstructionAssign:
		var args assignData
		if err := decode(data, &args); err != nil {
			return err
		}
		return assign(ctx, args)
	case InstructionTransfer:
		var args transferData
		if err := decode(data, &args); err != nil {
			return err
		}
		return transfer(ctx, args)
	}
	return ErrInvalidInstruction
}

func signed(acc *runtime.AccountInfo) error {
	if !acc.IsSigner {
		return errors.Wrapf(runtime.ErrMissingRequiredSignature, "account %v", acc.Key)
	}
	return nil
}

// debit takes lamports from a plain system account.
func debit(from *runtime.AccountInfo, lamports uint64) error {
	if err := signed(from); err != nil {
		return err
	}
	if from.Owner != solana.SystemProgramID || len(from.Data) != 0 {
		return ErrInvalidFromAccount
	}
	if from.Lamports < lamports {
		return ErrResultWithNegativeLamports
	}
	from.Lamports -= lamports
	return nil
}

func createAccount(ctx *runtime.InvokeContext, args createAccountData) error {
	from, err := ctx.Account(0)
	if err != nil {
		return err
	}
	to, err := ctx.Account(1)
	if err != nil {
		return err
	}
	if err := signed(to); err != nil {
		return err
	}
	if to.Lamports > 0 || len(to.Data) > 0 || to.Owner != solana.SystemProgramID {
		return ErrAccountAlreadyInUse
	}
	if args.Space > MaxPermittedDataLength {
		return ErrInvalidAccountDataLength
	}
	if !ctx.Rent().IsExempt(args.Lamports, args.Space) {
		return ErrAccountNotRentExempt
	}
	if err := debit(from, args.Lamports); err != nil {
		return err
	}
	to.Lamports += args.Lamports
	to.Data = make([]byte, args.Space)
	to.Owner = args.Owner
	ctx.Log("create account", "address", to.Key, "space", args.Space, "owner", args.Owner)
	return nil
}

func assign(ctx *runtime.InvokeContext, args assignData) error {
	acc, err := ctx.Account(0)
	if err != nil {
		return err
	}
	if err := signed(acc); err != nil {
		return err
	}
	if acc.Owner != solana.SystemProgramID {
		return ErrInvalidProgramID
	}
	acc.Owner = args.Owner
	return nil
}

func transfer(ctx *runtime.InvokeContext, args transferData) error {
	from, err := ctx.Account(0)
	if err != nil {
		return err
	}
	to, err := ctx.Account(1)
	if err != nil {
		return err
	}
	if err := debit(from, args.Lamports); err != nil {
		return err
	}
	to.Lamports += args.Lamports
	return nil
}
