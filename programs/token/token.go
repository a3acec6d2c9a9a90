// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements the subset of the SPL token program the pool relies on:
// mints, token accounts, transfers and minting.
package token

import (
	"github.com/near/borsh-go"
	"github.com/pkg/errors"

	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

// Program is the token program.
type Program struct{}

var _ runtime.Program = (*Program)(nil)

// New creates the token program.
func New() *Program { return &Program{} }

func (p *Program) ID() solana.Pubkey { return solana.TokenProgramID }

func (p *Program) Process(ctx *runtime.InvokeContext, data []byte) error {
	if len(data) == 0 {
		return ErrInvalidInstruction
	}
	switch data[0] {
	case tagInitializeMint:
		var args initializeMintData
		if err := borsh.Deserialize(&args, data); err != nil {
			return ErrInvalidInstruction
		}
		return initializeMint(ctx, args)
	case tagInitializeAccount:
		return initializeAccount(ctx)
	case tagTransfer, tagMintTo:
		var args amountData
		if err := borsh.Deserialize(&args, data); err != nil {
			return ErrInvalidInstruction
		}
		if data[0] == tagTransfer {
			return transfer(ctx, args.Amount)
		}
		return mintTo(ctx, args.Amount)
	}
	return ErrInvalidInstruction
}

// owned returns the i-th account, checking it belongs to the token program.
func owned(ctx *runtime.InvokeContext, i int) (*runtime.AccountInfo, error) {
	acc, err := ctx.Account(i)
	if err != nil {
		return nil, err
	}
	if acc.Owner != solana.TokenProgramID {
		return nil, ErrIncorrectProgramID
	}
	return acc, nil
}

func initializeMint(ctx *runtime.InvokeContext, args initializeMintData) error {
	acc, err := owned(ctx, 0)
	if err != nil {
		return err
	}
	if len(acc.Data) != MintSize {
		return ErrInvalidAccountData
	}
	if !isBlank(acc.Data) {
		return ErrAlreadyInUse
	}
	if !ctx.Rent().IsExempt(acc.Lamports, MintSize) {
		return ErrNotRentExempt
	}
	mint := Mint{
		MintAuthorityOption: 1,
		MintAuthority:       args.MintAuthority,
		Decimals:            args.Decimals,
		IsInitialized:       true,
	}
	if args.FreezeAuthorityOption == 1 {
		mint.FreezeAuthorityOption = 1
		mint.FreezeAuthority = args.FreezeAuthority
	}
	return encode(mint, acc.Data)
}

func initializeAccount(ctx *runtime.InvokeContext) error {
	acc, err := owned(ctx, 0)
	if err != nil {
		return err
	}
	mintAcc, err := owned(ctx, 1)
	if err != nil {
		return err
	}
	owner, err := ctx.Account(2)
	if err != nil {
		return err
	}
	if len(acc.Data) != AccountSize {
		return ErrInvalidAccountData
	}
	if !isBlank(acc.Data) {
		return ErrAlreadyInUse
	}
	if !ctx.Rent().IsExempt(acc.Lamports, AccountSize) {
		return ErrNotRentExempt
	}
	if _, err := DecodeMint(mintAcc.Data); err != nil {
		return ErrInvalidMint
	}
	return encode(Account{
		Mint:  mintAcc.Key,
		Owner: owner.Key,
		State: AccountInitialized,
	}, acc.Data)
}

// loadAccount decodes the i-th account as an initialized, unfrozen token account.
func loadAccount(ctx *runtime.InvokeContext, i int) (*runtime.AccountInfo, *Account, error) {
	info, err := owned(ctx, i)
	if err != nil {
		return nil, nil, err
	}
	acc, err := DecodeAccount(info.Data)
	if err != nil {
		return nil, nil, err
	}
	if acc.State == AccountFrozen {
		return nil, nil, ErrAccountFrozen
	}
	return info, acc, nil
}

func transfer(ctx *runtime.InvokeContext, amount uint64) error {
	srcInfo, src, err := loadAccount(ctx, 0)
	if err != nil {
		return err
	}
	dstInfo, dst, err := loadAccount(ctx, 1)
	if err != nil {
		return err
	}
	authority, err := ctx.Account(2)
	if err != nil {
		return err
	}
	if src.Mint != dst.Mint {
		return ErrMintMismatch
	}
	if authority.Key != src.Owner {
		return ErrOwnerMismatch
	}
	if !authority.IsSigner {
		return errors.Wrapf(runtime.ErrMissingRequiredSignature, "account %v", authority.Key)
	}
	if src.Amount < amount {
		return ErrInsufficientFunds
	}
	if srcInfo.Key == dstInfo.Key {
		return nil
	}
	if dst.Amount+amount < dst.Amount {
		return ErrOverflow
	}
	src.Amount -= amount
	dst.Amount += amount
	if err := encode(*src, srcInfo.Data); err != nil {
		return err
	}
	return encode(*dst, dstInfo.Data)
}

func mintTo(ctx *runtime.InvokeContext, amount uint64) error {
	mintInfo, err := owned(ctx, 0)
	if err != nil {
		return err
	}
	mint, err := DecodeMint(mintInfo.Data)
	if err != nil {
		return err
	}
	dstInfo, dst, err := loadAccount(ctx, 1)
	if err != nil {
		return err
	}
	authority, err := ctx.Account(2)
	if err != nil {
		return err
	}
	if dst.Mint != mintInfo.Key {
		return ErrMintMismatch
	}
	mintAuthority, ok := mint.Authority()
	if !ok {
		return ErrFixedSupply
	}
	if authority.Key != mintAuthority {
		return ErrOwnerMismatch
	}
	if !authority.IsSigner {
		return errors.Wrapf(runtime.ErrMissingRequiredSignature, "account %v", authority.Key)
	}
	if mint.Supply+amount < mint.Supply || dst.Amount+amount < dst.Amount {
		return ErrOverflow
	}
	mint.Supply += amount
	dst.Amount += amount
	if err := encode(*mint, mintInfo.Data); err != nil {
		return err
	}
	return encode(*dst, dstInfo.Data)
}
