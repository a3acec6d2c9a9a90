// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"github.com/liquidstake/pool/programs/system"
	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

func (p *Program) initialize(ctx *runtime.InvokeContext, args *initializeArgs) error {
	if err := args.FeePolicy.Validate(); err != nil {
		return err
	}
	poolInfo, err := ctx.Account(0)
	if err != nil {
		return err
	}
	mintInfo, err := ctx.Account(2)
	if err != nil {
		return err
	}
	mintAuthority, err := p.deriver.MintAuthority(poolInfo.Key)
	if err != nil {
		return err
	}
	reserve, err := p.deriver.Reserve(poolInfo.Key)
	if err != nil {
		return err
	}

	accs, err := validateAccounts(ctx,
		rule(1, "manager", isSigner(ErrUnauthorized)),
		rule(2, "mint", isMintWithAuthority(mintAuthority.Address, ErrInvalidMint)),
		rule(3, "treasury", isTokenAccountOf(mintInfo.Key, ErrInvalidFeeRecipient)),
		rule(4, "developer", isTokenAccountOf(mintInfo.Key, ErrInvalidFeeRecipient)),
		rule(5, "reserve",
			hasAddress(reserve.Address, ErrInvalidReserveAccount),
			holdsAtLeast(reserveFloor(ctx.Rent()), ErrReserveNotFunded)),
	)
	if err != nil {
		return err
	}
	manager := accs.get("manager")

	space := PoolSize(args.MaxValidators, args.MaxMaintainers)
	if err := ctx.Invoke(system.CreateAccount(manager.Key, poolInfo.Key, ctx.Rent().MinimumBalance(space), space, p.id)); err != nil {
		return err
	}

	pool := Pool{
		Version:     PoolVersion,
		Manager:     manager.Key,
		StTokenMint: mintInfo.Key,
		FeePolicy:   args.FeePolicy,
		FeeRecipients: FeeRecipients{
			Treasury:  accs.get("treasury").Key,
			Developer: accs.get("developer").Key,
		},
		Validators:  NewAccountMap[Validator](args.MaxValidators),
		Maintainers: NewAccountMap[Maintainer](args.MaxMaintainers),
	}
	if err := pool.encodeTo(poolInfo.Data); err != nil {
		return err
	}
	ctx.Log("initialize", "pool", poolInfo.Key, "manager", manager.Key, "mint", mintInfo.Key)
	logger.Info("pool initialized", "pool", poolInfo.Key, "manager", manager.Key,
		"max-validators", args.MaxValidators, "max-maintainers", args.MaxMaintainers)
	return nil
}

// reserveFloor is the reserve balance that does not count as pool assets.
func reserveFloor(rent solana.Rent) uint64 {
	return rent.MinimumBalance(0)
}
