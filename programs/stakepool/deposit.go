// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"github.com/liquidstake/pool/programs/system"
	"github.com/liquidstake/pool/programs/token"
	"github.com/liquidstake/pool/runtime"
)

func (p *Program) deposit(ctx *runtime.InvokeContext, amount uint64) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	poolInfo, pool, err := p.loadPool(ctx)
	if err != nil {
		return err
	}
	reserve, err := p.deriver.Reserve(poolInfo.Key)
	if err != nil {
		return err
	}
	mintAuthority, err := p.deriver.MintAuthority(poolInfo.Key)
	if err != nil {
		return err
	}
	accs, err := validateAccounts(ctx,
		rule(1, "user", isSigner(ErrUnauthorized)),
		rule(2, "recipient", isTokenAccountOf(pool.StTokenMint, ErrInvalidStTokenAccount)),
		rule(3, "mint", hasAddress(pool.StTokenMint, ErrInvalidMint)),
		rule(4, "reserve", hasAddress(reserve.Address, ErrInvalidReserveAccount)),
		rule(5, "mint_authority", hasAddress(mintAuthority.Address, ErrInvalidMintAuthority)),
	)
	if err != nil {
		return err
	}

	minted, err := pool.ExchangeRate.Exchange(amount)
	if err != nil {
		return err
	}

	user, recipient := accs.get("user"), accs.get("recipient")
	if err := ctx.Invoke(system.Transfer(user.Key, reserve.Address, amount)); err != nil {
		return err
	}
	seeds, err := p.deriver.signerSeeds(poolInfo.Key, MintAuthoritySeed)
	if err != nil {
		return err
	}
	if err := ctx.Invoke(token.MintTo(pool.StTokenMint, recipient.Key, mintAuthority.Address, minted), seeds); err != nil {
		return err
	}

	if err := pool.Metrics.observeDeposit(amount); err != nil {
		return err
	}
	if err := pool.encodeTo(poolInfo.Data); err != nil {
		return err
	}
	addLamports(metricDepositLamports(), amount)
	ctx.Log("deposit", "amount", amount, "minted", minted)
	logger.Debug("deposit", "pool", poolInfo.Key, "user", user.Key, "amount", amount, "minted", minted)
	return nil
}
