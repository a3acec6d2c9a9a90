// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"github.com/liquidstake/pool/programs/token"
	"github.com/liquidstake/pool/programs/vote"
	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

// isVoteAccount checks acc is an initialized vote account.
func isVoteAccount(acc *runtime.AccountInfo) error {
	if acc.Owner != solana.VoteProgramID {
		return ErrValidatorVoteAccountHasDifferentOwner
	}
	if _, err := vote.DecodePartialState(acc.Data); err != nil {
		return ErrInvalidVoteAccount
	}
	return nil
}

func (p *Program) addValidator(ctx *runtime.InvokeContext) error {
	poolInfo, pool, err := p.loadManaged(ctx)
	if err != nil {
		return err
	}
	accs, err := validateAccounts(ctx,
		rule(2, "vote", isVoteAccount),
		rule(3, "fee_account", isTokenAccountOf(pool.StTokenMint, ErrInvalidFeeRecipient)),
	)
	if err != nil {
		return err
	}
	voteKey := accs.get("vote").Key
	if err := pool.Validators.Add(voteKey, Validator{FeeAddress: accs.get("fee_account").Key, Active: true}); err != nil {
		return err
	}
	if err := pool.encodeTo(poolInfo.Data); err != nil {
		return err
	}
	metricValidators().Set(int64(pool.Validators.Len()))
	ctx.Log("add validator", "vote", voteKey)
	logger.Debug("validator added", "pool", poolInfo.Key, "vote", voteKey, "count", pool.Validators.Len())
	return nil
}

func (p *Program) removeValidator(ctx *runtime.InvokeContext) error {
	poolInfo, pool, err := p.loadManaged(ctx)
	if err != nil {
		return err
	}
	voteInfo, err := ctx.Account(2)
	if err != nil {
		return err
	}
	if _, err := pool.Validators.Remove(voteInfo.Key); err != nil {
		return err
	}
	if err := pool.encodeTo(poolInfo.Data); err != nil {
		return err
	}
	metricValidators().Set(int64(pool.Validators.Len()))
	ctx.Log("remove validator", "vote", voteInfo.Key)
	logger.Debug("validator removed", "pool", poolInfo.Key, "vote", voteInfo.Key, "count", pool.Validators.Len())
	return nil
}

func (p *Program) deactivateValidator(ctx *runtime.InvokeContext) error {
	poolInfo, pool, err := p.loadManaged(ctx)
	if err != nil {
		return err
	}
	voteInfo, err := ctx.Account(2)
	if err != nil {
		return err
	}
	entry, err := pool.Validators.Get(voteInfo.Key)
	if err != nil {
		return err
	}
	entry.Entry.Active = false
	if err := pool.encodeTo(poolInfo.Data); err != nil {
		return err
	}
	ctx.Log("deactivate validator", "vote", voteInfo.Key)
	return nil
}

func (p *Program) addMaintainer(ctx *runtime.InvokeContext) error {
	poolInfo, pool, err := p.loadManaged(ctx)
	if err != nil {
		return err
	}
	maintainer, err := ctx.Account(2)
	if err != nil {
		return err
	}
	if err := pool.Maintainers.Add(maintainer.Key, Maintainer{}); err != nil {
		return err
	}
	if err := pool.encodeTo(poolInfo.Data); err != nil {
		return err
	}
	ctx.Log("add maintainer", "maintainer", maintainer.Key)
	logger.Debug("maintainer added", "pool", poolInfo.Key, "maintainer", maintainer.Key)
	return nil
}

func (p *Program) removeMaintainer(ctx *runtime.InvokeContext) error {
	poolInfo, pool, err := p.loadManaged(ctx)
	if err != nil {
		return err
	}
	maintainer, err := ctx.Account(2)
	if err != nil {
		return err
	}
	if _, err := pool.Maintainers.Remove(maintainer.Key); err != nil {
		return err
	}
	if err := pool.encodeTo(poolInfo.Data); err != nil {
		return err
	}
	ctx.Log("remove maintainer", "maintainer", maintainer.Key)
	logger.Debug("maintainer removed", "pool", poolInfo.Key, "maintainer", maintainer.Key)
	return nil
}

func (p *Program) changeFeePolicy(ctx *runtime.InvokeContext, policy FeePolicy) error {
	poolInfo, pool, err := p.loadManaged(ctx)
	if err != nil {
		return err
	}
	if err := policy.Validate(); err != nil {
		return err
	}
	pool.FeePolicy = policy
	if err := pool.encodeTo(poolInfo.Data); err != nil {
		return err
	}
	ctx.Log("change fee policy", "treasury", policy.TreasuryFee, "validation", policy.ValidationFee,
		"developer", policy.DeveloperFee, "appreciation", policy.AppreciationShare)
	return nil
}

func (p *Program) updateExchangeRate(ctx *runtime.InvokeContext) error {
	poolInfo, pool, err := p.loadPool(ctx)
	if err != nil {
		return err
	}
	reserve, err := p.deriver.Reserve(poolInfo.Key)
	if err != nil {
		return err
	}
	accs, err := validateAccounts(ctx,
		rule(1, "reserve", hasAddress(reserve.Address, ErrInvalidReserveAccount)),
		rule(2, "mint", hasAddress(pool.StTokenMint, ErrInvalidMint)),
	)
	if err != nil {
		return err
	}
	epoch := ctx.Clock().Epoch
	if pool.ExchangeRate.ComputedInEpoch >= epoch {
		return ErrExchangeRateAlreadyUpToDate
	}
	mint, err := token.DecodeMint(accs.get("mint").Data)
	if err != nil {
		return ErrInvalidMint
	}

	floor := reserveFloor(ctx.Rent())
	reserveLamports := accs.get("reserve").Lamports
	if reserveLamports < floor {
		return ErrReserveNotFunded
	}
	balance := reserveLamports - floor
	for _, v := range pool.Validators.Entries {
		if balance+v.Entry.StakeAccountsBalance < balance {
			return ErrCalculationFailure
		}
		balance += v.Entry.StakeAccountsBalance
	}

	pool.ExchangeRate = ExchangeRate{
		ComputedInEpoch: epoch,
		StTokenSupply:   mint.Supply,
		BaseBalance:     balance,
	}
	if err := pool.encodeTo(poolInfo.Data); err != nil {
		return err
	}
	ctx.Log("update exchange rate", "epoch", epoch, "supply", mint.Supply, "balance", balance)
	logger.Debug("exchange rate updated", "pool", poolInfo.Key, "epoch", epoch, "supply", mint.Supply, "balance", balance)
	return nil
}
