// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"maps"
	"slices"

	"github.com/pkg/errors"

	"github.com/liquidstake/pool/kv"
	"github.com/liquidstake/pool/ledger"
	"github.com/liquidstake/pool/programs/stakepool"
	"github.com/liquidstake/pool/programs/system"
	"github.com/liquidstake/pool/programs/token"
	"github.com/liquidstake/pool/programs/vote"
	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

// poolNode drives one pool on a local runtime.
type poolNode struct {
	cfg     *config
	rt      *runtime.Runtime
	program *stakepool.Program

	key           solana.Pubkey
	manager       solana.Pubkey
	mint          solana.Pubkey
	treasury      solana.Pubkey
	developer     solana.Pubkey
	reserve       solana.Pubkey
	mintAuthority solana.Pubkey
}

func newPoolNode(store kv.Store, cfg *config) (*poolNode, error) {
	program, err := stakepool.New(cfg.Pool.ProgramID)
	if err != nil {
		return nil, err
	}
	rt := runtime.New(ledger.New(store), cfg.Rent,
		system.New(),
		token.New(),
		vote.New(),
		program,
	)
	rt.SetClock(solana.Clock{Epoch: cfg.Epoch})

	name := cfg.Pool.Account
	n := &poolNode{
		cfg:       cfg,
		rt:        rt,
		program:   program,
		key:       keyOf(name),
		manager:   keyOf(cfg.Pool.Manager),
		mint:      keyOf(name + "/mint"),
		treasury:  keyOf(name + "/treasury"),
		developer: keyOf(name + "/developer"),
	}
	reserve, err := program.Deriver().Reserve(n.key)
	if err != nil {
		return nil, err
	}
	mintAuthority, err := program.Deriver().MintAuthority(n.key)
	if err != nil {
		return nil, err
	}
	n.reserve = reserve.Address
	n.mintAuthority = mintAuthority.Address
	return n, nil
}

func (n *poolNode) exec(what string, signers []solana.Pubkey, ixs ...runtime.Instruction) error {
	receipt, err := n.rt.Execute(runtime.NewTransaction(signers, ixs...))
	if receipt != nil {
		for _, line := range receipt.Logs {
			logger.Trace(line)
		}
	}
	if err != nil {
		return errors.Wrap(err, what)
	}
	logger.Debug(what)
	return nil
}

func (n *poolNode) initialized() (bool, error) {
	acc, err := n.rt.Account(n.key)
	if err != nil {
		return false, err
	}
	return acc.Owner == n.program.ID(), nil
}

// bootstrap creates the pool with its mint, fee accounts, reserve and
// registries. A pool already present in the ledger is left as is.
func (n *poolNode) bootstrap() error {
	ok, err := n.initialized()
	if err != nil {
		return err
	}
	if ok {
		logger.Info("pool already initialized", "pool", n.key)
		return n.updateExchangeRate()
	}

	for _, name := range slices.Sorted(maps.Keys(n.cfg.Airdrops)) {
		if err := n.rt.Airdrop(keyOf(name), n.cfg.Airdrops[name]); err != nil {
			return errors.Wrapf(err, "airdrop %s", name)
		}
	}

	rent := n.rt.Rent()
	if err := n.exec("create mint", []solana.Pubkey{n.manager, n.mint},
		system.CreateAccount(n.manager, n.mint, rent.MinimumBalance(token.MintSize), token.MintSize, solana.TokenProgramID),
		token.InitializeMint(n.mint, n.cfg.Pool.Decimals, n.mintAuthority),
	); err != nil {
		return err
	}
	if err := n.exec("create fee accounts", []solana.Pubkey{n.manager, n.treasury, n.developer},
		n.createTokenAccount(n.manager, n.treasury),
		token.InitializeAccount(n.treasury, n.mint, n.manager),
		n.createTokenAccount(n.manager, n.developer),
		token.InitializeAccount(n.developer, n.mint, n.manager),
	); err != nil {
		return err
	}
	if err := n.exec("fund reserve", []solana.Pubkey{n.manager},
		system.Transfer(n.manager, n.reserve, rent.MinimumBalance(0)),
	); err != nil {
		return err
	}

	pc := n.cfg.Pool
	if err := n.exec("initialize", []solana.Pubkey{n.manager, n.key},
		stakepool.Initialize(n.program.ID(), stakepool.InitializeAccounts{
			Pool:      n.key,
			Manager:   n.manager,
			Mint:      n.mint,
			Treasury:  n.treasury,
			Developer: n.developer,
			Reserve:   n.reserve,
		}, pc.FeePolicy, pc.MaxValidators, pc.MaxMaintainers),
	); err != nil {
		return err
	}
	logger.Info("pool initialized", "pool", n.key, "mint", n.mint, "reserve", n.reserve)

	for _, v := range pc.Validators {
		if err := n.addValidator(v); err != nil {
			return err
		}
	}
	for _, name := range pc.Maintainers {
		if err := n.exec("add maintainer "+name, []solana.Pubkey{n.manager},
			stakepool.AddMaintainer(n.program.ID(), n.key, n.manager, keyOf(name)),
		); err != nil {
			return err
		}
	}
	return n.updateExchangeRate()
}

func (n *poolNode) createTokenAccount(payer, account solana.Pubkey) runtime.Instruction {
	return system.CreateAccount(payer, account, n.rt.Rent().MinimumBalance(token.AccountSize), token.AccountSize, solana.TokenProgramID)
}

// addValidator creates the vote and fee accounts of v and registers it.
func (n *poolNode) addValidator(v validatorConfig) error {
	var (
		node        = keyOf(v.Name)
		voteAccount = keyOf(v.Name + "/vote")
		feeAccount  = keyOf(v.Name + "/fee")
		rent        = n.rt.Rent()
	)
	return n.exec("add validator "+v.Name, []solana.Pubkey{n.manager, node, voteAccount, feeAccount},
		system.CreateAccount(n.manager, voteAccount, rent.MinimumBalance(vote.StateSize), vote.StateSize, solana.VoteProgramID),
		vote.InitializeAccount(voteAccount, node, node, v.Commission),
		n.createTokenAccount(n.manager, feeAccount),
		token.InitializeAccount(feeAccount, n.mint, node),
		stakepool.AddValidator(n.program.ID(), n.key, n.manager, voteAccount, feeAccount),
	)
}

// updateExchangeRate refreshes the rate snapshot if the clock moved past it.
func (n *poolNode) updateExchangeRate() error {
	pool, err := n.state()
	if err != nil {
		return err
	}
	if pool.ExchangeRate.ComputedInEpoch >= n.rt.Clock().Epoch {
		return nil
	}
	return n.exec("update exchange rate", nil,
		stakepool.UpdateExchangeRate(n.program.ID(), n.key, n.reserve, n.mint),
	)
}

func (n *poolNode) stTokenAccount(depositor string) solana.Pubkey {
	return keyOf(depositor + "/" + n.cfg.Pool.Account)
}

// runDeposits executes the configured deposits concurrently. Failed deposits
// are logged and do not stop the others.
func (n *poolNode) runDeposits(ctx context.Context) error {
	deposits := n.cfg.Deposits
	if len(deposits) == 0 {
		return nil
	}

	created := make(map[solana.Pubkey]bool)
	for _, d := range deposits {
		user, recipient := keyOf(d.From), n.stTokenAccount(d.From)
		if created[recipient] {
			continue
		}
		acc, err := n.rt.Account(recipient)
		if err != nil {
			return err
		}
		if acc.Owner != solana.TokenProgramID {
			if err := n.exec("create token account for "+d.From, []solana.Pubkey{user, recipient},
				n.createTokenAccount(user, recipient),
				token.InitializeAccount(recipient, n.mint, user),
			); err != nil {
				return err
			}
		}
		created[recipient] = true
	}

	txs := make([]*runtime.Transaction, 0, len(deposits))
	for _, d := range deposits {
		user := keyOf(d.From)
		txs = append(txs, runtime.NewTransaction([]solana.Pubkey{user},
			stakepool.Deposit(n.program.ID(), stakepool.DepositAccounts{
				Pool:          n.key,
				User:          user,
				Recipient:     n.stTokenAccount(d.From),
				Mint:          n.mint,
				Reserve:       n.reserve,
				MintAuthority: n.mintAuthority,
			}, d.Amount),
		))
	}

	var failed int
	for i, res := range n.rt.ExecuteAll(ctx, txs) {
		if res.Err != nil {
			failed++
			logger.Warn("deposit failed", "from", deposits[i].From, "amount", deposits[i].Amount, "err", res.Err)
			continue
		}
		logger.Info("deposit executed", "from", deposits[i].From, "amount", deposits[i].Amount)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Info("deposits done", "total", len(deposits), "failed", failed)
	return nil
}

func (n *poolNode) state() (*stakepool.Pool, error) {
	acc, err := n.rt.Account(n.key)
	if err != nil {
		return nil, err
	}
	return stakepool.DecodePool(acc.Data)
}

