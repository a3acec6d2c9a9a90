// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/liquidstake/pool/ledger"
	"github.com/liquidstake/pool/log"
	"github.com/liquidstake/pool/solana"
)

var logger = log.WithContext("pkg", "runtime")

// Runtime executes transactions against a ledger. Transactions are applied
// one at a time; each either commits fully or leaves the ledger untouched.
type Runtime struct {
	mu       sync.Mutex
	ledger   *ledger.Ledger
	programs map[solana.Pubkey]Program
	rent     solana.Rent
	clock    solana.Clock
}

// New create a Runtime object.
func New(l *ledger.Ledger, rent solana.Rent, programs ...Program) *Runtime {
	rt := &Runtime{
		ledger:   l,
		programs: make(map[solana.Pubkey]Program),
		rent:     rent,
	}
	for _, p := range programs {
		rt.programs[p.ID()] = p
	}
	return rt
}

// Register adds programs, replacing any registered under the same id.
func (rt *Runtime) Register(programs ...Program) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	for _, p := range programs {
		rt.programs[p.ID()] = p
	}
}

func (rt *Runtime) Rent() solana.Rent { return rt.rent }

// Clock returns the current clock.
func (rt *Runtime) Clock() solana.Clock {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.clock
}

// SetClock moves the ledger time.
func (rt *Runtime) SetClock(clock solana.Clock) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.clock = clock
}

// Account returns a copy of the committed account.
func (rt *Runtime) Account(key solana.Pubkey) (*ledger.Account, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.ledger.GetAccount(key)
}

// Airdrop credits lamports out of thin air. Used for genesis funding.
func (rt *Runtime) Airdrop(key solana.Pubkey, lamports uint64) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	acc, err := rt.ledger.GetAccount(key)
	if err != nil {
		return err
	}
	if acc.Lamports+lamports < acc.Lamports {
		return ErrLamportsOverflow
	}
	acc.Lamports += lamports
	rt.ledger.SetAccount(key, acc)
	return rt.ledger.Commit()
}

// Execute applies the transaction. On failure the returned error is an
// *InstructionError unless the transaction was rejected before execution.
func (rt *Runtime) Execute(tx *Transaction) (receipt *Receipt, err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "failed"
		}
		metricTxCount().AddWithLabel(1, map[string]string{"status": status})
		metricTxDuration().ObserveWithLabels(time.Since(start).Milliseconds(), map[string]string{"status": status})
	}()

	resolved, err := resolveTransaction(tx)
	if err != nil {
		return nil, err
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	receipt = &Receipt{}
	checkpoint := rt.ledger.NewCheckpoint()
	for i := range tx.Instructions {
		if err := rt.process(&tx.Instructions[i], resolved.signers, receipt, 1); err != nil {
			rt.ledger.RevertTo(checkpoint)
			logger.Debug("transaction failed", "instruction", i, "err", err)
			return receipt, &InstructionError{Index: i, Err: err}
		}
	}
	if err := rt.ledger.Commit(); err != nil {
		rt.ledger.RevertTo(checkpoint)
		return receipt, errors.Wrap(err, "commit")
	}
	logger.Debug("transaction executed", "instructions", len(tx.Instructions), "elapsed", time.Since(start))
	return receipt, nil
}

// Result is the outcome of one transaction submitted through ExecuteAll.
type Result struct {
	Receipt *Receipt
	Err     error
}

// ExecuteAll submits transactions concurrently. The runtime still applies
// them one at a time, in no particular order. Transactions not started when
// ctx is done fail with the context error.
func (rt *Runtime) ExecuteAll(ctx context.Context, txs []*Transaction) []Result {
	results := make([]Result, len(txs))

	var g errgroup.Group
	g.SetLimit(8)
	for i, tx := range txs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Receipt, results[i].Err = rt.Execute(tx)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// process executes one instruction, top level or nested.
func (rt *Runtime) process(ix *Instruction, signers map[solana.Pubkey]bool, receipt *Receipt, depth int) error {
	program, ok := rt.programs[ix.ProgramID]
	if !ok {
		return errors.Wrapf(ErrUnknownProgram, "program %v", ix.ProgramID)
	}

	ctx := newInvokeContext(rt, receipt, ix.ProgramID, depth)
	for _, meta := range ix.Accounts {
		if meta.IsSigner && !signers[meta.Pubkey] {
			return errors.Wrapf(ErrMissingRequiredSignature, "account %v", meta.Pubkey)
		}
		if err := ctx.load(meta); err != nil {
			return err
		}
	}

	receipt.Logs = append(receipt.Logs, fmt.Sprintf("Program %v invoke [%d]", ix.ProgramID, depth))
	logger.Trace("invoke program", "program", ix.ProgramID, "depth", depth, "accounts", len(ix.Accounts))

	if err := program.Process(ctx, ix.Data); err != nil {
		receipt.Logs = append(receipt.Logs, fmt.Sprintf("Program %v failed: %v", ix.ProgramID, err))
		return err
	}
	if err := ctx.verifyAndStore(); err != nil {
		receipt.Logs = append(receipt.Logs, fmt.Sprintf("Program %v failed: %v", ix.ProgramID, err))
		return err
	}
	receipt.Logs = append(receipt.Logs, fmt.Sprintf("Program %v success", ix.ProgramID))
	return nil
}
