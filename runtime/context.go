// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/liquidstake/pool/ledger"
	"github.com/liquidstake/pool/solana"
)

// MaxInvokeDepth limits nesting of cross-program invocations, the top level included.
const MaxInvokeDepth = 4

// AccountInfo is an account as passed to a program.
// Programs mutate the embedded Account in place.
type AccountInfo struct {
	Key        solana.Pubkey
	IsSigner   bool
	IsWritable bool
	*ledger.Account
}

// InvokeContext is the environment of one executing instruction.
type InvokeContext struct {
	rt        *Runtime
	receipt   *Receipt
	programID solana.Pubkey
	depth     int

	accounts []*AccountInfo
	working  map[solana.Pubkey]*ledger.Account
	pre      map[solana.Pubkey]*ledger.Account
	writable map[solana.Pubkey]bool
	signers  map[solana.Pubkey]bool
}

func newInvokeContext(rt *Runtime, receipt *Receipt, programID solana.Pubkey, depth int) *InvokeContext {
	return &InvokeContext{
		rt:        rt,
		receipt:   receipt,
		programID: programID,
		depth:     depth,
		working:   make(map[solana.Pubkey]*ledger.Account),
		pre:       make(map[solana.Pubkey]*ledger.Account),
		writable:  make(map[solana.Pubkey]bool),
		signers:   make(map[solana.Pubkey]bool),
	}
}

// load adds an account of the instruction. Repeated keys share one working copy.
func (c *InvokeContext) load(meta AccountMeta) error {
	acc, ok := c.working[meta.Pubkey]
	if !ok {
		var err error
		if acc, err = c.rt.ledger.GetAccount(meta.Pubkey); err != nil {
			return err
		}
		c.working[meta.Pubkey] = acc
		c.pre[meta.Pubkey] = acc.Copy()
	}
	if meta.IsWritable {
		c.writable[meta.Pubkey] = true
	}
	if meta.IsSigner {
		c.signers[meta.Pubkey] = true
	}
	c.accounts = append(c.accounts, &AccountInfo{
		Key:        meta.Pubkey,
		IsSigner:   meta.IsSigner,
		IsWritable: meta.IsWritable,
		Account:    acc,
	})
	return nil
}

// ProgramID returns the id of the executing program.
func (c *InvokeContext) ProgramID() solana.Pubkey { return c.programID }

// Accounts returns the accounts in the order the caller passed them.
func (c *InvokeContext) Accounts() []*AccountInfo { return c.accounts }

// Account returns the i-th account of the instruction.
func (c *InvokeContext) Account(i int) (*AccountInfo, error) {
	if i < 0 || i >= len(c.accounts) {
		return nil, ErrNotEnoughAccountKeys
	}
	return c.accounts[i], nil
}

// Rent returns the rent sysvar.
func (c *InvokeContext) Rent() solana.Rent { return c.rt.rent }

// Clock returns the clock sysvar.
func (c *InvokeContext) Clock() solana.Clock { return c.rt.clock }

// Log appends a program log line to the transaction receipt.
func (c *InvokeContext) Log(msg string, kvs ...any) {
	var b strings.Builder
	fmt.Fprintf(&b, "Program %v log: %s", c.programID, msg)
	for i := 0; i+1 < len(kvs); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kvs[i], kvs[i+1])
	}
	c.receipt.Logs = append(c.receipt.Logs, b.String())
}

// Invoke calls another program from the executing one. Each entry of
// signerSeeds, bump included, signs for the address it derives under the
// calling program id.
func (c *InvokeContext) Invoke(ix Instruction, signerSeeds ...[][]byte) error {
	if c.depth >= MaxInvokeDepth {
		return ErrCallDepth
	}
	// the callee must observe what the caller changed so far
	if err := c.verifyAndStore(); err != nil {
		return err
	}

	signers := make(map[solana.Pubkey]bool, len(c.signers)+len(signerSeeds))
	for key := range c.signers {
		signers[key] = true
	}
	for _, seeds := range signerSeeds {
		addr, err := solana.CreateProgramAddress(seeds, c.programID)
		if err != nil {
			return errors.Wrap(err, "invalid signer seeds")
		}
		signers[addr] = true
	}
	for _, meta := range ix.Accounts {
		if _, ok := c.working[meta.Pubkey]; !ok {
			return errors.Wrapf(ErrMissingAccount, "account %v", meta.Pubkey)
		}
		if meta.IsWritable && !c.writable[meta.Pubkey] {
			return errors.Wrapf(ErrPrivilegeEscalation, "writable %v", meta.Pubkey)
		}
		if meta.IsSigner && !signers[meta.Pubkey] {
			return errors.Wrapf(ErrPrivilegeEscalation, "signer %v", meta.Pubkey)
		}
	}

	if err := c.rt.process(&ix, signers, c.receipt, c.depth+1); err != nil {
		return err
	}

	// reload in place so AccountInfo holders see the callee's changes
	for key, acc := range c.working {
		fresh, err := c.rt.ledger.GetAccount(key)
		if err != nil {
			return err
		}
		*acc = *fresh
		c.pre[key] = fresh.Copy()
	}
	return nil
}

// verifyAndStore checks the changes made by the program against the account
// ownership rules and writes them to the ledger.
func (c *InvokeContext) verifyAndStore() error {
	var preSum, postSum uint64
	for key, post := range c.working {
		pre := c.pre[key]
		preSum += pre.Lamports
		postSum += post.Lamports
		if post.Equal(pre) {
			continue
		}
		if !c.writable[key] {
			return errors.Wrapf(ErrReadonlyDataModified, "account %v", key)
		}
		if post.Executable != pre.Executable {
			return errors.Wrapf(ErrExecutableModified, "account %v", key)
		}
		if pre.Owner != c.programID {
			if post.Owner != pre.Owner || !equalData(pre.Data, post.Data) {
				return errors.Wrapf(ErrExternalAccountDataModified, "account %v", key)
			}
			if post.Lamports < pre.Lamports {
				return errors.Wrapf(ErrExternalAccountLamportSpend, "account %v", key)
			}
		} else if post.Owner != pre.Owner && !isZeroed(post.Data) {
			return errors.Wrapf(ErrInvalidOwnerChange, "account %v", key)
		}
	}
	if preSum != postSum {
		return ErrUnbalancedInstruction
	}

	for key, post := range c.working {
		if post.Equal(c.pre[key]) {
			continue
		}
		c.rt.ledger.SetAccount(key, post)
		c.pre[key] = post.Copy()
	}
	return nil
}

func equalData(a, b []byte) bool {
	return len(a) == len(b) && string(a) == string(b)
}

func isZeroed(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
