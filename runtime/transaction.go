// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"github.com/pkg/errors"

	"github.com/liquidstake/pool/solana"
)

// AccountMeta describes how an instruction uses an account.
type AccountMeta struct {
	Pubkey     solana.Pubkey
	IsSigner   bool
	IsWritable bool
}

// NewAccountMeta is a shortcut to build an AccountMeta.
func NewAccountMeta(key solana.Pubkey, signer, writable bool) AccountMeta {
	return AccountMeta{Pubkey: key, IsSigner: signer, IsWritable: writable}
}

// Instruction is a single program call.
type Instruction struct {
	ProgramID solana.Pubkey
	Accounts  []AccountMeta
	Data      []byte
}

// Transaction groups instructions that are applied atomically.
// Signers lists the identities that signed the transaction.
type Transaction struct {
	Instructions []Instruction
	Signers      []solana.Pubkey
}

// NewTransaction creates a transaction.
func NewTransaction(signers []solana.Pubkey, instructions ...Instruction) *Transaction {
	return &Transaction{Instructions: instructions, Signers: signers}
}

// Receipt is the outcome of an executed transaction.
type Receipt struct {
	Logs []string
}

// resolvedTransaction is a transaction that passed basic validation.
type resolvedTransaction struct {
	tx      *Transaction
	signers map[solana.Pubkey]bool
}

// resolveTransaction performs validations that do not need the ledger.
func resolveTransaction(tx *Transaction) (*resolvedTransaction, error) {
	if tx == nil || len(tx.Instructions) == 0 {
		return nil, ErrEmptyTransaction
	}
	signers := make(map[solana.Pubkey]bool, len(tx.Signers))
	for _, s := range tx.Signers {
		signers[s] = true
	}
	for _, ix := range tx.Instructions {
		for _, meta := range ix.Accounts {
			if meta.IsSigner && !signers[meta.Pubkey] {
				return nil, errors.Wrapf(ErrMissingRequiredSignature, "account %v", meta.Pubkey)
			}
		}
	}
	return &resolvedTransaction{tx: tx, signers: signers}, nil
}
