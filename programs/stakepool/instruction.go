// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"github.com/near/borsh-go"

	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

// instruction names, also used as metric labels.
const (
	nameInitialize          = "initialize"
	nameDeposit             = "deposit"
	nameAddValidator        = "add_validator"
	nameRemoveValidator     = "remove_validator"
	nameDeactivateValidator = "deactivate_validator"
	nameAddMaintainer       = "add_maintainer"
	nameRemoveMaintainer    = "remove_maintainer"
	nameChangeFeePolicy     = "change_fee_policy"
	nameUpdateExchangeRate  = "update_exchange_rate"
)

func instructionDiscriminator(name string) [8]byte {
	return discriminator("global:" + name)
}

type initializeArgs struct {
	FeePolicy      FeePolicy
	MaxValidators  uint32
	MaxMaintainers uint32
}

type depositArgs struct {
	Amount uint64
}

type changeFeePolicyArgs struct {
	FeePolicy FeePolicy
}

func newInstruction(programID solana.Pubkey, name string, args any, metas ...runtime.AccountMeta) runtime.Instruction {
	d := instructionDiscriminator(name)
	data := d[:]
	if args != nil {
		encoded, err := borsh.Serialize(args)
		if err != nil {
			panic(err)
		}
		data = append(data, encoded...)
	}
	return runtime.Instruction{ProgramID: programID, Accounts: metas, Data: data}
}

func writable(key solana.Pubkey) runtime.AccountMeta { return runtime.NewAccountMeta(key, false, true) }
func readonly(key solana.Pubkey) runtime.AccountMeta { return runtime.NewAccountMeta(key, false, false) }
func signer(key solana.Pubkey) runtime.AccountMeta   { return runtime.NewAccountMeta(key, true, false) }

// InitializeAccounts are the accounts of Initialize.
type InitializeAccounts struct {
	Pool      solana.Pubkey
	Manager   solana.Pubkey
	Mint      solana.Pubkey
	Treasury  solana.Pubkey
	Developer solana.Pubkey
	Reserve   solana.Pubkey
}

// Initialize creates a pool. Pool and manager sign; the manager pays for the pool account.
func Initialize(programID solana.Pubkey, accs InitializeAccounts, policy FeePolicy, maxValidators, maxMaintainers uint32) runtime.Instruction {
	return newInstruction(programID, nameInitialize,
		initializeArgs{FeePolicy: policy, MaxValidators: maxValidators, MaxMaintainers: maxMaintainers},
		runtime.NewAccountMeta(accs.Pool, true, true),
		runtime.NewAccountMeta(accs.Manager, true, true),
		readonly(accs.Mint),
		readonly(accs.Treasury),
		readonly(accs.Developer),
		readonly(accs.Reserve),
	)
}

// DepositAccounts are the accounts of Deposit.
type DepositAccounts struct {
	Pool          solana.Pubkey
	User          solana.Pubkey
	Recipient     solana.Pubkey
	Mint          solana.Pubkey
	Reserve       solana.Pubkey
	MintAuthority solana.Pubkey
}

// Deposit moves amount lamports from the user to the reserve and mints pool
// tokens to the recipient.
func Deposit(programID solana.Pubkey, accs DepositAccounts, amount uint64) runtime.Instruction {
	return newInstruction(programID, nameDeposit, depositArgs{Amount: amount},
		writable(accs.Pool),
		runtime.NewAccountMeta(accs.User, true, true),
		writable(accs.Recipient),
		writable(accs.Mint),
		writable(accs.Reserve),
		readonly(accs.MintAuthority),
	)
}

// AddValidator enrolls the validator of voteAccount. Fees are paid to feeAccount.
func AddValidator(programID, pool, manager, voteAccount, feeAccount solana.Pubkey) runtime.Instruction {
	return newInstruction(programID, nameAddValidator, nil,
		writable(pool), signer(manager), readonly(voteAccount), readonly(feeAccount))
}

// RemoveValidator drops the validator of voteAccount.
func RemoveValidator(programID, pool, manager, voteAccount solana.Pubkey) runtime.Instruction {
	return newInstruction(programID, nameRemoveValidator, nil,
		writable(pool), signer(manager), readonly(voteAccount))
}

// DeactivateValidator stops new stake going to the validator of voteAccount.
func DeactivateValidator(programID, pool, manager, voteAccount solana.Pubkey) runtime.Instruction {
	return newInstruction(programID, nameDeactivateValidator, nil,
		writable(pool), signer(manager), readonly(voteAccount))
}

func AddMaintainer(programID, pool, manager, maintainer solana.Pubkey) runtime.Instruction {
	return newInstruction(programID, nameAddMaintainer, nil,
		writable(pool), signer(manager), readonly(maintainer))
}

func RemoveMaintainer(programID, pool, manager, maintainer solana.Pubkey) runtime.Instruction {
	return newInstruction(programID, nameRemoveMaintainer, nil,
		writable(pool), signer(manager), readonly(maintainer))
}

// ChangeFeePolicy replaces the fee policy of the pool.
func ChangeFeePolicy(programID, pool, manager solana.Pubkey, policy FeePolicy) runtime.Instruction {
	return newInstruction(programID, nameChangeFeePolicy, changeFeePolicyArgs{FeePolicy: policy},
		writable(pool), signer(manager))
}

// UpdateExchangeRate snapshots the reserve and mint supply. Anyone may call
// it, once per epoch.
func UpdateExchangeRate(programID, pool, reserve, mint solana.Pubkey) runtime.Instruction {
	return newInstruction(programID, nameUpdateExchangeRate, nil,
		writable(pool), readonly(reserve), readonly(mint))
}
