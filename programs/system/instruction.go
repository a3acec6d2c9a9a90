// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package system

import (
	"encoding/binary"

	"github.com/near/borsh-go"

	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

// instruction tags, little endian u32.
const (
	InstructionCreateAccount uint32 = 0
	InstructionAssign        uint32 = 1
	InstructionTransfer      uint32 = 2
)

type createAccountData struct {
	Instruction uint32
	Lamports    uint64
	Space       uint64
	Owner       solana.Pubkey
}

type assignData struct {
	Instruction uint32
	Owner       solana.Pubkey
}

type transferData struct {
	Instruction uint32
	Lamports    uint64
}

func mustSerialize(v any) []byte {
	data, err := borsh.Serialize(v)
	if err != nil {
		panic(err)
	}
	return data
}

// CreateAccount moves lamports from a funded account into a new account of
// space zeroed bytes assigned to owner. Both accounts must sign.
func CreateAccount(from, newAccount solana.Pubkey, lamports, space uint64, owner solana.Pubkey) runtime.Instruction {
	return runtime.Instruction{
		ProgramID: solana.SystemProgramID,
		Accounts: []runtime.AccountMeta{
			runtime.NewAccountMeta(from, true, true),
			runtime.NewAccountMeta(newAccount, true, true),
		},
		Data: mustSerialize(createAccountData{
			Instruction: InstructionCreateAccount,
			Lamports:    lamports,
			Space:       space,
			Owner:       owner,
		}),
	}
}

// Assign changes the owner of a data-less account.
func Assign(account, owner solana.Pubkey) runtime.Instruction {
	return runtime.Instruction{
		ProgramID: solana.SystemProgramID,
		Accounts: []runtime.AccountMeta{
			runtime.NewAccountMeta(account, true, true),
		},
		Data: mustSerialize(assignData{Instruction: InstructionAssign, Owner: owner}),
	}
}

// Transfer moves lamports between accounts.
func Transfer(from, to solana.Pubkey, lamports uint64) runtime.Instruction {
	return runtime.Instruction{
		ProgramID: solana.SystemProgramID,
		Accounts: []runtime.AccountMeta{
			runtime.NewAccountMeta(from, true, true),
			runtime.NewAccountMeta(to, false, true),
		},
		Data: mustSerialize(transferData{Instruction: InstructionTransfer, Lamports: lamports}),
	}
}

func decodeTag(data []byte) (uint32, error) {
	if len(data) < 4 {
		return 0, ErrInvalidInstruction
	}
	return binary.LittleEndian.Uint32(data), nil
}

func decode(data []byte, v any) error {
	if err := borsh.Deserialize(v, data); err != nil {
		return ErrInvalidInstruction
	}
	return nil
}
