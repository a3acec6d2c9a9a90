// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	"github.com/near/borsh-go"

	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

// instruction tags, shared with the SPL token program.
var (
	tagInitializeMint    = byte(sdktoken.InstructionInitializeMint)
	tagInitializeAccount = byte(sdktoken.InstructionInitializeAccount)
	tagTransfer          = byte(sdktoken.InstructionTransfer)
	tagMintTo            = byte(sdktoken.InstructionMintTo)
)

type initializeMintData struct {
	Instruction           uint8
	Decimals              uint8
	MintAuthority         solana.Pubkey
	FreezeAuthorityOption uint8
	FreezeAuthority       solana.Pubkey
}

type amountData struct {
	Instruction uint8
	Amount      uint64
}

func mustSerialize(v any) []byte {
	data, err := borsh.Serialize(v)
	if err != nil {
		panic(err)
	}
	return data
}

// InitializeMint sets up an allocated mint account. The mint has no freeze authority.
func InitializeMint(mint solana.Pubkey, decimals uint8, mintAuthority solana.Pubkey) runtime.Instruction {
	return runtime.Instruction{
		ProgramID: solana.TokenProgramID,
		Accounts: []runtime.AccountMeta{
			runtime.NewAccountMeta(mint, false, true),
		},
		Data: mustSerialize(initializeMintData{
			Instruction:   tagInitializeMint,
			Decimals:      decimals,
			MintAuthority: mintAuthority,
		}),
	}
}

// InitializeAccount sets up an allocated token account of mint held by owner.
func InitializeAccount(account, mint, owner solana.Pubkey) runtime.Instruction {
	return runtime.Instruction{
		ProgramID: solana.TokenProgramID,
		Accounts: []runtime.AccountMeta{
			runtime.NewAccountMeta(account, false, true),
			runtime.NewAccountMeta(mint, false, false),
			runtime.NewAccountMeta(owner, false, false),
		},
		Data: []byte{tagInitializeAccount},
	}
}

// Transfer moves tokens between accounts of the same mint. The source owner signs.
func Transfer(source, destination, owner solana.Pubkey, amount uint64) runtime.Instruction {
	return runtime.Instruction{
		ProgramID: solana.TokenProgramID,
		Accounts: []runtime.AccountMeta{
			runtime.NewAccountMeta(source, false, true),
			runtime.NewAccountMeta(destination, false, true),
			runtime.NewAccountMeta(owner, true, false),
		},
		Data: mustSerialize(amountData{Instruction: tagTransfer, Amount: amount}),
	}
}

// MintTo creates new tokens into destination. The mint authority signs.
func MintTo(mint, destination, authority solana.Pubkey, amount uint64) runtime.Instruction {
	return runtime.Instruction{
		ProgramID: solana.TokenProgramID,
		Accounts: []runtime.AccountMeta{
			runtime.NewAccountMeta(mint, false, true),
			runtime.NewAccountMeta(destination, false, true),
			runtime.NewAccountMeta(authority, true, false),
		},
		Data: mustSerialize(amountData{Instruction: tagMintTo, Amount: amount}),
	}
}
