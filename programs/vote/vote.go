// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package vote implements vote account creation. Voting itself is not modeled.
package vote

import (
	"encoding/binary"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"

	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

// InstructionInitializeAccount is the only instruction tag.
const InstructionInitializeAccount uint32 = 0

type initializeAccountData struct {
	Instruction          uint32
	Node                 solana.Pubkey
	AuthorizedWithdrawer solana.Pubkey
	Commission           uint8
}

// InitializeAccount writes the vote state into an allocated vote account.
// The validator node signs.
func InitializeAccount(voteAccount, node, authorizedWithdrawer solana.Pubkey, commission uint8) runtime.Instruction {
	data, err := borsh.Serialize(initializeAccountData{
		Instruction:          InstructionInitializeAccount,
		Node:                 node,
		AuthorizedWithdrawer: authorizedWithdrawer,
		Commission:           commission,
	})
	if err != nil {
		panic(err)
	}
	return runtime.Instruction{
		ProgramID: solana.VoteProgramID,
		Accounts: []runtime.AccountMeta{
			runtime.NewAccountMeta(voteAccount, false, true),
			runtime.NewAccountMeta(node, true, false),
		},
		Data: data,
	}
}

// Program is the vote program.
type Program struct{}

var _ runtime.Program = (*Program)(nil)

// New creates the vote program.
func New() *Program { return &Program{} }

func (p *Program) ID() solana.Pubkey { return solana.VoteProgramID }

func (p *Program) Process(ctx *runtime.InvokeContext, data []byte) error {
	if len(data) < 4 || binary.LittleEndian.Uint32(data) != InstructionInitializeAccount {
		return ErrInvalidInstruction
	}
	var args initializeAccountData
	if err := borsh.Deserialize(&args, data); err != nil {
		return ErrInvalidInstruction
	}
	return initializeAccount(ctx, args)
}

func initializeAccount(ctx *runtime.InvokeContext, args initializeAccountData) error {
	acc, err := ctx.Account(0)
	if err != nil {
		return err
	}
	node, err := ctx.Account(1)
	if err != nil {
		return err
	}
	if acc.Owner != solana.VoteProgramID {
		return ErrIncorrectProgramID
	}
	if len(acc.Data) < StateSize {
		return ErrInvalidAccountData
	}
	if binary.LittleEndian.Uint32(acc.Data) != 0 {
		return ErrAccountAlreadyInitialized
	}
	if node.Key != args.Node || !node.IsSigner {
		return errors.Wrapf(runtime.ErrMissingRequiredSignature, "node %v", args.Node)
	}
	if args.Commission > 100 {
		return ErrInvalidCommission
	}
	head, err := borsh.Serialize(PartialState{
		Version:              CurrentVersion,
		Node:                 args.Node,
		AuthorizedWithdrawer: args.AuthorizedWithdrawer,
		Commission:           args.Commission,
	})
	if err != nil {
		return err
	}
	copy(acc.Data, head)
	ctx.Log("initialize vote account", "address", acc.Key, "node", args.Node, "commission", args.Commission)
	return nil
}
