// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package stakepool implements the liquid staking pool program.
//
// Users deposit lamports into the pool reserve and receive pool tokens at the
// exchange rate of the current epoch. The pool manager administers bounded
// registries of validators and maintainers.
package stakepool

import (
	"github.com/near/borsh-go"

	"github.com/liquidstake/pool/log"
	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

var logger = log.WithContext("pkg", "stakepool")

// DefaultProgramID is the id the pool program is deployed at.
var DefaultProgramID = solana.MustPubkeyFromBase58("Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS")

const derivedAddressCacheSize = 1024

type handler struct {
	name    string
	args    func() any
	process func(p *Program, ctx *runtime.InvokeContext, args any) error
}

var handlers = map[[8]byte]handler{}

func register(name string, args func() any, process func(p *Program, ctx *runtime.InvokeContext, args any) error) {
	handlers[instructionDiscriminator(name)] = handler{name: name, args: args, process: process}
}

func init() {
	register(nameInitialize, func() any { return &initializeArgs{} },
		func(p *Program, ctx *runtime.InvokeContext, args any) error {
			return p.initialize(ctx, args.(*initializeArgs))
		})
	register(nameDeposit, func() any { return &depositArgs{} },
		func(p *Program, ctx *runtime.InvokeContext, args any) error {
			return p.deposit(ctx, args.(*depositArgs).Amount)
		})
	register(nameAddValidator, nil,
		func(p *Program, ctx *runtime.InvokeContext, _ any) error { return p.addValidator(ctx) })
	register(nameRemoveValidator, nil,
		func(p *Program, ctx *runtime.InvokeContext, _ any) error { return p.removeValidator(ctx) })
	register(nameDeactivateValidator, nil,
		func(p *Program, ctx *runtime.InvokeContext, _ any) error { return p.deactivateValidator(ctx) })
	register(nameAddMaintainer, nil,
		func(p *Program, ctx *runtime.InvokeContext, _ any) error { return p.addMaintainer(ctx) })
	register(nameRemoveMaintainer, nil,
		func(p *Program, ctx *runtime.InvokeContext, _ any) error { return p.removeMaintainer(ctx) })
	register(nameChangeFeePolicy, func() any { return &changeFeePolicyArgs{} },
		func(p *Program, ctx *runtime.InvokeContext, args any) error {
			return p.changeFeePolicy(ctx, args.(*changeFeePolicyArgs).FeePolicy)
		})
	register(nameUpdateExchangeRate, nil,
		func(p *Program, ctx *runtime.InvokeContext, _ any) error { return p.updateExchangeRate(ctx) })
}

// Program is the pool program deployed at one program id.
type Program struct {
	id      solana.Pubkey
	deriver *AddressDeriver
}

var _ runtime.Program = (*Program)(nil)

// New creates the program deployed at programID.
func New(programID solana.Pubkey) (*Program, error) {
	deriver, err := NewAddressDeriver(programID, derivedAddressCacheSize)
	if err != nil {
		return nil, err
	}
	return &Program{id: programID, deriver: deriver}, nil
}

func (p *Program) ID() solana.Pubkey { return p.id }

// Deriver returns the derived address memo of the program.
func (p *Program) Deriver() *AddressDeriver { return p.deriver }

func (p *Program) Process(ctx *runtime.InvokeContext, data []byte) (err error) {
	if len(data) < 8 {
		return ErrInvalidInstruction
	}
	h, ok := handlers[[8]byte(data[:8])]
	if !ok {
		return ErrInvalidInstruction
	}
	defer func() {
		result := "success"
		if err != nil {
			result = "failed"
		}
		metricInstructionCount().AddWithLabel(1, map[string]string{"instruction": h.name, "result": result})
	}()

	var args any
	if h.args != nil {
		args = h.args()
		if err := borsh.Deserialize(args, data[8:]); err != nil {
			return ErrInvalidInstruction
		}
	}
	return h.process(p, ctx, args)
}

// loadPool validates and decodes the pool account at index 0.
func (p *Program) loadPool(ctx *runtime.InvokeContext) (*runtime.AccountInfo, *Pool, error) {
	accs, err := validateAccounts(ctx, rule(0, "pool", ownedBy(ctx.ProgramID(), ErrInvalidOwner)))
	if err != nil {
		return nil, nil, err
	}
	info := accs.get("pool")
	pool, err := DecodePool(info.Data)
	if err != nil {
		return nil, nil, err
	}
	return info, pool, nil
}

// loadManaged loads the pool and checks the manager signed at index 1.
func (p *Program) loadManaged(ctx *runtime.InvokeContext) (*runtime.AccountInfo, *Pool, error) {
	info, pool, err := p.loadPool(ctx)
	if err != nil {
		return nil, nil, err
	}
	if _, err := validateAccounts(ctx,
		rule(1, "manager", isSigner(ErrUnauthorized), hasAddress(pool.Manager, ErrUnauthorized)),
	); err != nil {
		return nil, nil, err
	}
	return info, pool, nil
}
