// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"github.com/pkg/errors"

	"github.com/liquidstake/pool/programs/token"
	"github.com/liquidstake/pool/runtime"
	"github.com/liquidstake/pool/solana"
)

// Check validates one account passed by the caller.
type Check func(acc *runtime.AccountInfo) error

// CheckResult is the outcome of the checks of one account.
type CheckResult struct {
	Name string
	Key  solana.Pubkey
	Err  error
}

// accountRule binds checks to the account at index.
type accountRule struct {
	index  int
	name   string
	checks []Check
}

func rule(index int, name string, checks ...Check) accountRule {
	return accountRule{index: index, name: name, checks: checks}
}

// validatedAccounts is the instruction accounts after the pipeline ran.
type validatedAccounts struct {
	byName  map[string]*runtime.AccountInfo
	results []CheckResult
}

func (v *validatedAccounts) get(name string) *runtime.AccountInfo {
	return v.byName[name]
}

// passed lists the accounts whose checks all succeeded.
func (v *validatedAccounts) passed() []string {
	names := make([]string, 0, len(v.results))
	for _, res := range v.results {
		if res.Err == nil {
			names = append(names, res.Name)
		}
	}
	return names
}

// validateAccounts runs rules in order and stops at the first failure,
// which is returned with the account name attached.
func validateAccounts(ctx *runtime.InvokeContext, rules ...accountRule) (*validatedAccounts, error) {
	v := &validatedAccounts{byName: make(map[string]*runtime.AccountInfo, len(rules))}
	for _, r := range rules {
		acc, err := ctx.Account(r.index)
		if err != nil {
			v.results = append(v.results, CheckResult{Name: r.name, Err: err})
			return v, errors.WithMessage(err, r.name)
		}
		res := CheckResult{Name: r.name, Key: acc.Key}
		for _, check := range r.checks {
			if res.Err = check(acc); res.Err != nil {
				break
			}
		}
		v.results = append(v.results, res)
		if res.Err != nil {
			logger.Debug("account check failed", "account", r.name, "key", acc.Key, "err", res.Err, "passed", v.passed())
			return v, errors.WithMessagef(res.Err, "%s %v", r.name, acc.Key)
		}
		v.byName[r.name] = acc
	}
	return v, nil
}

func isSigner(fail error) Check {
	return func(acc *runtime.AccountInfo) error {
		if !acc.IsSigner {
			return fail
		}
		return nil
	}
}

func hasAddress(want solana.Pubkey, fail error) Check {
	return func(acc *runtime.AccountInfo) error {
		if acc.Key != want {
			return fail
		}
		return nil
	}
}

func ownedBy(owner solana.Pubkey, fail error) Check {
	return func(acc *runtime.AccountInfo) error {
		if acc.Owner != owner {
			return fail
		}
		return nil
	}
}

// isMintWithAuthority checks acc is a token mint whose authority is want.
func isMintWithAuthority(want solana.Pubkey, fail error) Check {
	return func(acc *runtime.AccountInfo) error {
		if acc.Owner != solana.TokenProgramID {
			return fail
		}
		mint, err := token.DecodeMint(acc.Data)
		if err != nil {
			return fail
		}
		if authority, ok := mint.Authority(); !ok || authority != want {
			return fail
		}
		return nil
	}
}

// isTokenAccountOf checks acc is a token account of mint.
func isTokenAccountOf(mint solana.Pubkey, fail error) Check {
	return func(acc *runtime.AccountInfo) error {
		if acc.Owner != solana.TokenProgramID {
			return fail
		}
		ta, err := token.DecodeAccount(acc.Data)
		if err != nil || ta.Mint != mint {
			return fail
		}
		return nil
	}
}

func holdsAtLeast(lamports uint64, fail error) Check {
	return func(acc *runtime.AccountInfo) error {
		if acc.Lamports < lamports {
			return fail
		}
		return nil
	}
}
