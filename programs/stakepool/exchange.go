// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import "github.com/holiman/uint256"

// ExchangeRate is the base asset to derivative token rate, fixed for the
// duration of an epoch.
type ExchangeRate struct {
	ComputedInEpoch uint64
	StTokenSupply   uint64
	BaseBalance     uint64
}

// Exchange converts a base asset amount to derivative tokens, rounding down.
// The rate is 1:1 while either side of the snapshot is zero.
func (r ExchangeRate) Exchange(amount uint64) (uint64, error) {
	if r.StTokenSupply == 0 || r.BaseBalance == 0 {
		return amount, nil
	}
	return mulDiv(amount, r.StTokenSupply, r.BaseBalance)
}

// mulDiv returns floor(a*b/c) without intermediate overflow.
func mulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ErrCalculationFailure
	}
	x := new(uint256.Int).SetUint64(a)
	x.Mul(x, uint256.NewInt(b))
	x.Div(x, uint256.NewInt(c))
	if !x.IsUint64() {
		return 0, ErrCalculationFailure
	}
	return x.Uint64(), nil
}
