// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"math"

	"github.com/liquidstake/pool/metrics"
)

var (
	metricInstructionCount = metrics.LazyLoadCounterVec("stakepool_instruction_count", []string{"instruction", "result"})
	metricDepositLamports  = metrics.LazyLoadCounter("stakepool_deposit_lamports")
	metricValidators       = metrics.LazyLoadGauge("stakepool_validators")
)

// addLamports adds amount to a counter in int64 steps, a counter rejects
// negative increments.
func addLamports(counter metrics.CountMeter, amount uint64) {
	for amount > math.MaxInt64 {
		counter.Add(math.MaxInt64)
		amount -= math.MaxInt64
	}
	counter.Add(int64(amount))
}
