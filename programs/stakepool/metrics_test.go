// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingCounter []int64

func (c *recordingCounter) Add(i int64) { *c = append(*c, i) }

func TestAddLamports(t *testing.T) {
	for _, amount := range []uint64{0, 1, math.MaxInt64, math.MaxInt64 + 1, math.MaxUint64} {
		var counter recordingCounter
		addLamports(&counter, amount)

		var sum uint64
		for _, i := range counter {
			assert.GreaterOrEqual(t, i, int64(0), "amount %d", amount)
			sum += uint64(i)
		}
		assert.Equal(t, amount, sum)
	}
}
