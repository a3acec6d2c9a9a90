// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import "github.com/liquidstake/pool/metrics"

var (
	metricTxCount    = metrics.LazyLoadCounterVec("runtime_tx_count", []string{"status"})
	metricTxDuration = metrics.LazyLoadHistogramVec("runtime_tx_duration_ms", []string{"status"}, metrics.Bucket1s)
)
