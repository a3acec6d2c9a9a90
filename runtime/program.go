// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import "github.com/liquidstake/pool/solana"

// Program is on-ledger logic addressed by its id.
// Account changes made before Process returns an error are discarded together
// with the rest of the transaction.
type Program interface {
	ID() solana.Pubkey
	Process(ctx *InvokeContext, data []byte) error
}
