// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import "github.com/liquidstake/pool/solana"

// FeePolicy splits staking rewards in percent. The appreciation share is
// retained by the pool and raises the exchange rate.
type FeePolicy struct {
	TreasuryFee       uint32 `yaml:"treasury"`
	ValidationFee     uint32 `yaml:"validation"`
	DeveloperFee      uint32 `yaml:"developer"`
	AppreciationShare uint32 `yaml:"appreciation"`
}

// Validate checks the four parts partition 100%.
func (p FeePolicy) Validate() error {
	sum := uint64(p.TreasuryFee) + uint64(p.ValidationFee) + uint64(p.DeveloperFee) + uint64(p.AppreciationShare)
	if sum != 100 {
		return ErrInvalidFeeAmount
	}
	return nil
}

// FeeRecipients are the token accounts paid treasury and developer fees.
type FeeRecipients struct {
	Treasury  solana.Pubkey
	Developer solana.Pubkey
}
