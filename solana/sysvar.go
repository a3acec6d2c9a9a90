// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solana

// AccountStorageOverhead is the number of bytes charged for every account on top of its data.
const AccountStorageOverhead = 128

// Rent describes the storage-rent model of the ledger.
type Rent struct {
	LamportsPerByteYear uint64  `yaml:"lamports-per-byte-year"`
	ExemptionThreshold  float64 `yaml:"exemption-threshold"`
	BurnPercent         uint8   `yaml:"burn-percent"`
}

// DefaultRent returns the mainnet rent parameters.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: 3480,
		ExemptionThreshold:  2.0,
		BurnPercent:         50,
	}
}

// MinimumBalance returns the lamports an account holding dataLen bytes needs
// to be exempt from rent collection.
func (r Rent) MinimumBalance(dataLen uint64) uint64 {
	bytes := AccountStorageOverhead + dataLen
	return uint64(float64(bytes*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// IsExempt returns whether balance covers the rent exemption of dataLen bytes.
func (r Rent) IsExempt(balance, dataLen uint64) bool {
	return balance >= r.MinimumBalance(dataLen)
}

// Clock is the ledger time as seen by programs.
type Clock struct {
	Slot          uint64
	Epoch         uint64
	UnixTimestamp int64
}
