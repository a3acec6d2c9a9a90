// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"bytes"
	"crypto/sha256"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"

	"github.com/liquidstake/pool/solana"
)

// PoolVersion is the layout version written by this program.
const PoolVersion uint8 = 0

// DepositBuckets is the number of deposit histogram buckets.
const DepositBuckets = 12

// poolDiscriminator tags pool accounts.
var poolDiscriminator = discriminator("account:Pool")

func discriminator(name string) [8]byte {
	var d [8]byte
	sum := sha256.Sum256([]byte(name))
	copy(d[:], sum[:8])
	return d
}

// DepositHistogram counts deposits by power-of-ten lamport buckets.
// Bucket i holds amounts up to 10^i, the last one everything above.
type DepositHistogram struct {
	Counts [DepositBuckets]uint64
	Count  uint64
}

func (h *DepositHistogram) observe(amount uint64) {
	bound := uint64(1)
	i := 0
	for ; i < DepositBuckets-1; i++ {
		if amount <= bound {
			break
		}
		bound *= 10
	}
	h.Counts[i]++
	h.Count++
}

// Metrics are informational counters. No program logic depends on them.
type Metrics struct {
	TotalDeposited uint64
	DepositAmount  DepositHistogram
}

func (m *Metrics) observeDeposit(amount uint64) error {
	if m.TotalDeposited+amount < m.TotalDeposited {
		return ErrCalculationFailure
	}
	m.TotalDeposited += amount
	m.DepositAmount.observe(amount)
	return nil
}

// Pool is the state of one liquid staking pool.
// Manager, StTokenMint and FeeRecipients never change after Initialize.
type Pool struct {
	Version       uint8
	Manager       solana.Pubkey
	StTokenMint   solana.Pubkey
	ExchangeRate  ExchangeRate
	FeePolicy     FeePolicy
	FeeRecipients FeeRecipients
	Metrics       Metrics
	Validators    Validators
	Maintainers   Maintainers
}

// PoolSize returns the account size needed by a pool with the given capacities.
func PoolSize(maxValidators, maxMaintainers uint32) uint64 {
	return uint64(len(poolDiscriminator)) +
		poolConstantSize +
		uint64(maxValidators)*validatorEntrySize +
		uint64(maxMaintainers)*maintainerEntrySize
}

var (
	poolConstantSize    = serializedSize(Pool{})
	validatorEntrySize  = serializedSize(PubkeyAndEntry[Validator]{})
	maintainerEntrySize = serializedSize(PubkeyAndEntry[Maintainer]{})
)

func serializedSize(v any) uint64 {
	data, err := borsh.Serialize(v)
	if err != nil {
		panic(err)
	}
	return uint64(len(data))
}

// DecodePool parses a pool account.
func DecodePool(data []byte) (*Pool, error) {
	if len(data) < len(poolDiscriminator) || !bytes.Equal(data[:8], poolDiscriminator[:]) {
		return nil, ErrInvalidAccountData
	}
	payload := data[8:]
	if len(payload) == 0 || payload[0] != PoolVersion {
		return nil, ErrInvalidAccountData
	}
	var p Pool
	if err := borsh.Deserialize(&p, payload); err != nil {
		return nil, errors.WithMessage(ErrInvalidAccountData, err.Error())
	}
	return &p, nil
}

// encodeTo writes the pool into an account of fixed size, zeroing the tail.
func (p *Pool) encodeTo(dst []byte) error {
	payload, err := borsh.Serialize(*p)
	if err != nil {
		return errors.Wrap(err, "encode pool")
	}
	if len(dst) < len(poolDiscriminator)+len(payload) {
		return ErrInvalidAccountData
	}
	n := copy(dst, poolDiscriminator[:])
	n += copy(dst[n:], payload)
	clear(dst[n:])
	return nil
}
