// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import "github.com/liquidstake/pool/solana"

// PubkeyAndEntry is an element of AccountMap.
type PubkeyAndEntry[V any] struct {
	Pubkey solana.Pubkey
	Entry  V
}

// AccountMap is a bounded map from pubkey to V that keeps insertion order.
// Lookups scan linearly.
type AccountMap[V any] struct {
	Entries        []PubkeyAndEntry[V]
	MaximumEntries uint32
}

// NewAccountMap creates an empty map holding at most maxEntries.
func NewAccountMap[V any](maxEntries uint32) AccountMap[V] {
	return AccountMap[V]{MaximumEntries: maxEntries}
}

func (m *AccountMap[V]) Len() int { return len(m.Entries) }

func (m *AccountMap[V]) index(key solana.Pubkey) int {
	for i := range m.Entries {
		if m.Entries[i].Pubkey == key {
			return i
		}
	}
	return -1
}

// Contains reports whether key is present.
func (m *AccountMap[V]) Contains(key solana.Pubkey) bool {
	return m.index(key) >= 0
}

// Add appends key. Duplicates are detected before capacity.
func (m *AccountMap[V]) Add(key solana.Pubkey, value V) error {
	if m.Contains(key) {
		return ErrDuplicatedEntry
	}
	if uint32(len(m.Entries)) >= m.MaximumEntries {
		return ErrRegistryFull
	}
	m.Entries = append(m.Entries, PubkeyAndEntry[V]{Pubkey: key, Entry: value})
	return nil
}

// Get returns the entry of key for in-place updates.
func (m *AccountMap[V]) Get(key solana.Pubkey) (*PubkeyAndEntry[V], error) {
	i := m.index(key)
	if i < 0 {
		return nil, ErrEntryNotFound
	}
	return &m.Entries[i], nil
}

// Remove deletes key, keeping the order of the remaining entries.
func (m *AccountMap[V]) Remove(key solana.Pubkey) (V, error) {
	i := m.index(key)
	if i < 0 {
		var zero V
		return zero, ErrEntryNotFound
	}
	removed := m.Entries[i].Entry
	m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
	if len(m.Entries) == 0 {
		m.Entries = nil
	}
	return removed, nil
}

// Keys returns the pubkeys in insertion order.
func (m *AccountMap[V]) Keys() []solana.Pubkey {
	keys := make([]solana.Pubkey, 0, len(m.Entries))
	for _, e := range m.Entries {
		keys = append(keys, e.Pubkey)
	}
	return keys
}

// Maintainer carries no data; Maintainers is a set.
type Maintainer struct{}

// Maintainers are the identities allowed to run maintenance operations.
type Maintainers = AccountMap[Maintainer]

// Validator is a stake delegation target.
type Validator struct {
	// token account of the pool mint receiving validation fees
	FeeAddress           solana.Pubkey
	FeeCredit            uint64
	StakeAccountsBalance uint64
	// inactive validators receive no new stake
	Active bool
}

// Validators maps vote accounts to validators.
type Validators = AccountMap[Validator]
