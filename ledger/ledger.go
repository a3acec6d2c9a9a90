// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"fmt"
	"slices"

	"github.com/qianbin/directcache"

	"github.com/liquidstake/pool/kv"
	"github.com/liquidstake/pool/solana"
	"github.com/liquidstake/pool/stackedmap"
)

const (
	accountKeyPrefix = "a"
	recordCacheSize  = 16 * 1024 * 1024
)

// Error is the error caused by ledger access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ledger: %v", e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Ledger holds all accounts. Changes are kept in memory with checkpoint/revert
// support until Commit writes them to the underlying store.
// Ledger is not safe for concurrent use.
type Ledger struct {
	store   kv.Store
	records *directcache.Cache // encoded committed accounts
	sm      *stackedmap.StackedMap[solana.Pubkey, *Account]
}

// New creates a ledger backed by store.
func New(store kv.Store) *Ledger {
	l := &Ledger{
		store:   store,
		records: directcache.New(recordCacheSize),
	}
	l.sm = stackedmap.New(l.cacheGetter)
	l.sm.Push()
	return l
}

func accountKey(key solana.Pubkey) []byte {
	return append([]byte(accountKeyPrefix), key[:]...)
}

// cacheGetter implements stackedmap.MapGetter.
func (l *Ledger) cacheGetter(key solana.Pubkey) (*Account, bool, error) {
	var data []byte
	if !l.records.AdvGet(key[:], func(val []byte) { data = slices.Clone(val) }, false) {
		var err error
		if data, err = l.store.Get(accountKey(key)); err != nil {
			if l.store.IsNotFound(err) {
				return &Account{}, true, nil
			}
			return nil, false, err
		}
		_ = l.records.Set(key[:], data)
	}
	acc, err := decodeAccount(data)
	if err != nil {
		return nil, false, err
	}
	return acc, true, nil
}

// GetAccount returns a copy of the account stored under key.
func (l *Ledger) GetAccount(key solana.Pubkey) (*Account, error) {
	acc, _, err := l.sm.Get(key)
	if err != nil {
		return nil, &Error{err}
	}
	return acc.Copy(), nil
}

// SetAccount stores a copy of acc under key.
func (l *Ledger) SetAccount(key solana.Pubkey, acc *Account) {
	l.sm.Put(key, acc.Copy())
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (l *Ledger) NewCheckpoint() int {
	return l.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (l *Ledger) RevertTo(revision int) {
	if revision < 1 {
		revision = 1
	}
	l.sm.PopTo(revision)
}

// Commit writes all pending changes into the store in one batch and clears
// all checkpoints.
func (l *Ledger) Commit() error {
	var (
		keys    []solana.Pubkey
		changes = make(map[solana.Pubkey]*Account)
	)
	l.sm.Journal(func(key solana.Pubkey, acc *Account) bool {
		if _, ok := changes[key]; !ok {
			keys = append(keys, key)
		}
		changes[key] = acc
		return true
	})
	if len(keys) == 0 {
		return nil
	}

	var (
		batch   = l.store.NewBatch()
		records = make([][]byte, len(keys)) // nil for deleted accounts
	)
	for i, key := range keys {
		acc := changes[key]
		if acc.IsEmpty() {
			if err := batch.Delete(accountKey(key)); err != nil {
				return &Error{err}
			}
			continue
		}
		data, err := encodeAccount(acc)
		if err != nil {
			return &Error{err}
		}
		if err := batch.Put(accountKey(key), data); err != nil {
			return &Error{err}
		}
		records[i] = data
	}
	if err := batch.Write(); err != nil {
		return &Error{err}
	}

	for i, key := range keys {
		if records[i] == nil {
			l.records.Del(key[:])
		} else {
			_ = l.records.Set(key[:], records[i])
		}
	}
	l.sm.PopTo(0)
	l.sm.Push()
	return nil
}

// ForEachCommitted iterates committed accounts in key order until fn returns false.
// Pending changes are not visited.
func (l *Ledger) ForEachCommitted(fn func(key solana.Pubkey, acc *Account) bool) error {
	it := l.store.NewIterator(kv.NewRangeWithBytesPrefix([]byte(accountKeyPrefix)))
	defer it.Release()

	for it.Next() {
		acc, err := decodeAccount(it.Value())
		if err != nil {
			return &Error{err}
		}
		if !fn(solana.BytesToPubkey(it.Key()[len(accountKeyPrefix):]), acc) {
			break
		}
	}
	if err := it.Error(); err != nil {
		return &Error{err}
	}
	return nil
}
