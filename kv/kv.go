// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

// Getter reads committed values.
type Getter interface {
	// Get returns the value stored under key.
	// A missing key is reported with an error recognized by IsNotFound.
	Get(key []byte) (value []byte, err error)
	IsNotFound(error) bool

	NewIterator(r Range) Iterator
}

// Batch collects writes. Write applies all of them or none.
type Batch interface {
	Put(key, value []byte) error
	Delete(key []byte) error

	Len() int
	Write() error
}

// Store is the storage the ledger commits to. All writes go through batches.
type Store interface {
	Getter
	NewBatch() Batch
}

// StoreCloser is a Store with a close method.
type StoreCloser interface {
	Store
	Close() error
}

// Iterator to iterates kvs.
type Iterator interface {
	Next() bool
	Release()
	Error() error

	Key() []byte
	Value() []byte
}

// Range is the key range, From included and To excluded.
type Range struct {
	From []byte
	To   []byte
}

// NewRangeWithBytesPrefix creates a range covering all keys with the given prefix.
func NewRangeWithBytesPrefix(prefix []byte) Range {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		if c := prefix[i]; c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return Range{From: prefix, To: limit}
}
