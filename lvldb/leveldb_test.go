// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liquidstake/pool/kv"
)

func TestLevelDB(t *testing.T) {
	disk, err := New(filepath.Join(t.TempDir(), "ledger"), Options{CacheSize: 32})
	require.NoError(t, err)
	defer disk.Close()

	mem, err := NewMem()
	require.NoError(t, err)
	defer mem.Close()

	for _, db := range []*LevelDB{disk, mem} {
		_, err := db.Get([]byte("a"))
		assert.True(t, db.IsNotFound(err))

		batch := db.NewBatch()
		require.NoError(t, batch.Put([]byte("a"), []byte("1")))
		assert.Equal(t, 1, batch.Len())
		require.NoError(t, batch.Write())

		got, err := db.Get([]byte("a"))
		require.NoError(t, err)
		assert.Equal(t, []byte("1"), got)

		batch = db.NewBatch()
		require.NoError(t, batch.Delete([]byte("a")))
		require.NoError(t, batch.Write())
		_, err = db.Get([]byte("a"))
		assert.True(t, db.IsNotFound(err))
	}
}

func TestLevelDBReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger")

	db, err := New(path, Options{})
	require.NoError(t, err)
	batch := db.NewBatch()
	require.NoError(t, batch.Put([]byte("k"), []byte("v")))
	require.NoError(t, batch.Write())

	// locked while open
	_, err = New(path, Options{})
	assert.Error(t, err)
	require.NoError(t, db.Close())

	db, err = New(path, Options{})
	require.NoError(t, err)
	defer db.Close()
	got, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestLevelDBIterator(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	batch := db.NewBatch()
	for _, k := range []string{"a1", "a2", "a3", "b1"} {
		require.NoError(t, batch.Put([]byte(k), []byte("v"+k)))
	}
	require.NoError(t, batch.Delete([]byte("a2")))
	assert.Equal(t, 5, batch.Len())
	require.NoError(t, batch.Write())

	it := db.NewIterator(kv.NewRangeWithBytesPrefix([]byte("a")))
	defer it.Release()

	var keys, values []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
		values = append(values, string(it.Value()))
	}
	require.NoError(t, it.Error())
	assert.Equal(t, []string{"a1", "a3"}, keys)
	assert.Equal(t, []string{"va1", "va3"}, values)
}
