// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/dgraph-io/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoBadgerDBReopen(t *testing.T) {
	dir := t.TempDir()
	db := NewDB("gobadgerdb", GoBadgerDBBackendStr, dir, 16)
	batch := db.NewBatch(true)
	batch.Set([]byte("mavl-lottery-round-1"), []byte("round1"))
	batch.Set([]byte("mavl-lottery-round-2"), []byte("round2"))
	require.NoError(t, batch.Write())
	require.NoError(t, db.Delete([]byte("mavl-lottery-round-2")))
	assert.Contains(t, db.Stats(), "lsm")
	db.Close()

	reopen, err := NewGoBadgerDB("gobadgerdb", dir, 16)
	require.NoError(t, err)
	defer reopen.Close()
	v, err := reopen.Get([]byte("mavl-lottery-round-1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("round1"), v)
	_, err = reopen.Get([]byte("mavl-lottery-round-2"))
	assert.Equal(t, ErrNotFoundInDb, err)

	//直接使用底层的 badger 事务
	err = reopen.DB().View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("mavl-lottery-round-1"))
		if err != nil {
			return err
		}
		assert.Equal(t, []byte("mavl-lottery-round-1"), item.Key())
		return nil
	})
	require.NoError(t, err)
}
