// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"strconv"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(dir)
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
		return err
	}
	return nil
}

//SetSync 同步
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//DeleteSync 删除同步
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"lsm":  strconv.FormatInt(lsm, 10),
		"vlog": strconv.FormatInt(vlog, 10),
	}
}

//Iterator 迭代器, 持有一个只读事务直到 Close
func (db *GoBadgerDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	dbit := &goBadgerDBIt{Iterator: it, txn: txn, start: start, end: end, reverse: reverse}
	dbit.Rewind()
	return dbit
}

type goBadgerDBIt struct {
	*badger.Iterator
	txn     *badger.Txn
	start   []byte
	end     []byte
	reverse bool
	err     error
}

func (it *goBadgerDBIt) Rewind() bool {
	if !it.reverse {
		it.Iterator.Seek(it.start)
		return it.Valid()
	}
	limit := it.end
	if limit == nil {
		limit = bytesPrefix(it.start)
	}
	if limit == nil {
		it.Iterator.Rewind()
		return it.Valid()
	}
	//badger 反向 Seek 定位到 <= limit, limit 本身不在范围内
	it.Iterator.Seek(limit)
	if it.Iterator.Valid() && bytes.Equal(it.Iterator.Item().Key(), limit) {
		it.Iterator.Next()
	}
	return it.Valid()
}

func (it *goBadgerDBIt) Seek(key []byte) bool {
	it.Iterator.Seek(key)
	return it.Valid()
}

func (it *goBadgerDBIt) Next() bool {
	it.Iterator.Next()
	return it.Valid()
}

func (it *goBadgerDBIt) Valid() bool {
	if !it.Iterator.Valid() {
		return false
	}
	return inRange(it.Iterator.Item().Key(), it.start, it.end)
}

func (it *goBadgerDBIt) Key() []byte {
	return it.Iterator.Item().Key()
}

func (it *goBadgerDBIt) Value() []byte {
	value, err := it.Iterator.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *goBadgerDBIt) ValueCopy() []byte {
	return it.Value()
}

func (it *goBadgerDBIt) Error() error {
	return it.err
}

func (it *goBadgerDBIt) Close() {
	it.Iterator.Close()
	it.txn.Discard()
}

type badgerWrite struct {
	key   []byte
	value []byte
	del   bool
}

// badger 的批量写在一个读写事务里提交
type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []badgerWrite
	size   int
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, badgerWrite{key: cloneByte(key), value: cloneByte(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, badgerWrite{key: cloneByte(key), del: true})
	mBatch.size++
}

func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, w := range mBatch.writes {
			var err error
			if w.del {
				err = txn.Delete(w.key)
			} else {
				err = txn.Set(w.key, w.value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	return nil
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}
