// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package local 带内存事务的 kv 数据库, 用于执行器的状态数据库和本地数据库
package local

import (
	"sync"

	comdb "github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/types"
	log "github.com/inconshreveable/log15"
)

var llog = log.New("module", "db.local")

// DB local db for store key value in local
type DB struct {
	txcache  comdb.DB
	cache    comdb.DB
	maindb   comdb.DB
	intx     bool
	mu       sync.RWMutex
	readOnly bool
}

func newMemDB() comdb.DB {
	memdb, err := comdb.NewGoMemDB("", "", 0)
	if err != nil {
		panic(err)
	}
	return memdb
}

// NewLocalDB new local db, 写入先保存在内存里, Flush 时写入 maindb
func NewLocalDB(maindb comdb.DB, readOnly bool) *DB {
	if readOnly {
		//只读模式不需要memdb，比如查询，可以使用该localdb，减少memdb内存开销
		return &DB{
			maindb:   maindb,
			readOnly: true,
		}
	}
	return &DB{
		cache:  newMemDB(),
		maindb: maindb,
	}
}

// Get get value from local db
func (l *DB) Get(key []byte) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	value, err := l.get(key)
	if err != nil {
		return nil, types.ErrNotFound
	}
	if isdeleted(value) {
		//表示已经删除了(空值要用内部定义的 emptyvalue)
		return nil, types.ErrNotFound
	}
	return value, nil
}

func (l *DB) get(key []byte) ([]byte, error) {
	if l.intx && l.txcache != nil {
		if value, err := l.txcache.Get(key); err == nil {
			return value, nil
		}
	}
	if l.cache != nil {
		if value, err := l.cache.Get(key); err == nil {
			return value, nil
		}
	}
	return l.maindb.Get(key)
}

// Set set key value to local db, value 为 nil 表示删除
func (l *DB) Set(key []byte, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.readOnly {
		panic("set local db in read only mode")
	}
	if l.intx {
		if l.txcache == nil {
			l.txcache = newMemDB()
		}
		setdb2(l.txcache, key, value)
	} else {
		setdb2(l.cache, key, value)
	}
	return nil
}

func (l *DB) dblist() []comdb.IteratorDB {
	dblist := make([]comdb.IteratorDB, 0, 3)
	if l.intx && l.txcache != nil {
		dblist = append(dblist, l.txcache)
	}
	if l.cache != nil {
		dblist = append(dblist, l.cache)
	}
	if l.maindb != nil {
		dblist = append(dblist, l.maindb)
	}
	return dblist
}

// List 从数据库中查询数据列表, 包括还没有写入 maindb 的修改
func (l *DB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	mergedb := comdb.NewMergedIteratorDB(l.dblist(), true)
	it := comdb.NewListHelper(mergedb)
	return it.List(prefix, key, count, direction), nil
}

// PrefixCount 从数据库中查询指定前缀的key的数量
func (l *DB) PrefixCount(prefix []byte) (count int64) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	mergedb := comdb.NewMergedIteratorDB(l.dblist(), true)
	it := comdb.NewListHelper(mergedb)
	return it.PrefixCount(prefix)
}

//Begin 开启内存事务处理
func (l *DB) Begin() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intx = true
	l.txcache = nil
}

// Rollback reset tx
func (l *DB) Rollback() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetTx()
}

// Commit 事务中的修改写入 cache
func (l *DB) Commit() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.txcache == nil {
		l.resetTx()
		return nil
	}
	it := l.txcache.Iterator(nil, nil, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		setdb2(l.cache, it.Key(), it.ValueCopy())
	}
	l.resetTx()
	return nil
}

// Flush cache 中的修改批量写入 maindb
func (l *DB) Flush() error {
	batch := l.maindb.NewBatch(true)
	if err := l.WriteTo(batch); err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		llog.Error("Flush", "err", err)
		return err
	}
	l.ResetCache()
	return nil
}

// WriteTo cache 中的修改加入 batch, 多个 DB 可以共用一个 batch 一次写入.
// batch 写入成功后调用 ResetCache
func (l *DB) WriteTo(batch comdb.Batch) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.readOnly || l.intx {
		return comdb.ErrFlushInTx
	}
	it := l.cache.Iterator(nil, nil, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if isdeleted(value) {
			batch.Delete(it.Key())
		} else {
			batch.Set(it.Key(), value)
		}
	}
	return nil
}

// ResetCache 清空已经写入 maindb 的 cache
func (l *DB) ResetCache() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.readOnly {
		return
	}
	l.cache = newMemDB()
}

func (l *DB) resetTx() {
	l.intx = false
	l.txcache = nil
}

func setdb2(d comdb.DB, key []byte, value []byte) {
	//value == nil 特殊标记key，代表key已经删除了
	err := d.Set(key, value)
	if err != nil {
		panic(err)
	}
}

func isdeleted(d []byte) bool {
	return len(d) == 0
}
