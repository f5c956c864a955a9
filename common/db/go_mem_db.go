// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"sort"
	"strconv"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB db
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	// memdb 不需要创建文件
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFoundInDb
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.set(key, value)
	return nil
}

func (db *GoMemDB) set(key []byte, value []byte) {
	if value == nil {
		value = []byte{}
	}
	db.db[string(key)] = cloneByte(value)
}

//SetSync 设置同步
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

//DeleteSync 删除同步
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close 关闭
func (db *GoMemDB) Close() {
}

//Stats ...
func (db *GoMemDB) Stats() map[string]string {
	db.lock.RLock()
	defer db.lock.RUnlock()
	mlog.Debug("Stats", "keys", len(db.db))
	return map[string]string{"keys": strconv.Itoa(len(db.db))}
}

//Iterator 迭代器, 创建时对范围内的数据做一次快照
func (db *GoMemDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var kvs []kv
	for k, v := range db.db {
		if inRange([]byte(k), start, end) {
			kvs = append(kvs, kv{[]byte(k), cloneByte(v)})
		}
	}
	sort.Slice(kvs, func(i, j int) bool {
		return bytes.Compare(kvs[i].k, kvs[j].k) < 0
	})
	it := &goMemDBIt{kvs: kvs, reverse: reverse}
	it.Rewind()
	return it
}

type goMemDBIt struct {
	index   int
	kvs     []kv
	reverse bool
}

func (dbit *goMemDBIt) Rewind() bool {
	if dbit.reverse {
		dbit.index = len(dbit.kvs) - 1
	} else {
		dbit.index = 0
	}
	return dbit.Valid()
}

// Seek 正向时定位到第一个 >= key 的位置, 反向时定位到最后一个 <= key 的位置
func (dbit *goMemDBIt) Seek(key []byte) bool {
	i := sort.Search(len(dbit.kvs), func(i int) bool {
		return bytes.Compare(dbit.kvs[i].k, key) >= 0
	})
	if dbit.reverse {
		if i == len(dbit.kvs) || !bytes.Equal(dbit.kvs[i].k, key) {
			i--
		}
	}
	dbit.index = i
	return dbit.Valid()
}

func (dbit *goMemDBIt) Next() bool {
	if dbit.reverse {
		dbit.index--
	} else {
		dbit.index++
	}
	return dbit.Valid()
}

func (dbit *goMemDBIt) Valid() bool {
	return dbit.index >= 0 && dbit.index < len(dbit.kvs)
}

func (dbit *goMemDBIt) Key() []byte {
	return dbit.kvs[dbit.index].k
}

func (dbit *goMemDBIt) Value() []byte {
	return dbit.kvs[dbit.index].v
}

func (dbit *goMemDBIt) ValueCopy() []byte {
	return cloneByte(dbit.kvs[dbit.index].v)
}

func (dbit *goMemDBIt) Error() error {
	return nil
}

func (dbit *goMemDBIt) Close() {
	dbit.kvs = nil
}

type kv struct{ k, v []byte }
type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

//NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	v := cloneByte(value)
	if v == nil {
		v = []byte{}
	}
	b.writes = append(b.writes, kv{cloneByte(key), v})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.writes {
		if kv.v == nil {
			delete(b.db.db, string(kv.k))
		} else {
			b.db.set(kv.k, kv.v)
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
