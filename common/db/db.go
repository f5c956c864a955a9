// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 底层存储: 统一的 DB 接口和 memdb/goleveldb/gobadgerdb 三种后端
package db

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

// ErrNotFoundInDb error
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// ErrUnknownBackend 没有注册的存储后端
var ErrUnknownBackend = errors.New("ErrUnknownBackend")

// ErrFlushInTx 事务中或者只读模式下不能写入底层数据库
var ErrFlushInTx = errors.New("ErrFlushInTx")

//KV 状态数据库接口, 支持内存事务
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
	Begin()
	Rollback()
	Commit() error
}

//KVDB 本地数据库接口, 在 KV 的基础上支持列表查询
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
	PrefixCount(prefix []byte) int64
}

//DB 底层数据库接口
type DB interface {
	IteratorDB
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	// For debugging
	Stats() map[string]string
}

//Batch 批量写入
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//IteratorDB 迭代器
type IteratorDB interface {
	// end 为 nil 时按 start 前缀迭代, 否则迭代 [start, end)
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

//Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

func bytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

// inRange 判断 key 是否在迭代范围内
func inRange(key, start, end []byte) bool {
	if end == nil {
		return bytes.HasPrefix(key, start)
	}
	return bytes.Compare(key, start) >= 0 && bytes.Compare(key, end) < 0
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

//-----------------------------------------------------------------------------

// const
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// HasBackend 后端是否已经注册
func HasBackend(backend string) bool {
	_, ok := backends[backend]
	return ok
}

// Backends 返回所有注册的后端名字
func Backends() []string {
	var names []string
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDB new db
func NewDB(name string, backend string, dir string, cache int) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}
