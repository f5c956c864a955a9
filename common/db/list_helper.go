// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//PrefixScan 前缀
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("PrefixScan it.Value()", "error", it.Error())
			values = nil
			return
		}
		values = append(values, value)
	}
	return
}

//List 列表, key 为空时从头(或尾)开始, 否则从 key 之后开始(不包含 key)
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	if len(key) == 0 {
		if direction == ListASC {
			return db.IteratorScanFromFirst(prefix, count)
		}
		return db.IteratorScanFromLast(prefix, count)
	}
	return db.IteratorScan(prefix, key, count, direction)
}

//IteratorScan 迭代
func (db *ListHelper) IteratorScan(prefix []byte, key []byte, count int32, direction int32) (values [][]byte) {
	reverse := direction == ListDESC
	it := db.db.Iterator(prefix, nil, reverse)
	defer it.Close()

	var i int32
	if !it.Seek(key) {
		return nil
	}
	if bytes.Equal(it.Key(), key) {
		it.Next()
	}
	for ; it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("IteratorScan it.Value()", "error", it.Error())
			values = nil
			return
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//IteratorScanFromFirst 从头迭代
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("IteratorScanFromFirst it.Value()", "error", it.Error())
			values = nil
			return
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//IteratorScanFromLast 从尾迭代
func (db *ListHelper) IteratorScanFromLast(prefix []byte, count int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, true)
	defer it.Close()

	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("IteratorScanFromLast it.Value()", "error", it.Error())
			values = nil
			return
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//PrefixCount 前缀数量
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, nil, true)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("PrefixCount it.Value()", "error", it.Error())
			count = 0
			return
		}
		count++
	}
	return
}
