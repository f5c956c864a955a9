// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

//合并多个迭代器成一个迭代器, 排在前面的迭代器优先级高

import (
	"bytes"
	"errors"

	"github.com/syndtr/goleveldb/leveldb/comparer"
)

//合并错误列表
var (
	ErrIterReleased = errors.New("ErrIterReleased")
)

type mergedIterator struct {
	cmp       comparer.Comparer
	iters     []Iterator
	keys      [][]byte
	index     int
	reverse   bool
	skipEmpty bool
	released  bool
	err       error
}

func (i *mergedIterator) load(x int, ok bool) {
	iter := i.iters[x]
	if !ok {
		if err := iter.Error(); err != nil && i.err == nil {
			i.err = err
		}
		i.keys[x] = nil
		return
	}
	i.keys[x] = cloneByte(iter.Key())
}

// less 按迭代方向比较
func (i *mergedIterator) less(a, b []byte) bool {
	if i.reverse {
		return i.cmp.Compare(a, b) > 0
	}
	return i.cmp.Compare(a, b) < 0
}

// pick 选择当前的 key, 相同的 key 取优先级高的迭代器
func (i *mergedIterator) pick() bool {
	for {
		i.index = -1
		for x, key := range i.keys {
			if key == nil {
				continue
			}
			if i.index < 0 || i.less(key, i.keys[i.index]) {
				i.index = x
			}
		}
		if i.index < 0 || i.err != nil {
			return false
		}
		if !i.skipEmpty || len(i.iters[i.index].Value()) > 0 {
			return true
		}
		//空值表示已经删除, 跳过
		i.advance()
	}
}

// advance 所有等于当前 key 的迭代器都前进一步
func (i *mergedIterator) advance() {
	cur := i.keys[i.index]
	for x, key := range i.keys {
		if key != nil && bytes.Equal(key, cur) {
			i.load(x, i.iters[x].Next())
		}
	}
}

func (i *mergedIterator) Rewind() bool {
	if i.released {
		i.err = ErrIterReleased
		return false
	}
	for x, iter := range i.iters {
		i.load(x, iter.Rewind())
	}
	return i.pick()
}

func (i *mergedIterator) Seek(key []byte) bool {
	if i.released {
		i.err = ErrIterReleased
		return false
	}
	for x, iter := range i.iters {
		i.load(x, iter.Seek(key))
	}
	return i.pick()
}

func (i *mergedIterator) Next() bool {
	if !i.Valid() {
		return false
	}
	i.advance()
	return i.pick()
}

func (i *mergedIterator) Valid() bool {
	return !i.released && i.err == nil && i.index >= 0 && i.keys[i.index] != nil
}

func (i *mergedIterator) Key() []byte {
	if !i.Valid() {
		return nil
	}
	return i.keys[i.index]
}

func (i *mergedIterator) Value() []byte {
	if !i.Valid() {
		return nil
	}
	return i.iters[i.index].Value()
}

func (i *mergedIterator) ValueCopy() []byte {
	return cloneByte(i.Value())
}

func (i *mergedIterator) Close() {
	if i.released {
		return
	}
	i.released = true
	for _, iter := range i.iters {
		iter.Close()
	}
	i.iters = nil
	i.keys = nil
}

func (i *mergedIterator) Error() error {
	return i.err
}

// NewMergedIterator 合并多个迭代器, 相同的 key 只返回第一个迭代器中的值.
// skipEmpty 为 true 时空值被当作删除标记跳过.
func NewMergedIterator(iters []Iterator, reverse, skipEmpty bool) Iterator {
	return &mergedIterator{
		iters:     iters,
		cmp:       comparer.DefaultComparer,
		keys:      make([][]byte, len(iters)),
		index:     -1,
		reverse:   reverse,
		skipEmpty: skipEmpty,
	}
}

type mergedIteratorDB struct {
	iters     []IteratorDB
	skipEmpty bool
}

//NewMergedIteratorDB 合并多个数据库的迭代, 排在前面的数据库优先
func NewMergedIteratorDB(iters []IteratorDB, skipEmpty bool) IteratorDB {
	return &mergedIteratorDB{iters: iters, skipEmpty: skipEmpty}
}

func (merge *mergedIteratorDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	iters := make([]Iterator, len(merge.iters))
	for i := 0; i < len(merge.iters); i++ {
		iters[i] = merge.iters[i].Iterator(start, end, reverse)
	}
	return NewMergedIterator(iters, reverse, merge.skipEmpty)
}
