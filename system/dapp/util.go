// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/types"
)

//KVCreator 创建KV的辅助工具
type KVCreator struct {
	kvs  []*types.KeyValue
	kvdb db.KV
}

//NewKVCreator 创建创建者
func NewKVCreator(kv db.KV) *KVCreator {
	return &KVCreator{kvdb: kv}
}

func (c *KVCreator) add(key, value []byte, set bool) *KVCreator {
	c.kvs = append(c.kvs, &types.KeyValue{Key: key, Value: value})
	if set {
		err := c.kvdb.Set(key, value)
		if err != nil {
			panic(err)
		}
	}
	return c
}

//Add add and set to kvdb
func (c *KVCreator) Add(key, value []byte) *KVCreator {
	return c.add(key, value, true)
}

//AddKV only add KV, value 为 nil 表示删除
func (c *KVCreator) AddKV(key, value []byte) *KVCreator {
	return c.add(key, value, false)
}

//KVList 读取所有的kv列表
func (c *KVCreator) KVList() []*types.KeyValue {
	return c.kvs
}
