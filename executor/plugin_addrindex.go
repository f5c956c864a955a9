// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/types"
)

var addrIndexFlag = []byte("FLAG:addrIndex")

func init() {
	RegisterPlugin("addrindex", func() plugin { return &addrindexPlugin{} })
}

//addrindexPlugin 交易中 from/to 的索引
type addrindexPlugin struct {
	pluginBase
}

func (p *addrindexPlugin) CheckEnable(executor *executor, enable bool) (kvs []*types.KeyValue, ok bool, err error) {
	return p.checkFlag(executor, addrIndexFlag, enable)
}

func (p *addrindexPlugin) ExecLocal(executor *executor, tx *types.Transaction, receipt *types.ReceiptData, index int) ([]*types.KeyValue, error) {
	var set types.LocalDBSet
	txindex := getTxIndex(executor, tx, index)
	txinfobyte := types.Encode(txindex.index)
	for _, addr := range txindex.addrs {
		set.KV = append(set.KV, &types.KeyValue{Key: types.CalcTxAddrHashKey(addr, txindex.heightindex), Value: txinfobyte})
		kv, err := updateAddrTxsCount(executor.localDB, addr, 1, true)
		if err != nil {
			return nil, err
		}
		set.KV = append(set.KV, kv)
	}
	return set.KV, nil
}

func (p *addrindexPlugin) ExecDelLocal(executor *executor, tx *types.Transaction, receipt *types.ReceiptData, index int) ([]*types.KeyValue, error) {
	var set types.LocalDBSet
	txindex := getTxIndex(executor, tx, index)
	for _, addr := range txindex.addrs {
		set.KV = append(set.KV, &types.KeyValue{Key: types.CalcTxAddrHashKey(addr, txindex.heightindex), Value: nil})
		kv, err := updateAddrTxsCount(executor.localDB, addr, 1, false)
		if err != nil {
			return nil, err
		}
		set.KV = append(set.KV, kv)
	}
	return set.KV, nil
}

type txIndex struct {
	addrs       []string
	heightindex int64
	index       *types.ReplyTxInfo
}

//交易中 from/to 的索引, from 和 to 相同时只保存一次
func getTxIndex(executor *executor, tx *types.Transaction, index int) *txIndex {
	var txIndexInfo txIndex
	txIndexInfo.index = &types.ReplyTxInfo{
		Hash:   tx.Hash(),
		Height: executor.height,
		Index:  int64(index),
	}
	txIndexInfo.heightindex = executor.height*types.MaxTxsPerBlock + int64(index)
	txIndexInfo.addrs = append(txIndexInfo.addrs, tx.From())
	if tx.To != "" && tx.To != tx.From() {
		txIndexInfo.addrs = append(txIndexInfo.addrs, tx.To)
	}
	return &txIndexInfo
}

func getAddrTxsCount(db dbm.KVDB, addr string) (int64, error) {
	count := types.Int64{}
	txscount, err := db.Get(types.CalcAddrTxsCountKey(addr))
	if err == types.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if err = types.Decode(txscount, &count); err != nil {
		return 0, err
	}
	return count.Data, nil
}

func updateAddrTxsCount(cachedb dbm.KVDB, addr string, amount int64, isadd bool) (*types.KeyValue, error) {
	txscount, err := getAddrTxsCount(cachedb, addr)
	if err != nil {
		return nil, err
	}
	if isadd {
		txscount += amount
	} else {
		txscount -= amount
	}
	if txscount < 0 {
		txscount = 0
	}
	//keyvalue
	return &types.KeyValue{Key: types.CalcAddrTxsCountKey(addr), Value: types.Encode(&types.Int64{Data: txscount})}, nil
}
