// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/types"
)

func init() {
	RegisterPlugin("txindex", func() plugin { return &txindexPlugin{} })
}

//txindexPlugin 保存交易和执行结果, 回滚本地索引时需要
type txindexPlugin struct {
	pluginBase
}

func (p *txindexPlugin) CheckEnable(executor *executor, enable bool) (kvs []*types.KeyValue, ok bool, err error) {
	return nil, enable, nil
}

func (p *txindexPlugin) ExecLocal(executor *executor, tx *types.Transaction, receipt *types.ReceiptData, index int) ([]*types.KeyValue, error) {
	return getTx(executor, tx, receipt, index), nil
}

func (p *txindexPlugin) ExecDelLocal(executor *executor, tx *types.Transaction, receipt *types.ReceiptData, index int) ([]*types.KeyValue, error) {
	kvs := getTx(executor, tx, receipt, index)
	for _, kv := range kvs {
		kv.Value = nil
	}
	return kvs, nil
}

//获取公共的信息
func getTx(executor *executor, tx *types.Transaction, receipt *types.ReceiptData, index int) []*types.KeyValue {
	txhash := tx.Hash()
	//构造txresult 信息保存到db中
	var txresult types.TxResult
	txresult.Height = executor.height
	txresult.Index = int32(index)
	txresult.Tx = tx
	txresult.Receipt = receipt
	txresult.Blocktime = executor.blocktime
	return []*types.KeyValue{{Key: types.CalcTxKey(txhash), Value: types.Encode(&txresult)}}
}
