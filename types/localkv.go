// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
)

// 定义key值
var (
	LocalPrefix  = []byte("LODB")
	TxHashPerfix = []byte("TX:")
	TxAddrHash   = []byte("TxAddrHash:")
	AddrTxsCount = []byte("AddrTxsCount:")
	FlagHeight   = []byte("FLAG:Height")
)

//CalcTxKey local db中保存交易的方法
func CalcTxKey(hash []byte) []byte {
	return append(append([]byte{}, TxHashPerfix...), hash...)
}

//CalcTxAddrHashKey 用于存储地址相关的hash列表，key=TxAddrHash:addr:heightindex
//地址下面所有的交易, heightindex = height*MaxTxsPerBlock+index
func CalcTxAddrHashKey(addr string, heightindex int64) []byte {
	return append(append([]byte{}, TxAddrHash...), []byte(fmt.Sprintf("%s:%018d", addr, heightindex))...)
}

//CalcTxAddrHashPrefix 地址下面所有交易的前缀
func CalcTxAddrHashPrefix(addr string) []byte {
	return append(append([]byte{}, TxAddrHash...), []byte(addr+":")...)
}

//CalcAddrTxsCountKey 存储地址参与的交易数量。add时加一，del时减一
func CalcAddrTxsCountKey(addr string) []byte {
	return append(append([]byte{}, AddrTxsCount...), []byte(addr)...)
}

//CalcLocalPrefix 计算localdb key
func CalcLocalPrefix(execer []byte) []byte {
	s := append([]byte("LODB-"), execer...)
	s = append(s, byte('-'))
	return s
}

//CalcStatePrefix 计算statedb key
func CalcStatePrefix(execer []byte) []byte {
	s := append([]byte("mavl-"), execer...)
	s = append(s, byte('-'))
	return s
}

//FlagKV 功能开关的 kv
func FlagKV(key []byte, value int64) *KeyValue {
	return &KeyValue{Key: key, Value: Encode(&Int64{Data: value})}
}

//TxResult 交易执行的结果, 保存在本地数据库, 用于查询和回滚本地索引
type TxResult struct {
	Height    int64        `json:"height,omitempty"`
	Index     int32        `json:"index,omitempty"`
	Tx        *Transaction `json:"tx,omitempty"`
	Receipt   *ReceiptData `json:"receipt,omitempty"`
	Blocktime int64        `json:"blocktime,omitempty"`
}

//Marshal marshal
func (r *TxResult) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Int64(1, r.Height)
	e.Int32(2, r.Index)
	e.Message(3, r.Tx)
	e.Message(4, r.Receipt)
	e.Int64(5, r.Blocktime)
	return e.Result()
}

//Unmarshal unmarshal
func (r *TxResult) Unmarshal(data []byte) error {
	*r = TxResult{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			r.Height = f.Int64()
		case 2:
			r.Index = f.Int32()
		case 3:
			r.Tx = &Transaction{}
			return f.Message(r.Tx)
		case 4:
			r.Receipt = &ReceiptData{}
			return f.Message(r.Receipt)
		case 5:
			r.Blocktime = f.Int64()
		}
		return nil
	})
}

//ReplyTxInfo 地址相关的交易
type ReplyTxInfo struct {
	Hash   []byte `json:"hash,omitempty"`
	Height int64  `json:"height,omitempty"`
	Index  int64  `json:"index,omitempty"`
}

//Marshal marshal
func (r *ReplyTxInfo) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Bytes(1, r.Hash)
	e.Int64(2, r.Height)
	e.Int64(3, r.Index)
	return e.Result()
}

//Unmarshal unmarshal
func (r *ReplyTxInfo) Unmarshal(data []byte) error {
	*r = ReplyTxInfo{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			r.Hash = f.Bytes()
		case 2:
			r.Height = f.Int64()
		case 3:
			r.Index = f.Int64()
		}
		return nil
	})
}

//ReplyTxInfos 地址相关的交易列表
type ReplyTxInfos struct {
	TxInfos []*ReplyTxInfo `json:"txInfos,omitempty"`
}

//Marshal marshal
func (r *ReplyTxInfos) Marshal() ([]byte, error) {
	e := NewEncoder()
	for _, info := range r.TxInfos {
		e.Message(1, info)
	}
	return e.Result()
}

//Unmarshal unmarshal
func (r *ReplyTxInfos) Unmarshal(data []byte) error {
	*r = ReplyTxInfos{}
	return WalkFields(data, func(f *Field) error {
		if f.Num == 1 {
			info := &ReplyTxInfo{}
			if err := f.Message(info); err != nil {
				return err
			}
			r.TxInfos = append(r.TxInfos, info)
		}
		return nil
	})
}
