// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 实现了基础结构体、接口、常量等的定义
package types

import (
	"encoding/json"

	"github.com/33cn/lottery/common"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "types")

//NewErrReceipt  new一个新的Receipt
func NewErrReceipt(err error) *Receipt {
	berr := err.Error()
	errlog := &ReceiptLog{Ty: TyLogErr, Log: []byte(berr)}
	return &Receipt{Ty: ExecErr, KV: nil, Logs: []*ReceiptLog{errlog}}
}

//CheckAmount  检测转账金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

//ReceiptDataResult 回执数据
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyname"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

//ReceiptLogResult 回执log数据
type ReceiptLogResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyname"`
	Log    interface{} `json:"log"`
	RawLog string      `json:"rawlog"`
}

//DecodeReceiptLog 解码回执数据
func (r *ReceiptData) DecodeReceiptLog(execer []byte) (*ReceiptDataResult, error) {
	result := &ReceiptDataResult{Ty: r.GetTy()}
	switch r.Ty {
	case ExecErr:
		result.TyName = "ExecErr"
	case ExecPack:
		result.TyName = "ExecPack"
	case ExecOk:
		result.TyName = "ExecOk"
	default:
		return nil, ErrLogType
	}

	for _, l := range r.GetLogs() {
		name, logIns, err := DecodeLog(execer, int64(l.Ty), l.Log)
		if err != nil {
			return nil, err
		}
		result.Logs = append(result.Logs, &ReceiptLogResult{Ty: l.Ty, TyName: name, Log: logIns, RawLog: common.ToHex(l.Log)})
	}
	return result, nil
}

// MustDecode 子配置等 json 数据解码, 失败时 panic
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

//Clone kv 的拷贝
func (kv *KeyValue) Clone() *KeyValue {
	if kv == nil {
		return nil
	}
	return &KeyValue{
		Key:   common.CopyBytes(kv.Key),
		Value: common.CopyBytes(kv.Value),
	}
}

//Clone 回执日志的拷贝
func (r *ReceiptLog) Clone() *ReceiptLog {
	if r == nil {
		return nil
	}
	return &ReceiptLog{Ty: r.Ty, Log: common.CopyBytes(r.Log)}
}

//Clone 账户的拷贝
func (acc *Account) Clone() *Account {
	if acc == nil {
		return nil
	}
	copyacc := *acc
	return &copyacc
}
