// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "reflect"

// coin conversation
const (
	Coin      int64 = 1e8
	MaxCoin   int64 = 1e17
	MaxTxSize int64 = 100000 //100K
	//MaxTxsPerBlock 一个高度最多执行的交易数, 用于计算地址索引的序号
	MaxTxsPerBlock int64 = 100000
)

// 执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

//系统保留的 log 类型
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	//TyLogTransfer coins
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	//9, 10 保留
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
)

//LogInfo 日志的结构和名称
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

var systemLog = map[int64]*LogInfo{
	TyLogFee:             {reflect.TypeOf(ReceiptAccountTransfer{}), "LogFee"},
	TyLogTransfer:        {reflect.TypeOf(ReceiptAccountTransfer{}), "LogTransfer"},
	TyLogGenesis:         {reflect.TypeOf(ReqNil{}), "LogGenesis"},
	TyLogDeposit:         {reflect.TypeOf(ReceiptAccountTransfer{}), "LogDeposit"},
	TyLogExecTransfer:    {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecTransfer"},
	TyLogExecWithdraw:    {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecWithdraw"},
	TyLogExecDeposit:     {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecDeposit"},
	TyLogGenesisTransfer: {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesisTransfer"},
	TyLogGenesisDeposit:  {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogGenesisDeposit"},
}
