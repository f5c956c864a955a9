// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的 action 定义和交易构造
package types

import (
	"github.com/33cn/lottery/common/address"
	"github.com/33cn/lottery/types"
)

const (
	// CoinsActionTransfer defines const number
	CoinsActionTransfer = 1
	// CoinsActionGenesis  defines const coinsactiongenesis number
	CoinsActionGenesis = 2
	// CoinsActionWithdraw defines const number coinsactionwithdraw
	CoinsActionWithdraw = 3
	// CoinsActionTransferToExec defines const number coinsactiontransfertoExec
	CoinsActionTransferToExec = 10
)

var (
	// CoinsX defines a global string
	CoinsX = "coins"
	// ExecerCoins execer coins
	ExecerCoins = []byte(CoinsX)
	actionName  = map[string]int32{
		"Transfer":       CoinsActionTransfer,
		"TransferToExec": CoinsActionTransferToExec,
		"Withdraw":       CoinsActionWithdraw,
		"Genesis":        CoinsActionGenesis,
	}
	coinsType = NewType()
)

func init() {
	types.RegistorExecutor(CoinsX, coinsType)
}

// CoinsType defines exec type
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new coinstype
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName  return coins string
func (c *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload  return payload
func (c *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

// GetTypeMap return actionname for map
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

//Amount 交易涉及的金额
func (c *CoinsType) Amount(tx *types.Transaction) (int64, error) {
	payload, err := c.DecodePayload(tx)
	if err != nil {
		return 0, err
	}
	action := payload.(*CoinsAction)
	switch {
	case action.GetTransfer() != nil:
		return action.GetTransfer().Amount, nil
	case action.GetWithdraw() != nil:
		return action.GetWithdraw().Amount, nil
	case action.GetGenesis() != nil:
		return action.GetGenesis().Amount, nil
	case action.GetTransferToExec() != nil:
		return action.GetTransferToExec().Amount, nil
	}
	return 0, nil
}

func (c *CoinsType) create(action string, data types.Message, from, to string) (*types.Transaction, error) {
	tx, err := c.CreateTransaction(action, data)
	if err != nil {
		return nil, err
	}
	tx.Sender = from
	tx.To = to
	return tx, nil
}

//NewTransferTx 普通转账, to 为执行器地址时等同于转入执行器
func NewTransferTx(from, to string, amount int64, note []byte) (*types.Transaction, error) {
	transfer := &types.AssetsTransfer{Amount: amount, Note: note, To: to}
	return coinsType.create("Transfer", transfer, from, to)
}

//NewTransferToExecTx 转入执行器, 在执行器中的余额属于 from
func NewTransferToExecTx(from, execName string, amount int64) (*types.Transaction, error) {
	to := address.ExecAddress(execName)
	transfer := &types.AssetsTransferToExec{Amount: amount, ExecName: execName, To: to}
	return coinsType.create("TransferToExec", transfer, from, to)
}

//NewWithdrawTx 从执行器取回
func NewWithdrawTx(from, execName string, amount int64) (*types.Transaction, error) {
	to := address.ExecAddress(execName)
	withdraw := &types.AssetsWithdraw{Amount: amount, ExecName: execName, To: to}
	return coinsType.create("Withdraw", withdraw, from, to)
}

//NewGenesisTx 创世发币, 只能在高度 0 执行
func NewGenesisTx(from, to string, amount int64) (*types.Transaction, error) {
	genesis := &types.AssetsGenesis{Amount: amount}
	return coinsType.create("Genesis", genesis, from, to)
}
