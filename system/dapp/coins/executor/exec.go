// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/common/address"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
)

// Exec_Transfer 转账, to 是执行器地址时转入执行器
func (c *Coins) Exec_Transfer(transfer *types.AssetsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	from := tx.From()
	//to 是 execs 合约地址
	if drivers.IsDriverAddress(tx.To, c.GetHeight()) {
		return c.GetCoinsAccount().TransferToExec(from, tx.To, transfer.Amount)
	}
	return c.GetCoinsAccount().Transfer(from, tx.To, transfer.Amount)
}

// Exec_TransferToExec 转入执行器
func (c *Coins) Exec_TransferToExec(transfer *types.AssetsTransferToExec, tx *types.Transaction, index int) (*types.Receipt, error) {
	from := tx.From()
	//to 是 execs 合约地址
	if !isExecAddrMatch(transfer.ExecName, tx.To) {
		return nil, types.ErrToAddrNotSameToExecAddr
	}
	return c.GetCoinsAccount().TransferToExec(from, tx.To, transfer.Amount)
}

// Exec_Withdraw 从执行器取回
func (c *Coins) Exec_Withdraw(withdraw *types.AssetsWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	from := tx.From()
	//to 是 execs 合约地址
	if drivers.IsDriverAddress(tx.To, c.GetHeight()) || isExecAddrMatch(withdraw.ExecName, tx.To) {
		return c.GetCoinsAccount().TransferWithdraw(from, tx.To, withdraw.Amount)
	}
	return nil, types.ErrActionNotSupport
}

// Exec_Genesis 创世, 只能在高度 0 执行
func (c *Coins) Exec_Genesis(genesis *types.AssetsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if c.GetHeight() != 0 {
		return nil, types.ErrReRunGenesis
	}
	if drivers.IsDriverAddress(tx.To, c.GetHeight()) {
		return c.GetCoinsAccount().GenesisInitExec(genesis.ReturnAddress, genesis.Amount, tx.To)
	}
	return c.GetCoinsAccount().GenesisInit(tx.To, genesis.Amount)
}

func isExecAddrMatch(name string, to string) bool {
	toaddr := address.ExecAddress(name)
	return toaddr == to
}
