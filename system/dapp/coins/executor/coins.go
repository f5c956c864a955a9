// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package executor coins 是一个货币的exec。内置货币的执行器。

主要提供四种操作：
Genesis -> 创世发币
Transfer -> 转移资产
TransferToExec -> 转入执行器
Withdraw -> 从执行器取回
*/
package executor

import (
	drivers "github.com/33cn/lottery/system/dapp"
	cty "github.com/33cn/lottery/system/dapp/coins/types"
	"github.com/33cn/lottery/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

// Init 注册 coins 驱动
func Init(name string, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins, 0)
}

//初始化过程比较重量级，有很多reflact, 所以弄成全局的
func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Coins{}))
}

// GetName 驱动名称
func GetName() string {
	return newCoins().GetName()
}

// Coins coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

// GetDriverName get driver name
func (c *Coins) GetDriverName() string {
	return driverName
}

// CheckTx coins 交易的 to 是收款地址, 不要求是执行器地址
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	return nil
}
