// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package executor lottery 执行器

一期彩票的生命周期:
Init -> 创建, 创建人预留最低余额, 状态为 Active
Purchase -> 购买, 每个地址每期只能买一张, 最多 maxTickets 张
Draw -> 创建人开奖, 状态为 Drawn
Claim -> 号码按顺序完全一致的彩票领走奖池中超出预留的部分, 状态为 Claimed
*/
package executor

import (
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
	log "github.com/inconshreveable/log15"
)

var llog = log.New("module", "execs.lottery")

var (
	driverName = pty.LotteryX
	defaultSub []byte
)

//Init 注册 lottery 驱动, sub 为 [exec.sub.lottery] 的默认配置
func Init(name string, sub []byte) {
	if name != driverName {
		panic("lottery dapp can't be rename")
	}
	if len(sub) != 0 {
		//配置错误在启动时 panic
		pty.ParseConfig(sub)
		defaultSub = sub
	}
	drivers.Register(driverName, newLottery, 0)
}

//初始化过程比较重量级，有很多reflact, 所以弄成全局的
func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Lottery{}))
}

//GetName 驱动名称
func GetName() string {
	return newLottery().GetName()
}

//Lottery lottery 执行器
type Lottery struct {
	drivers.DriverBase
}

func newLottery() drivers.Driver {
	l := &Lottery{}
	l.SetChild(l)
	l.SetExecutorType(types.LoadExecutorType(driverName))
	return l
}

//GetDriverName get driver name
func (l *Lottery) GetDriverName() string {
	return driverName
}

func (l *Lottery) getConfig() *pty.Config {
	sub := l.GetSubConfig()
	if len(sub) == 0 {
		sub = defaultSub
	}
	return pty.ParseConfig(sub)
}
