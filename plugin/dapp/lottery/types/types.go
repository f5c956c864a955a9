// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types lottery 执行器的 action, 记录和交易构造
package types

import (
	"encoding/binary"

	"github.com/33cn/lottery/common/address"
)

//Lottery op
const (
	LotteryActionInit = 1 + iota
	LotteryActionPurchase
	LotteryActionDraw
	LotteryActionClaim

	//log for lottery
	TyLogLotteryInit     = 1801
	TyLogLotteryPurchase = 1802
	TyLogLotteryDraw     = 1803
	TyLogLotteryClaim    = 1804
)

//LotteryX 执行器名称
const LotteryX = "lottery"

//Lottery status, Pending 是没有初始化的零值, 不会被保存
const (
	LotteryPending = int32(iota)
	LotteryActive
	LotteryDrawn
	LotteryClaimed
)

//地址派生的命名空间
const (
	RoundNamespace  = "lottery"
	TicketNamespace = "ticket"
)

//彩票号码
const (
	NumbersLen = 6
	MinNumber  = 1
	MaxNumber  = 10
)

//默认配置
const (
	DefaultTicketPrice = int64(1000000)
	DefaultMaxTickets  = uint32(100)
	//MaxTicketsLimit 每期最多售出的彩票数, 配置的 maxTickets 不能超过
	MaxTicketsLimit = uint32(100)
	//一期彩票记录在账本上保持有效需要的最低余额
	DefaultReservedMinimum = int64(23677920)
)

//查询列表
const (
	ListDESC     = int32(0)
	ListASC      = int32(1)
	DefaultCount = int32(20)  //默认一次取多少条记录
	MaxCount     = int32(100) //最多取100条
)

var statusName = map[int32]string{
	LotteryPending: "pending",
	LotteryActive:  "active",
	LotteryDrawn:   "drawn",
	LotteryClaimed: "claimed",
}

//StatusName 状态名称
func StatusName(status int32) string {
	if name, ok := statusName[status]; ok {
		return name
	}
	return "unknown"
}

//IsActive 正在销售
func (r *Round) IsActive() bool {
	return r.GetStatus() == LotteryActive
}

//IsClaimed 已经领奖
func (r *Round) IsClaimed() bool {
	return r.GetStatus() == LotteryClaimed
}

//IsDrawn 已经开奖
func (r *Round) IsDrawn() bool {
	return len(r.GetNumbers()) != 0
}

//Capacity 这一期最多售出的彩票数, 创建时确定
func (r *Round) Capacity() uint32 {
	if r == nil || r.MaxTickets == 0 || r.MaxTickets > MaxTicketsLimit {
		return MaxTicketsLimit
	}
	return r.MaxTickets
}

//GetStatus get status
func (r *Round) GetStatus() int32 {
	if r != nil {
		return r.Status
	}
	return LotteryPending
}

//GetNumbers get numbers
func (r *Round) GetNumbers() []int32 {
	if r != nil {
		return r.Numbers
	}
	return nil
}

//RoundAddress 一期彩票的地址, 由 id 派生
func RoundAddress(id uint64) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], id)
	return address.DeriveAddress(RoundNamespace, buf[:])
}

//TicketAddress 彩票的地址, 由彩票期的地址和购买人的地址派生, 所以每人每期只能有一张
func TicketAddress(round, owner string) string {
	return address.DeriveAddress(TicketNamespace, []byte(round), []byte(owner))
}
