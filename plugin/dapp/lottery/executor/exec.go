// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	"github.com/33cn/lottery/types"
)

//Exec_Init 创建一期彩票
func (l *Lottery) Exec_Init(payload *pty.LotteryInit, tx *types.Transaction, index int) (*types.Receipt, error) {
	actiondb := NewAction(l, tx)
	return actiondb.LotteryInit(payload)
}

//Exec_Purchase 购买
func (l *Lottery) Exec_Purchase(payload *pty.LotteryPurchase, tx *types.Transaction, index int) (*types.Receipt, error) {
	actiondb := NewAction(l, tx)
	return actiondb.LotteryPurchase(payload)
}

//Exec_Draw 开奖
func (l *Lottery) Exec_Draw(payload *pty.LotteryDraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	actiondb := NewAction(l, tx)
	return actiondb.LotteryDraw(payload)
}

//Exec_Claim 领奖
func (l *Lottery) Exec_Claim(payload *pty.LotteryClaim, tx *types.Transaction, index int) (*types.Receipt, error) {
	actiondb := NewAction(l, tx)
	return actiondb.LotteryClaim(payload)
}
