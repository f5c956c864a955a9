// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
)

func (l *Lottery) execDelLocal(tx *types.Transaction, receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	if receiptData.GetTy() != types.ExecOk {
		return &types.LocalDBSet{}, nil
	}
	kvc := drivers.NewKVCreator(l.GetLocalDB())
	for _, item := range receiptData.Logs {
		switch item.Ty {
		case pty.TyLogLotteryInit, pty.TyLogLotteryPurchase, pty.TyLogLotteryDraw, pty.TyLogLotteryClaim:
			var lotterylog pty.ReceiptLottery
			err := types.Decode(item.Log, &lotterylog)
			if err != nil {
				return nil, err
			}
			for _, kv := range deleteLotteryStatus(&lotterylog) {
				kvc.AddKV(kv.Key, kv.Value)
			}
			switch item.Ty {
			case pty.TyLogLotteryPurchase:
				kvc.AddKV(calcLotteryBuyKey(lotterylog.Addr, lotterylog.Id), nil)
			case pty.TyLogLotteryDraw:
				kvc.AddKV(calcLotteryDrawKey(lotterylog.Id), nil)
			case pty.TyLogLotteryClaim:
				kvc.AddKV(calcLotteryClaimKey(lotterylog.Id), nil)
			}
		}
	}
	return &types.LocalDBSet{KV: kvc.KVList()}, nil
}

func deleteLotteryStatus(lotterylog *pty.ReceiptLottery) (kvs []*types.KeyValue) {
	if lotterylog.PrevStatus == lotterylog.Status {
		return nil
	}
	kvs = append(kvs, delLotteryStatus(lotterylog.Id, lotterylog.Status))
	if lotterylog.PrevStatus > 0 {
		kvs = append(kvs, addLotteryStatus(lotterylog.Id, lotterylog.PrevStatus, lotterylog.Round))
	}
	return kvs
}

//ExecDelLocal_Init 回滚本地索引
func (l *Lottery) ExecDelLocal_Init(payload *pty.LotteryInit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execDelLocal(tx, receiptData)
}

//ExecDelLocal_Purchase 回滚本地索引
func (l *Lottery) ExecDelLocal_Purchase(payload *pty.LotteryPurchase, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execDelLocal(tx, receiptData)
}

//ExecDelLocal_Draw 回滚本地索引
func (l *Lottery) ExecDelLocal_Draw(payload *pty.LotteryDraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execDelLocal(tx, receiptData)
}

//ExecDelLocal_Claim 回滚本地索引
func (l *Lottery) ExecDelLocal_Claim(payload *pty.LotteryClaim, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execDelLocal(tx, receiptData)
}
