// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/common"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
)

func (l *Lottery) execLocal(tx *types.Transaction, receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	if receipt.GetTy() != types.ExecOk {
		return &types.LocalDBSet{}, nil
	}
	//索引由执行器统一写入 localdb
	kvc := drivers.NewKVCreator(l.GetLocalDB())
	txhash := common.ToHex(tx.Hash())
	for _, item := range receipt.Logs {
		switch item.Ty {
		case pty.TyLogLotteryInit, pty.TyLogLotteryPurchase, pty.TyLogLotteryDraw, pty.TyLogLotteryClaim:
			var lotterylog pty.ReceiptLottery
			err := types.Decode(item.Log, &lotterylog)
			if err != nil {
				return nil, err
			}
			for _, kv := range saveLotteryStatus(&lotterylog) {
				kvc.AddKV(kv.Key, kv.Value)
			}
			var kv *types.KeyValue
			switch item.Ty {
			case pty.TyLogLotteryPurchase:
				kv = saveLotteryBuy(&lotterylog, txhash)
			case pty.TyLogLotteryDraw:
				kv = saveLotteryDraw(&lotterylog, txhash)
			case pty.TyLogLotteryClaim:
				kv = saveLotteryClaim(&lotterylog, txhash)
			}
			if kv != nil {
				kvc.AddKV(kv.Key, kv.Value)
			}
		}
	}
	return &types.LocalDBSet{KV: kvc.KVList()}, nil
}

//状态没有变化时不修改索引
func saveLotteryStatus(lotterylog *pty.ReceiptLottery) (kvs []*types.KeyValue) {
	if lotterylog.PrevStatus == lotterylog.Status {
		return nil
	}
	if lotterylog.PrevStatus > 0 {
		kvs = append(kvs, delLotteryStatus(lotterylog.Id, lotterylog.PrevStatus))
	}
	kvs = append(kvs, addLotteryStatus(lotterylog.Id, lotterylog.Status, lotterylog.Round))
	return kvs
}

func addLotteryStatus(id uint64, status int32, round string) *types.KeyValue {
	return &types.KeyValue{Key: calcLotteryStatusKey(status, id), Value: []byte(round)}
}

func delLotteryStatus(id uint64, status int32) *types.KeyValue {
	return &types.KeyValue{Key: calcLotteryStatusKey(status, id), Value: nil}
}

func saveLotteryBuy(lotterylog *pty.ReceiptLottery, txhash string) *types.KeyValue {
	record := &pty.LotteryBuyRecord{
		Id:      lotterylog.Id,
		Round:   lotterylog.Round,
		Ticket:  lotterylog.Ticket,
		Numbers: lotterylog.Numbers,
		Amount:  lotterylog.Amount,
		Height:  lotterylog.Height,
		Time:    lotterylog.Time,
		TxHash:  txhash,
	}
	return &types.KeyValue{Key: calcLotteryBuyKey(lotterylog.Addr, lotterylog.Id), Value: types.Encode(record)}
}

func saveLotteryDraw(lotterylog *pty.ReceiptLottery, txhash string) *types.KeyValue {
	record := &pty.LotteryDrawRecord{
		Id:      lotterylog.Id,
		Numbers: lotterylog.Numbers,
		Sold:    lotterylog.Sold,
		Height:  lotterylog.Height,
		Time:    lotterylog.Time,
		TxHash:  txhash,
	}
	return &types.KeyValue{Key: calcLotteryDrawKey(lotterylog.Id), Value: types.Encode(record)}
}

func saveLotteryClaim(lotterylog *pty.ReceiptLottery, txhash string) *types.KeyValue {
	record := &pty.LotteryClaimRecord{
		Id:     lotterylog.Id,
		Addr:   lotterylog.Addr,
		Amount: lotterylog.Amount,
		Height: lotterylog.Height,
		Time:   lotterylog.Time,
		TxHash: txhash,
	}
	return &types.KeyValue{Key: calcLotteryClaimKey(lotterylog.Id), Value: types.Encode(record)}
}

//ExecLocal_Init 本地索引
func (l *Lottery) ExecLocal_Init(payload *pty.LotteryInit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execLocal(tx, receiptData)
}

//ExecLocal_Purchase 本地索引
func (l *Lottery) ExecLocal_Purchase(payload *pty.LotteryPurchase, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execLocal(tx, receiptData)
}

//ExecLocal_Draw 本地索引
func (l *Lottery) ExecLocal_Draw(payload *pty.LotteryDraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execLocal(tx, receiptData)
}

//ExecLocal_Claim 本地索引
func (l *Lottery) ExecLocal_Claim(payload *pty.LotteryClaim, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execLocal(tx, receiptData)
}
