// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/account"
	dbm "github.com/33cn/lottery/common/db"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
)

//Query_GetLotteryRound 查询一期彩票
func (l *Lottery) Query_GetLotteryRound(param *pty.ReqLotteryRound) (types.Message, error) {
	round, err := readRound(l.GetStateDB(), pty.RoundAddress(param.Id))
	if err != nil {
		return nil, err
	}
	return round, nil
}

//Query_GetLotteryTicket 查询某个地址的彩票
func (l *Lottery) Query_GetLotteryTicket(param *pty.ReqLotteryTicket) (types.Message, error) {
	if param.Addr == "" {
		return nil, types.ErrInvalidParam
	}
	ticket, err := readTicket(l.GetStateDB(), pty.TicketAddress(pty.RoundAddress(param.Id), param.Addr))
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

//Query_ListLotteryByStatus 按状态列出彩票
func (l *Lottery) Query_ListLotteryByStatus(param *pty.ReqLotteryList) (types.Message, error) {
	if param.Status <= pty.LotteryPending || param.Status > pty.LotteryClaimed {
		return nil, types.ErrInvalidParam
	}
	count, err := listCount(param.Count, param.Direction)
	if err != nil {
		return nil, err
	}
	var key []byte
	if param.PrimaryId != 0 {
		key = calcLotteryStatusKey(param.Status, param.PrimaryId)
	}
	values, err := l.GetLocalDB().List(calcLotteryStatusPrefix(param.Status), key, count, param.Direction)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	reply := &pty.ReplyLotteryList{}
	for _, value := range values {
		round, err := readRound(l.GetStateDB(), string(value))
		if err != nil {
			llog.Error("ListLotteryByStatus", "round", string(value), "err", err)
			continue
		}
		reply.Rounds = append(reply.Rounds, round)
	}
	return reply, nil
}

//Query_GetLotteryBuyHistory 查询某个地址的购买记录
func (l *Lottery) Query_GetLotteryBuyHistory(param *pty.ReqLotteryBuyHistory) (types.Message, error) {
	if param.Addr == "" {
		return nil, types.ErrInvalidParam
	}
	count, err := listCount(param.Count, param.Direction)
	if err != nil {
		return nil, err
	}
	var key []byte
	if param.PrimaryId != 0 {
		key = calcLotteryBuyKey(param.Addr, param.PrimaryId)
	}
	values, err := l.GetLocalDB().List(calcLotteryBuyPrefix(param.Addr), key, count, param.Direction)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	records := &pty.LotteryBuyRecords{}
	for _, value := range values {
		var record pty.LotteryBuyRecord
		if err := types.Decode(value, &record); err != nil {
			continue
		}
		records.Records = append(records.Records, &record)
	}
	return records, nil
}

//Query_GetLotteryDrawRecord 查询开奖记录
func (l *Lottery) Query_GetLotteryDrawRecord(param *pty.ReqLotteryRound) (types.Message, error) {
	var record pty.LotteryDrawRecord
	if err := getLocalRecord(l.GetLocalDB(), calcLotteryDrawKey(param.Id), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

//Query_GetLotteryClaimRecord 查询领奖记录
func (l *Lottery) Query_GetLotteryClaimRecord(param *pty.ReqLotteryRound) (types.Message, error) {
	var record pty.LotteryClaimRecord
	if err := getLocalRecord(l.GetLocalDB(), calcLotteryClaimKey(param.Id), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

//Query_GetLotteryEscrow 查询奖池, 奖池是超出预留余额的部分
func (l *Lottery) Query_GetLotteryEscrow(param *pty.ReqLotteryRound) (types.Message, error) {
	round, err := readRound(l.GetStateDB(), pty.RoundAddress(param.Id))
	if err != nil {
		return nil, err
	}
	acc := l.GetCoinsAccount().LoadExecAccount(round.Address, drivers.ExecAddress(driverName))
	escrow := account.SaturatingSub(acc.Balance, round.Reserve)
	return &pty.ReplyLotteryEscrow{
		Id:        round.Id,
		Address:   round.Address,
		Balance:   acc.Balance,
		Reserve:   round.Reserve,
		Escrow:    escrow,
		EscrowStr: types.FormatAmount(escrow),
	}, nil
}

func listCount(count, direction int32) (int32, error) {
	if direction != pty.ListDESC && direction != pty.ListASC {
		return 0, types.ErrInvalidParam
	}
	if count <= 0 {
		return pty.DefaultCount, nil
	}
	if count > pty.MaxCount {
		return pty.MaxCount, nil
	}
	return count, nil
}

func getLocalRecord(db dbm.KVDB, key []byte, msg types.Message) error {
	value, err := db.Get(key)
	if err != nil {
		return err
	}
	return types.Decode(value, msg)
}
