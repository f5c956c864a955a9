// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/account"
	"github.com/33cn/lottery/common"
	dbm "github.com/33cn/lottery/common/db"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
)

//Action 一笔 lottery 交易的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	cfg          *pty.Config
}

//NewAction new action
func NewAction(l *Lottery, tx *types.Transaction) *Action {
	return &Action{
		coinsAccount: l.GetCoinsAccount(),
		db:           l.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    l.GetBlockTime(),
		height:       l.GetHeight(),
		execaddr:     drivers.ExecAddress(string(tx.Execer)),
		cfg:          l.getConfig(),
	}
}

func readRound(db dbm.KV, addr string) (*pty.Round, error) {
	data, err := db.Get(calcRoundKey(addr))
	if err == types.ErrNotFound || (err == nil && len(data) == 0) {
		return nil, pty.ErrLotteryNotFound
	}
	if err != nil {
		llog.Error("readRound", "addr", addr, "err", err)
		return nil, err
	}
	var round pty.Round
	if err = types.Decode(data, &round); err != nil {
		//数据库已经损坏
		panic(err)
	}
	return &round, nil
}

func readTicket(db dbm.KV, addr string) (*pty.Ticket, error) {
	data, err := db.Get(calcTicketKey(addr))
	if err == types.ErrNotFound || (err == nil && len(data) == 0) {
		return nil, pty.ErrTicketNotFound
	}
	if err != nil {
		llog.Error("readTicket", "addr", addr, "err", err)
		return nil, err
	}
	var ticket pty.Ticket
	if err = types.Decode(data, &ticket); err != nil {
		panic(err)
	}
	return &ticket, nil
}

//checkNumbers 6 个号码, 每个在 [1, 10] 之间, 互不相同
func checkNumbers(numbers []int32) error {
	if len(numbers) != pty.NumbersLen {
		return pty.ErrLotteryInvalidNumbers
	}
	for _, n := range numbers {
		if n < pty.MinNumber || n > pty.MaxNumber {
			return pty.ErrLotteryInvalidNumbers
		}
	}
	for i := 0; i < len(numbers); i++ {
		for j := i + 1; j < len(numbers); j++ {
			if numbers[i] == numbers[j] {
				return pty.ErrLotteryInvalidNumbers
			}
		}
	}
	return nil
}

//matchNumbers 按顺序完全一致
func matchNumbers(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (action *Action) receiptLog(round *pty.Round, prevStatus int32) *pty.ReceiptLottery {
	return &pty.ReceiptLottery{
		Id:         round.Id,
		Round:      round.Address,
		Status:     round.Status,
		PrevStatus: prevStatus,
		Addr:       action.fromaddr,
		Sold:       round.Sold,
		Height:     action.height,
		Time:       action.blocktime,
	}
}

func (action *Action) buildReceipt(transfer *types.Receipt, kvc *drivers.KVCreator, ty int32, r *pty.ReceiptLottery) *types.Receipt {
	var kv []*types.KeyValue
	var logs []*types.ReceiptLog
	if transfer != nil {
		kv = append(kv, transfer.KV...)
		logs = append(logs, transfer.Logs...)
	}
	kv = append(kv, kvc.KVList()...)
	logs = append(logs, &types.ReceiptLog{Ty: ty, Log: types.Encode(r)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}
}

//LotteryInit 创建一期彩票, 创建人把预留的最低余额转入彩票地址
func (action *Action) LotteryInit(init *pty.LotteryInit) (*types.Receipt, error) {
	addr := pty.RoundAddress(init.Id)
	_, err := readRound(action.db, addr)
	if err == nil {
		llog.Error("LotteryInit", "id", init.Id, "err", types.ErrAlreadyExists)
		return nil, types.ErrAlreadyExists
	}
	if err != pty.ErrLotteryNotFound {
		return nil, err
	}
	transfer, err := action.coinsAccount.ExecTransfer(action.fromaddr, addr, action.execaddr, action.cfg.ReservedMinimum)
	if err != nil {
		llog.Error("LotteryInit.ExecTransfer", "addr", action.fromaddr, "reserve", action.cfg.ReservedMinimum, "err", err)
		return nil, err
	}
	round := &pty.Round{
		Authority:    action.fromaddr,
		Id:           init.Id,
		Price:        action.cfg.TicketPrice,
		Status:       pty.LotteryActive,
		Address:      addr,
		CreateHeight: action.height,
		Reserve:      action.cfg.ReservedMinimum,
		MaxTickets:   action.cfg.MaxTickets,
	}
	kvc := drivers.NewKVCreator(action.db)
	kvc.Add(calcRoundKey(addr), types.Encode(round))
	r := action.receiptLog(round, pty.LotteryPending)
	r.Amount = round.Reserve
	llog.Debug("LotteryInit", "id", init.Id, "round", addr, "authority", action.fromaddr)
	return action.buildReceipt(transfer, kvc, pty.TyLogLotteryInit, r), nil
}

//LotteryPurchase 购买彩票, 票价转入彩票地址
func (action *Action) LotteryPurchase(buy *pty.LotteryPurchase) (*types.Receipt, error) {
	round, err := readRound(action.db, pty.RoundAddress(buy.Id))
	if err != nil {
		return nil, err
	}
	if !round.IsActive() {
		return nil, pty.ErrLotteryNotActive
	}
	if err = checkNumbers(buy.Numbers); err != nil {
		llog.Error("LotteryPurchase", "numbers", buy.Numbers, "err", err)
		return nil, err
	}
	if round.Sold >= round.Capacity() {
		return nil, pty.ErrLotterySoldOut
	}
	ticketAddr := pty.TicketAddress(round.Address, action.fromaddr)
	_, err = readTicket(action.db, ticketAddr)
	if err == nil {
		llog.Error("LotteryPurchase", "id", buy.Id, "addr", action.fromaddr, "err", types.ErrAlreadyExists)
		return nil, types.ErrAlreadyExists
	}
	if err != pty.ErrTicketNotFound {
		return nil, err
	}
	transfer, err := action.coinsAccount.ExecTransfer(action.fromaddr, round.Address, action.execaddr, round.Price)
	if err != nil {
		llog.Error("LotteryPurchase.ExecTransfer", "addr", action.fromaddr, "price", round.Price, "err", err)
		return nil, err
	}
	ticket := &pty.Ticket{
		Numbers: buy.Numbers,
		Round:   round.Address,
		Owner:   action.fromaddr,
		Address: ticketAddr,
		Id:      round.Id,
	}
	round.Holders = append(round.Holders, ticketAddr)
	round.Sold++

	kvc := drivers.NewKVCreator(action.db)
	kvc.Add(calcTicketKey(ticketAddr), types.Encode(ticket))
	kvc.Add(calcRoundKey(round.Address), types.Encode(round))
	r := action.receiptLog(round, round.Status)
	r.Ticket = ticketAddr
	r.Numbers = buy.Numbers
	r.Amount = round.Price
	return action.buildReceipt(transfer, kvc, pty.TyLogLotteryPurchase, r), nil
}

//LotteryDraw 开奖, 只有创建人可以开奖
func (action *Action) LotteryDraw(draw *pty.LotteryDraw) (*types.Receipt, error) {
	round, err := readRound(action.db, pty.RoundAddress(draw.Id))
	if err != nil {
		return nil, err
	}
	if round.Authority != action.fromaddr {
		llog.Error("LotteryDraw", "authority", round.Authority, "from", action.fromaddr)
		return nil, pty.ErrUnauthorized
	}
	if !round.IsActive() {
		return nil, pty.ErrLotteryNotActive
	}
	if round.Sold == 0 {
		return nil, pty.ErrLotteryNoTicketsSold
	}
	drawer, err := NewDrawer(action.cfg)
	if err != nil {
		return nil, err
	}
	numbers, err := drawer.Draw(action.height, action.blocktime)
	if err != nil {
		llog.Error("LotteryDraw", "drawer", action.cfg.Drawer, "err", err)
		return nil, err
	}
	prev := round.Status
	round.Numbers = numbers
	round.Status = pty.LotteryDrawn
	round.DrawHeight = action.height

	kvc := drivers.NewKVCreator(action.db)
	kvc.Add(calcRoundKey(round.Address), types.Encode(round))
	r := action.receiptLog(round, prev)
	r.Numbers = numbers
	llog.Debug("LotteryDraw", "id", draw.Id, "numbers", numbers, "tx", common.ToHex(action.txhash))
	return action.buildReceipt(nil, kvc, pty.TyLogLotteryDraw, r), nil
}

//LotteryClaim 领奖, 奖池中超出预留余额的部分转给中奖人
func (action *Action) LotteryClaim(claim *pty.LotteryClaim) (*types.Receipt, error) {
	round, err := readRound(action.db, pty.RoundAddress(claim.Id))
	if err != nil {
		return nil, err
	}
	ticket, err := readTicket(action.db, pty.TicketAddress(round.Address, action.fromaddr))
	if err != nil {
		return nil, err
	}
	if round.IsActive() {
		return nil, pty.ErrLotteryIsActive
	}
	if round.IsClaimed() {
		return nil, pty.ErrLotteryAlreadyClaimed
	}
	if !round.IsDrawn() {
		return nil, pty.ErrLotteryNumbersNotDrawn
	}
	if !matchNumbers(ticket.Numbers, round.Numbers) {
		return nil, pty.ErrLotteryNumbersDoNotMatch
	}
	available := action.coinsAccount.ExecAvailable(round.Address, action.execaddr, round.Reserve)
	var transfer *types.Receipt
	if available > 0 {
		transfer, err = action.coinsAccount.ExecTransferKeep(round.Address, action.fromaddr, action.execaddr, available, round.Reserve)
		if err != nil {
			llog.Error("LotteryClaim.ExecTransferKeep", "round", round.Address, "amount", available, "err", err)
			return nil, err
		}
	}
	prev := round.Status
	round.Status = pty.LotteryClaimed

	kvc := drivers.NewKVCreator(action.db)
	kvc.Add(calcRoundKey(round.Address), types.Encode(round))
	r := action.receiptLog(round, prev)
	r.Ticket = ticket.Address
	r.Numbers = ticket.Numbers
	r.Amount = available
	llog.Info("LotteryClaim", "id", claim.Id, "winner", action.fromaddr, "amount", types.FormatAmount(available))
	return action.buildReceipt(transfer, kvc, pty.TyLogLotteryClaim, r), nil
}
