// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
	"testing"

	"github.com/33cn/lottery/common/address"
	"github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/common/db/local"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	authority = address.ExecAddress("user.lottery.authority")
	player1   = address.ExecAddress("user.lottery.player1")
	player2   = address.ExecAddress("user.lottery.player2")
	poor      = address.ExecAddress("user.lottery.poor")

	winning = []int32{1, 2, 3, 4, 5, 6}
	fixed   = []byte(`{"drawer":"fixed","fixedNumbers":[1,2,3,4,5,6]}`)
)

func init() {
	Init(driverName, nil)
}

type lotteryEnv struct {
	t        *testing.T
	driver   drivers.Driver
	statedb  *local.DB
	localdb  *local.DB
	execaddr string
}

func newLotteryEnv(t *testing.T, sub []byte) *lotteryEnv {
	memdb, err := db.NewGoMemDB("lottery", "", 128)
	require.NoError(t, err)
	driver, err := drivers.LoadDriver(driverName, 0)
	require.NoError(t, err)
	env := &lotteryEnv{
		t:        t,
		driver:   driver,
		statedb:  local.NewLocalDB(memdb, false),
		localdb:  local.NewLocalDB(memdb, false),
		execaddr: address.ExecAddress(driverName),
	}
	driver.SetStateDB(env.statedb)
	driver.SetLocalDB(env.localdb)
	driver.SetEnv(10, 1539918074)
	driver.SetSubConfig(sub)
	for _, addr := range []string{authority, player1, player2} {
		_, err := driver.GetCoinsAccount().GenesisInitExec(addr, 10*types.Coin, env.execaddr)
		require.NoError(t, err)
	}
	return env
}

//exec 失败时回滚状态数据库, 成功时写入本地索引
func (env *lotteryEnv) exec(tx *types.Transaction, err error) (*types.ReceiptData, error) {
	t := env.t
	require.NoError(t, err)
	require.NoError(t, env.driver.CheckTx(tx, 0))
	env.statedb.Begin()
	receipt, err := env.driver.Exec(tx, 0)
	if err != nil {
		env.statedb.Rollback()
		return nil, err
	}
	require.NoError(t, env.statedb.Commit())
	data := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := env.driver.ExecLocal(tx, data, 0)
	require.NoError(t, err)
	for _, kv := range set.KV {
		require.NoError(t, env.localdb.Set(kv.Key, kv.Value))
	}
	return data, nil
}

func (env *lotteryEnv) delLocal(t *testing.T, tx *types.Transaction, data *types.ReceiptData) {
	set, err := env.driver.ExecDelLocal(tx, data, 0)
	require.NoError(t, err)
	for _, kv := range set.KV {
		require.NoError(t, env.localdb.Set(kv.Key, kv.Value))
	}
}

func (env *lotteryEnv) balance(addr string) int64 {
	return env.driver.GetCoinsAccount().LoadExecAccount(addr, env.execaddr).Balance
}

func (env *lotteryEnv) round(t *testing.T, id uint64) *pty.Round {
	reply, err := env.driver.Query("GetLotteryRound", types.Encode(&pty.ReqLotteryRound{Id: id}))
	require.NoError(t, err)
	return reply.(*pty.Round)
}

func (env *lotteryEnv) init(t *testing.T, from string, id uint64) {
	_, err := env.exec(pty.NewInitTx(from, id))
	require.NoError(t, err)
}

func (env *lotteryEnv) buy(t *testing.T, from string, id uint64, numbers []int32) {
	_, err := env.exec(pty.NewPurchaseTx(from, id, numbers))
	require.NoError(t, err)
}

func TestLotteryLifecycle(t *testing.T) {
	env := newLotteryEnv(t, fixed)
	cfg := pty.DefaultConfig()
	roundAddr := pty.RoundAddress(1)

	env.init(t, authority, 1)
	round := env.round(t, 1)
	assert.Equal(t, authority, round.Authority)
	assert.Equal(t, uint64(1), round.Id)
	assert.Equal(t, roundAddr, round.Address)
	assert.Equal(t, pty.LotteryActive, round.Status)
	assert.Equal(t, cfg.TicketPrice, round.Price)
	assert.Equal(t, cfg.ReservedMinimum, round.Reserve)
	assert.Equal(t, uint32(0), round.Sold)
	assert.Empty(t, round.Numbers)
	assert.Equal(t, 10*types.Coin-cfg.ReservedMinimum, env.balance(authority))
	assert.Equal(t, cfg.ReservedMinimum, env.balance(roundAddr))

	env.buy(t, player1, 1, winning)
	env.buy(t, player2, 1, []int32{2, 1, 3, 4, 5, 6})
	round = env.round(t, 1)
	assert.Equal(t, uint32(2), round.Sold)
	assert.Equal(t, []string{pty.TicketAddress(roundAddr, player1), pty.TicketAddress(roundAddr, player2)}, round.Holders)
	assert.Equal(t, 10*types.Coin-cfg.TicketPrice, env.balance(player1))
	assert.Equal(t, cfg.ReservedMinimum+2*cfg.TicketPrice, env.balance(roundAddr))

	reply, err := env.driver.Query("GetLotteryTicket", types.Encode(&pty.ReqLotteryTicket{Id: 1, Addr: player1}))
	require.NoError(t, err)
	ticket := reply.(*pty.Ticket)
	assert.Equal(t, winning, ticket.Numbers)
	assert.Equal(t, player1, ticket.Owner)
	assert.Equal(t, roundAddr, ticket.Round)

	reply, err = env.driver.Query("GetLotteryEscrow", types.Encode(&pty.ReqLotteryRound{Id: 1}))
	require.NoError(t, err)
	escrow := reply.(*pty.ReplyLotteryEscrow)
	assert.Equal(t, 2*cfg.TicketPrice, escrow.Escrow)
	assert.Equal(t, "0.0200", escrow.EscrowStr)

	_, err = env.exec(pty.NewDrawTx(player1, 1))
	assert.Equal(t, pty.ErrUnauthorized, err)

	_, err = env.exec(pty.NewClaimTx(player1, 1))
	assert.Equal(t, pty.ErrLotteryIsActive, err)

	_, err = env.exec(pty.NewDrawTx(authority, 1))
	require.NoError(t, err)
	round = env.round(t, 1)
	assert.Equal(t, pty.LotteryDrawn, round.Status)
	assert.Equal(t, winning, round.Numbers)
	assert.Equal(t, int64(10), round.DrawHeight)

	_, err = env.exec(pty.NewPurchaseTx(authority, 1, winning))
	assert.Equal(t, pty.ErrLotteryNotActive, err)
	_, err = env.exec(pty.NewDrawTx(authority, 1))
	assert.Equal(t, pty.ErrLotteryNotActive, err)

	//号码相同但是顺序不同
	_, err = env.exec(pty.NewClaimTx(player2, 1))
	assert.Equal(t, pty.ErrLotteryNumbersDoNotMatch, err)

	_, err = env.exec(pty.NewClaimTx(player1, 1))
	require.NoError(t, err)
	round = env.round(t, 1)
	assert.Equal(t, pty.LotteryClaimed, round.Status)
	assert.True(t, round.IsClaimed())
	assert.False(t, round.IsActive())
	assert.Equal(t, 10*types.Coin+cfg.TicketPrice, env.balance(player1))
	assert.Equal(t, cfg.ReservedMinimum, env.balance(roundAddr))

	_, err = env.exec(pty.NewClaimTx(player1, 1))
	assert.Equal(t, pty.ErrLotteryAlreadyClaimed, err)

	reply, err = env.driver.Query("GetLotteryEscrow", types.Encode(&pty.ReqLotteryRound{Id: 1}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), reply.(*pty.ReplyLotteryEscrow).Escrow)

	//本地索引
	reply, err = env.driver.Query("ListLotteryByStatus", types.Encode(&pty.ReqLotteryList{Status: pty.LotteryClaimed}))
	require.NoError(t, err)
	rounds := reply.(*pty.ReplyLotteryList).Rounds
	require.Equal(t, 1, len(rounds))
	assert.Equal(t, roundAddr, rounds[0].Address)
	reply, err = env.driver.Query("ListLotteryByStatus", types.Encode(&pty.ReqLotteryList{Status: pty.LotteryActive}))
	require.NoError(t, err)
	assert.Empty(t, reply.(*pty.ReplyLotteryList).Rounds)

	reply, err = env.driver.Query("GetLotteryBuyHistory", types.Encode(&pty.ReqLotteryBuyHistory{Addr: player2}))
	require.NoError(t, err)
	records := reply.(*pty.LotteryBuyRecords).Records
	require.Equal(t, 1, len(records))
	assert.Equal(t, []int32{2, 1, 3, 4, 5, 6}, records[0].Numbers)
	assert.Equal(t, cfg.TicketPrice, records[0].Amount)

	reply, err = env.driver.Query("GetLotteryDrawRecord", types.Encode(&pty.ReqLotteryRound{Id: 1}))
	require.NoError(t, err)
	draw := reply.(*pty.LotteryDrawRecord)
	assert.Equal(t, winning, draw.Numbers)
	assert.Equal(t, uint32(2), draw.Sold)

	reply, err = env.driver.Query("GetLotteryClaimRecord", types.Encode(&pty.ReqLotteryRound{Id: 1}))
	require.NoError(t, err)
	claim := reply.(*pty.LotteryClaimRecord)
	assert.Equal(t, player1, claim.Addr)
	assert.Equal(t, 2*cfg.TicketPrice, claim.Amount)
}

func TestLotteryInit(t *testing.T) {
	env := newLotteryEnv(t, nil)
	env.init(t, authority, 7)

	_, err := env.exec(pty.NewInitTx(player1, 7))
	assert.Equal(t, types.ErrAlreadyExists, err)
	assert.Equal(t, pty.AlreadyExists, pty.Category(err))
	assert.Equal(t, authority, env.round(t, 7).Authority)

	before := env.balance(poor)
	_, err = env.exec(pty.NewInitTx(poor, 8))
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, before, env.balance(poor))
	_, err = env.driver.Query("GetLotteryRound", types.Encode(&pty.ReqLotteryRound{Id: 8}))
	assert.Equal(t, pty.ErrLotteryNotFound, err)
}

func TestLotteryPurchase(t *testing.T) {
	env := newLotteryEnv(t, []byte(`{"maxTickets":2}`))
	_, err := env.exec(pty.NewPurchaseTx(player1, 1, winning))
	assert.Equal(t, pty.ErrLotteryNotFound, err)

	env.init(t, authority, 1)
	invalid := [][]int32{
		nil,
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5, 6, 7},
		{0, 2, 3, 4, 5, 6},
		{1, 2, 3, 4, 5, 11},
		{1, 2, 3, 4, 5, 5},
	}
	for _, numbers := range invalid {
		_, err = env.exec(pty.NewPurchaseTx(player1, 1, numbers))
		assert.Equal(t, pty.ErrLotteryInvalidNumbers, err, "numbers %v", numbers)
		assert.Equal(t, pty.InvalidInput, pty.Category(err))
	}

	_, err = env.exec(pty.NewPurchaseTx(poor, 1, winning))
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, uint32(0), env.round(t, 1).Sold)

	env.buy(t, player1, 1, winning)
	_, err = env.exec(pty.NewPurchaseTx(player1, 1, []int32{6, 5, 4, 3, 2, 1}))
	assert.Equal(t, types.ErrAlreadyExists, err)

	env.buy(t, player2, 1, []int32{10, 9, 8, 7, 6, 5})
	_, err = env.exec(pty.NewPurchaseTx(authority, 1, winning))
	assert.Equal(t, pty.ErrLotterySoldOut, err)
	assert.Equal(t, pty.CapacityExceeded, pty.Category(err))

	round := env.round(t, 1)
	assert.Equal(t, uint32(2), round.Sold)
	assert.Equal(t, int(round.Sold), len(round.Holders))
}

func TestLotteryPurchaseCapacity(t *testing.T) {
	env := newLotteryEnv(t, []byte(`{"maxTickets":150}`))
	env.init(t, authority, 1)
	assert.Equal(t, pty.MaxTicketsLimit, env.round(t, 1).MaxTickets)

	acc := env.driver.GetCoinsAccount()
	buyer := func(i int) string {
		return address.ExecAddress(fmt.Sprintf("user.lottery.buyer%d", i))
	}
	for i := 0; i <= int(pty.MaxTicketsLimit); i++ {
		_, err := acc.GenesisInitExec(buyer(i), types.Coin, env.execaddr)
		require.NoError(t, err)
	}
	for i := 0; i < int(pty.MaxTicketsLimit); i++ {
		env.buy(t, buyer(i), 1, winning)
	}
	_, err := env.exec(pty.NewPurchaseTx(buyer(int(pty.MaxTicketsLimit)), 1, winning))
	assert.Equal(t, pty.ErrLotterySoldOut, err)
	round := env.round(t, 1)
	assert.Equal(t, pty.MaxTicketsLimit, round.Sold)
	assert.Equal(t, int(pty.MaxTicketsLimit), len(round.Holders))
}

func TestLotteryCapacityFixedAtInit(t *testing.T) {
	env := newLotteryEnv(t, []byte(`{"maxTickets":1}`))
	env.init(t, authority, 1)
	env.buy(t, player1, 1, winning)

	//配置修改后, 已经创建的彩票期仍然使用创建时的上限
	env.driver.SetSubConfig([]byte(`{"maxTickets":50}`))
	_, err := env.exec(pty.NewPurchaseTx(player2, 1, winning))
	assert.Equal(t, pty.ErrLotterySoldOut, err)

	env.init(t, authority, 2)
	assert.Equal(t, uint32(50), env.round(t, 2).Capacity())
	env.buy(t, player2, 2, winning)
}

func TestLotteryDraw(t *testing.T) {
	env := newLotteryEnv(t, nil)
	_, err := env.exec(pty.NewDrawTx(authority, 1))
	assert.Equal(t, pty.ErrLotteryNotFound, err)

	env.init(t, authority, 1)
	_, err = env.exec(pty.NewDrawTx(authority, 1))
	assert.Equal(t, pty.ErrLotteryNoTicketsSold, err)
	assert.Equal(t, pty.NoDemand, pty.Category(err))

	env.buy(t, player1, 1, winning)
	_, err = env.exec(pty.NewDrawTx(authority, 1))
	require.NoError(t, err)
	round := env.round(t, 1)
	expect, err := BlockDrawer{}.Draw(10, 1539918074)
	require.NoError(t, err)
	assert.Equal(t, expect, round.Numbers)
	assert.True(t, round.IsDrawn())
}

func TestLotteryDrawBadConfig(t *testing.T) {
	env := newLotteryEnv(t, []byte(`{"drawer":"fixed","fixedNumbers":[1,2,3]}`))
	env.init(t, authority, 1)
	env.buy(t, player1, 1, winning)
	_, err := env.exec(pty.NewDrawTx(authority, 1))
	assert.Equal(t, pty.ErrLotteryDrawer, errors.Cause(err))
	assert.Equal(t, pty.LotteryActive, env.round(t, 1).Status)
}

func TestLotteryClaim(t *testing.T) {
	env := newLotteryEnv(t, fixed)
	_, err := env.exec(pty.NewClaimTx(player1, 1))
	assert.Equal(t, pty.ErrLotteryNotFound, err)

	env.init(t, authority, 1)
	env.buy(t, player1, 1, winning)
	_, err = env.exec(pty.NewClaimTx(player2, 1))
	assert.Equal(t, pty.ErrTicketNotFound, err)
	assert.Equal(t, pty.NotFound, pty.Category(err))

	_, err = env.exec(pty.NewDrawTx(authority, 1))
	require.NoError(t, err)
	_, err = env.exec(pty.NewClaimTx(player2, 1))
	assert.Equal(t, pty.ErrTicketNotFound, err)

	//只卖出一张, 奖池为一张彩票的价格
	before := env.balance(player1)
	data, err := env.exec(pty.NewClaimTx(player1, 1))
	require.NoError(t, err)
	price := pty.DefaultConfig().TicketPrice
	assert.Equal(t, before+price, env.balance(player1))
	last := data.Logs[len(data.Logs)-1]
	assert.Equal(t, int32(pty.TyLogLotteryClaim), last.Ty)
	var r pty.ReceiptLottery
	require.NoError(t, types.Decode(last.Log, &r))
	assert.Equal(t, price, r.Amount)
	assert.Equal(t, pty.LotteryDrawn, r.PrevStatus)
	assert.Equal(t, pty.LotteryClaimed, r.Status)
}

func TestLotteryClaimEmptyEscrow(t *testing.T) {
	env := newLotteryEnv(t, fixed)
	env.init(t, authority, 1)
	env.buy(t, player1, 1, winning)
	_, err := env.exec(pty.NewDrawTx(authority, 1))
	require.NoError(t, err)

	//奖池被取走后, 领奖只修改状态
	roundAddr := pty.RoundAddress(1)
	acc := env.driver.GetCoinsAccount()
	_, err = acc.ExecTransfer(roundAddr, player2, env.execaddr, env.balance(roundAddr)-1)
	require.NoError(t, err)

	before := env.balance(player1)
	data, err := env.exec(pty.NewClaimTx(player1, 1))
	require.NoError(t, err)
	assert.Equal(t, before, env.balance(player1))
	assert.Equal(t, int64(1), env.balance(roundAddr))
	assert.Equal(t, 1, len(data.Logs))
	assert.Equal(t, pty.LotteryClaimed, env.round(t, 1).Status)
}

func TestLotteryExecDelLocal(t *testing.T) {
	env := newLotteryEnv(t, fixed)
	initTx, err := pty.NewInitTx(authority, 3)
	require.NoError(t, err)
	initData, err := env.exec(initTx, nil)
	require.NoError(t, err)
	buyTx, err := pty.NewPurchaseTx(player1, 3, winning)
	require.NoError(t, err)
	buyData, err := env.exec(buyTx, nil)
	require.NoError(t, err)
	drawTx, err := pty.NewDrawTx(authority, 3)
	require.NoError(t, err)
	drawData, err := env.exec(drawTx, nil)
	require.NoError(t, err)

	list := func(status int32) int {
		reply, err := env.driver.Query("ListLotteryByStatus", types.Encode(&pty.ReqLotteryList{Status: status}))
		require.NoError(t, err)
		return len(reply.(*pty.ReplyLotteryList).Rounds)
	}
	assert.Equal(t, 0, list(pty.LotteryActive))
	assert.Equal(t, 1, list(pty.LotteryDrawn))

	env.delLocal(t, drawTx, drawData)
	assert.Equal(t, 1, list(pty.LotteryActive))
	assert.Equal(t, 0, list(pty.LotteryDrawn))
	_, err = env.driver.Query("GetLotteryDrawRecord", types.Encode(&pty.ReqLotteryRound{Id: 3}))
	assert.Equal(t, types.ErrNotFound, err)

	env.delLocal(t, buyTx, buyData)
	reply, err := env.driver.Query("GetLotteryBuyHistory", types.Encode(&pty.ReqLotteryBuyHistory{Addr: player1}))
	require.NoError(t, err)
	assert.Empty(t, reply.(*pty.LotteryBuyRecords).Records)
	assert.Equal(t, 1, list(pty.LotteryActive))

	env.delLocal(t, initTx, initData)
	assert.Equal(t, 0, list(pty.LotteryActive))
}

func TestLotteryQueryParams(t *testing.T) {
	env := newLotteryEnv(t, nil)
	_, err := env.driver.Query("GetLotteryTicket", types.Encode(&pty.ReqLotteryTicket{Id: 1}))
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = env.driver.Query("ListLotteryByStatus", types.Encode(&pty.ReqLotteryList{Status: pty.LotteryPending}))
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = env.driver.Query("ListLotteryByStatus", types.Encode(&pty.ReqLotteryList{Status: pty.LotteryActive, Direction: 2}))
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = env.driver.Query("GetLotteryBuyHistory", types.Encode(&pty.ReqLotteryBuyHistory{}))
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = env.driver.Query("GetLotteryEscrow", types.Encode(&pty.ReqLotteryRound{Id: 9}))
	assert.Equal(t, pty.ErrLotteryNotFound, err)

	for i := uint64(1); i <= 3; i++ {
		env.init(t, authority, i)
	}
	reply, err := env.driver.Query("ListLotteryByStatus", types.Encode(&pty.ReqLotteryList{Status: pty.LotteryActive, Count: 2, Direction: pty.ListASC}))
	require.NoError(t, err)
	rounds := reply.(*pty.ReplyLotteryList).Rounds
	require.Equal(t, 2, len(rounds))
	assert.Equal(t, uint64(1), rounds[0].Id)
	assert.Equal(t, uint64(2), rounds[1].Id)

	reply, err = env.driver.Query("ListLotteryByStatus", types.Encode(&pty.ReqLotteryList{Status: pty.LotteryActive, Direction: pty.ListDESC}))
	require.NoError(t, err)
	rounds = reply.(*pty.ReplyLotteryList).Rounds
	require.Equal(t, 3, len(rounds))
	assert.Equal(t, uint64(3), rounds[0].Id)

	reply, err = env.driver.Query("ListLotteryByStatus", types.Encode(&pty.ReqLotteryList{Status: pty.LotteryActive, Direction: pty.ListASC, PrimaryId: 1}))
	require.NoError(t, err)
	rounds = reply.(*pty.ReplyLotteryList).Rounds
	require.Equal(t, 2, len(rounds))
	assert.Equal(t, uint64(2), rounds[0].Id)
}

func TestBlockDrawer(t *testing.T) {
	for height := int64(0); height < 200; height++ {
		numbers, err := BlockDrawer{}.Draw(height, 1539918074+height)
		require.NoError(t, err)
		require.Equal(t, pty.NumbersLen, len(numbers))
		for _, n := range numbers {
			assert.True(t, n >= pty.MinNumber && n <= pty.MaxNumber, "number %d", n)
		}
		again, err := BlockDrawer{}.Draw(height, 1539918074+height)
		require.NoError(t, err)
		assert.Equal(t, numbers, again)
	}
	numbers, err := BlockDrawer{}.Draw(0, 1539918074)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 1, 1, 1, 1, 1}, numbers)
}

func TestNewDrawer(t *testing.T) {
	d, err := NewDrawer(&pty.Config{})
	require.NoError(t, err)
	assert.IsType(t, BlockDrawer{}, d)

	d, err = NewDrawer(&pty.Config{Drawer: DrawerFixed, FixedNumbers: winning})
	require.NoError(t, err)
	numbers, err := d.Draw(1, 1)
	require.NoError(t, err)
	assert.Equal(t, winning, numbers)
	numbers[0] = 9
	again, _ := d.Draw(1, 1)
	assert.Equal(t, int32(1), again[0])

	d, err = NewDrawer(&pty.Config{Drawer: DrawerFixed, FixedNumbers: []int32{1, 2, 3, 4, 5, 0}})
	require.NoError(t, err)
	_, err = d.Draw(1, 1)
	assert.Equal(t, pty.ErrLotteryDrawer, errors.Cause(err))

	_, err = NewDrawer(&pty.Config{Drawer: "vrf"})
	assert.Equal(t, pty.ErrLotteryDrawer, errors.Cause(err))
}

func TestMatchNumbers(t *testing.T) {
	assert.True(t, matchNumbers(winning, []int32{1, 2, 3, 4, 5, 6}))
	assert.False(t, matchNumbers(winning, []int32{6, 5, 4, 3, 2, 1}))
	assert.False(t, matchNumbers(winning, winning[:5]))
	assert.NoError(t, checkNumbers(winning))
	assert.Equal(t, pty.ErrLotteryInvalidNumbers, checkNumbers([]int32{1, 1, 2, 3, 4, 5}))
}
