// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/33cn/lottery/common/address"
	"github.com/33cn/lottery/metrics"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	cty "github.com/33cn/lottery/system/dapp/coins/types"
	"github.com/33cn/lottery/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	_ "github.com/33cn/lottery/plugin"
	_ "github.com/33cn/lottery/system"
)

const blocktime = int64(1539918074)

var (
	authority = address.ExecAddress("user.exec.authority")
	winning   = []int32{1, 2, 3, 4, 5, 6}
)

func player(i int) string {
	return address.ExecAddress(fmt.Sprintf("user.exec.player%d", i))
}

func fixedSub(t *testing.T, sub *types.ConfigSubModule) {
	var err error
	lottery := sub.Exec[pty.LotteryX]
	lottery, err = types.ModifySubConfig(lottery, "drawer", "fixed")
	require.NoError(t, err)
	lottery, err = types.ModifySubConfig(lottery, "fixedNumbers", winning)
	require.NoError(t, err)
	sub.Exec[pty.LotteryX] = lottery
}

func newTestExecutor(t *testing.T, modify func(cfg *types.Config, sub *types.ConfigSubModule)) *Executor {
	cfg, sub := types.DefaultConfig()
	fixedSub(t, sub)
	if modify != nil {
		modify(cfg, sub)
	}
	exec, err := New(cfg, sub)
	require.NoError(t, err)
	exec.SetClock(func() int64 { return blocktime })
	t.Cleanup(exec.Close)
	return exec
}

func mustTx(t *testing.T) func(*types.Transaction, error) *types.Transaction {
	return func(tx *types.Transaction, err error) *types.Transaction {
		require.NoError(t, err)
		return tx
	}
}

//fund 在高度 0 创世, 然后把 amount 存入 lottery 执行器
func fund(t *testing.T, exec *Executor, amount int64, addrs ...string) {
	ctx := context.Background()
	var genesis, deposit []*types.Transaction
	for _, addr := range addrs {
		genesis = append(genesis, mustTx(t)(cty.NewGenesisTx(addr, addr, amount)))
		deposit = append(deposit, mustTx(t)(cty.NewTransferToExecTx(addr, pty.LotteryX, amount)))
	}
	for _, txs := range [][]*types.Transaction{genesis, deposit} {
		receipts, err := exec.ExecTxs(ctx, txs)
		require.NoError(t, err)
		for _, r := range receipts {
			require.Equal(t, int32(types.ExecOk), r.Ty)
		}
	}
}

func lotteryBalance(t *testing.T, exec *Executor, addr string) int64 {
	acc, err := exec.GetBalance(context.Background(), addr, pty.LotteryX)
	require.NoError(t, err)
	return acc.Balance
}

func queryRound(t *testing.T, exec *Executor, id uint64) *pty.Round {
	reply, err := exec.Query(context.Background(), pty.LotteryX, "GetLotteryRound", &pty.ReqLotteryRound{Id: id})
	require.NoError(t, err)
	return reply.(*pty.Round)
}

func TestExecutorLottery(t *testing.T) {
	exec := newTestExecutor(t, nil)
	ctx := context.Background()
	tx := mustTx(t)
	fund(t, exec, types.Coin, authority, player(1), player(2))
	assert.Equal(t, int64(2), exec.Height())
	assert.Equal(t, types.Coin, lotteryBalance(t, exec, player(1)))

	cfg := pty.DefaultConfig()
	receipt, err := exec.ExecTx(ctx, tx(pty.NewInitTx(authority, 1)))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	result, err := receipt.DecodeReceiptLog([]byte(pty.LotteryX))
	require.NoError(t, err)
	assert.Equal(t, "LogLotteryInit", result.Logs[len(result.Logs)-1].TyName)

	round := queryRound(t, exec, 1)
	assert.Equal(t, pty.LotteryActive, round.Status)
	assert.Equal(t, int64(2), round.CreateHeight)

	_, err = exec.ExecTx(ctx, tx(pty.NewPurchaseTx(player(1), 1, winning)))
	require.NoError(t, err)
	_, err = exec.ExecTx(ctx, tx(pty.NewPurchaseTx(player(2), 1, []int32{2, 1, 3, 4, 5, 6})))
	require.NoError(t, err)

	_, err = exec.ExecTx(ctx, tx(pty.NewDrawTx(player(1), 1)))
	assert.Equal(t, pty.ErrUnauthorized, errors.Cause(err))
	assert.Equal(t, pty.AuthorizationFailed, pty.Category(err))

	_, err = exec.ExecTx(ctx, tx(pty.NewDrawTx(authority, 1)))
	require.NoError(t, err)
	round = queryRound(t, exec, 1)
	assert.Equal(t, winning, round.Numbers)
	assert.Equal(t, pty.LotteryDrawn, round.Status)

	_, err = exec.ExecTx(ctx, tx(pty.NewClaimTx(player(2), 1)))
	assert.Equal(t, pty.ErrLotteryNumbersDoNotMatch, errors.Cause(err))

	_, err = exec.ExecTx(ctx, tx(pty.NewClaimTx(player(1), 1)))
	require.NoError(t, err)
	assert.Equal(t, types.Coin+cfg.TicketPrice, lotteryBalance(t, exec, player(1)))
	assert.Equal(t, types.Coin-cfg.TicketPrice, lotteryBalance(t, exec, player(2)))
	assert.Equal(t, cfg.ReservedMinimum, lotteryBalance(t, exec, pty.RoundAddress(1)))
	assert.Equal(t, pty.LotteryClaimed, queryRound(t, exec, 1).Status)

	_, err = exec.ExecTx(ctx, tx(pty.NewClaimTx(player(1), 1)))
	assert.Equal(t, pty.ErrLotteryAlreadyClaimed, errors.Cause(err))

	//取回执行器中的余额
	_, err = exec.ExecTx(ctx, tx(cty.NewWithdrawTx(player(1), pty.LotteryX, types.Coin)))
	require.NoError(t, err)
	acc, err := exec.GetBalance(ctx, player(1), "")
	require.NoError(t, err)
	assert.Equal(t, types.Coin, acc.Balance)
}

func TestExecutorRollback(t *testing.T) {
	exec := newTestExecutor(t, nil)
	ctx := context.Background()
	tx := mustTx(t)
	fund(t, exec, types.Coin, authority, player(1))
	_, err := exec.ExecTx(ctx, tx(pty.NewInitTx(authority, 1)))
	require.NoError(t, err)
	height := exec.Height()
	before := lotteryBalance(t, exec, player(1))

	bad := tx(pty.NewPurchaseTx(player(1), 1, []int32{1, 2, 3, 4, 5, 5}))
	_, err = exec.ExecTx(ctx, bad)
	assert.Equal(t, pty.ErrLotteryInvalidNumbers, errors.Cause(err))
	assert.Equal(t, height, exec.Height())
	assert.Equal(t, before, lotteryBalance(t, exec, player(1)))
	assert.Equal(t, uint32(0), queryRound(t, exec, 1).Sold)
	_, err = exec.GetTx(ctx, bad.Hash())
	assert.Equal(t, types.ErrTxNotExist, err)

	//余额不足
	_, err = exec.ExecTx(ctx, tx(pty.NewInitTx(player(99), 2)))
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))
	_, err = exec.Query(ctx, pty.LotteryX, "GetLotteryRound", &pty.ReqLotteryRound{Id: 2})
	assert.Equal(t, pty.ErrLotteryNotFound, err)

	//同一个高度中, 失败的交易不影响成功的交易
	receipts, err := exec.ExecTxs(ctx, []*types.Transaction{
		tx(pty.NewPurchaseTx(player(1), 1, winning)),
		tx(pty.NewPurchaseTx(player(1), 1, winning)),
		nil,
	})
	require.NoError(t, err)
	require.Equal(t, 3, len(receipts))
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.Equal(t, int32(types.ExecErr), receipts[1].Ty)
	assert.Equal(t, int32(types.TyLogErr), receipts[1].Logs[0].Ty)
	assert.Equal(t, types.ErrAlreadyExists.Error(), string(receipts[1].Logs[0].Log))
	assert.Equal(t, int32(types.ExecErr), receipts[2].Ty)
	assert.Equal(t, height+1, exec.Height())
	assert.Equal(t, uint32(1), queryRound(t, exec, 1).Sold)
}

func TestExecutorConcurrentPurchase(t *testing.T) {
	const players = 120
	exec := newTestExecutor(t, nil)
	ctx := context.Background()
	addrs := []string{authority}
	for i := 0; i < players; i++ {
		addrs = append(addrs, player(i))
	}
	fund(t, exec, types.Coin, addrs...)
	_, err := exec.ExecTx(ctx, mustTx(t)(pty.NewInitTx(authority, 1)))
	require.NoError(t, err)

	txs := make([]*types.Transaction, 0, players+20)
	for i := 0; i < players; i++ {
		txs = append(txs, mustTx(t)(pty.NewPurchaseTx(player(i), 1, winning)))
	}
	//同一个地址重复购买
	for i := 0; i < 20; i++ {
		txs = append(txs, mustTx(t)(pty.NewPurchaseTx(player(i), 1, []int32{6, 5, 4, 3, 2, 1})))
	}
	errs := make([]error, len(txs))
	var g errgroup.Group
	for i := range txs {
		i := i
		g.Go(func() error {
			_, errs[i] = exec.ExecTx(ctx, txs[i])
			return nil
		})
	}
	require.NoError(t, g.Wait())

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		cause := errors.Cause(err)
		assert.True(t, cause == pty.ErrLotterySoldOut || cause == types.ErrAlreadyExists, "err %v", err)
	}
	cfg := pty.DefaultConfig()
	assert.Equal(t, int(cfg.MaxTickets), ok)
	round := queryRound(t, exec, 1)
	assert.Equal(t, cfg.MaxTickets, round.Sold)
	assert.Equal(t, int(round.Sold), len(round.Holders))
	seen := make(map[string]bool)
	for _, holder := range round.Holders {
		assert.False(t, seen[holder], "holder %s", holder)
		seen[holder] = true
	}
	assert.Equal(t, cfg.ReservedMinimum+int64(ok)*cfg.TicketPrice, lotteryBalance(t, exec, pty.RoundAddress(1)))
}

func TestExecutorContext(t *testing.T) {
	exec := newTestExecutor(t, nil)
	fund(t, exec, types.Coin, authority)
	height := exec.Height()
	tx := mustTx(t)(pty.NewInitTx(authority, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := exec.ExecTx(ctx, tx)
	assert.Equal(t, context.Canceled, err)

	//执行器被占用时等待超时
	exec.sem <- struct{}{}
	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = exec.ExecTx(ctx, tx)
	assert.Equal(t, context.DeadlineExceeded, err)
	_, err = exec.Query(ctx, pty.LotteryX, "GetLotteryRound", &pty.ReqLotteryRound{Id: 1})
	assert.Equal(t, context.DeadlineExceeded, err)
	exec.release()

	assert.Equal(t, height, exec.Height())
	_, err = exec.ExecTx(context.Background(), tx)
	require.NoError(t, err)
}

func TestExecutorRevertTx(t *testing.T) {
	exec := newTestExecutor(t, nil)
	ctx := context.Background()
	fund(t, exec, types.Coin, authority, player(1))
	_, err := exec.ExecTx(ctx, mustTx(t)(pty.NewInitTx(authority, 1)))
	require.NoError(t, err)
	buy := mustTx(t)(pty.NewPurchaseTx(player(1), 1, winning))
	_, err = exec.ExecTx(ctx, buy)
	require.NoError(t, err)

	result, err := exec.GetTx(ctx, buy.Hash())
	require.NoError(t, err)
	assert.Equal(t, exec.Height()-1, result.Height)
	assert.Equal(t, blocktime, result.Blocktime)
	assert.Equal(t, buy.Hash(), result.Tx.Hash())
	assert.Equal(t, int32(types.ExecOk), result.Receipt.Ty)

	history := func() int {
		reply, err := exec.Query(ctx, pty.LotteryX, "GetLotteryBuyHistory", &pty.ReqLotteryBuyHistory{Addr: player(1)})
		require.NoError(t, err)
		return len(reply.(*pty.LotteryBuyRecords).Records)
	}
	assert.Equal(t, 1, history())
	count, err := exec.GetAddrTxsCount(ctx, player(1))
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, exec.RevertTx(ctx, buy.Hash()))
	assert.Equal(t, 0, history())
	_, err = exec.GetTx(ctx, buy.Hash())
	assert.Equal(t, types.ErrTxNotExist, err)
	count, err = exec.GetAddrTxsCount(ctx, player(1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, types.ErrTxNotExist, exec.RevertTx(ctx, buy.Hash()))
}

func TestExecutorAddrIndex(t *testing.T) {
	exec := newTestExecutor(t, nil)
	ctx := context.Background()
	fund(t, exec, types.Coin, authority)
	init := mustTx(t)(pty.NewInitTx(authority, 1))
	_, err := exec.ExecTx(ctx, init)
	require.NoError(t, err)

	reply, err := exec.GetTxsByAddr(ctx, authority, 10, pty.ListDESC)
	require.NoError(t, err)
	require.Equal(t, 3, len(reply.TxInfos))
	assert.Equal(t, init.Hash(), reply.TxInfos[0].Hash)
	assert.Equal(t, int64(2), reply.TxInfos[0].Height)

	//交易的 to 是执行器地址
	reply, err = exec.GetTxsByAddr(ctx, address.ExecAddress(pty.LotteryX), 10, pty.ListASC)
	require.NoError(t, err)
	require.Equal(t, 2, len(reply.TxInfos))
	assert.Equal(t, int64(1), reply.TxInfos[0].Height)

	noindex := newTestExecutor(t, func(cfg *types.Config, sub *types.ConfigSubModule) {
		cfg.Exec.EnableAddrIndex = false
	})
	_, err = noindex.GetTxsByAddr(ctx, authority, 10, pty.ListDESC)
	assert.Equal(t, types.ErrNotAllow, errors.Cause(err))
}

func TestExecutorReopen(t *testing.T) {
	dir := t.TempDir()
	open := func(enableAddrIndex bool) (*Executor, error) {
		cfg, sub := types.DefaultConfig()
		fixedSub(t, sub)
		cfg.Store.Driver = "goleveldb"
		cfg.Store.DbPath = dir
		cfg.Exec.EnableAddrIndex = enableAddrIndex
		return New(cfg, sub)
	}
	exec, err := open(false)
	require.NoError(t, err)
	fund(t, exec, types.Coin, authority)
	_, err = exec.ExecTx(context.Background(), mustTx(t)(pty.NewInitTx(authority, 1)))
	require.NoError(t, err)
	height := exec.Height()
	exec.Close()
	_, err = exec.ExecTx(context.Background(), mustTx(t)(pty.NewInitTx(authority, 2)))
	assert.Equal(t, types.ErrCloseDB, err)

	//地址索引只能从高度 0 开启
	_, err = open(true)
	assert.Equal(t, types.ErrDBFlag, errors.Cause(err))

	exec, err = open(false)
	require.NoError(t, err)
	defer exec.Close()
	assert.Equal(t, height, exec.Height())
	round := queryRound(t, exec, 1)
	assert.Equal(t, authority, round.Authority)
	assert.Equal(t, pty.DefaultConfig().ReservedMinimum, lotteryBalance(t, exec, pty.RoundAddress(1)))
}

func TestExecutorBadConfig(t *testing.T) {
	cfg, sub := types.DefaultConfig()
	cfg.Store.Driver = "rocksdb"
	_, err := New(cfg, sub)
	assert.Error(t, err)
}

func TestExecutorMetrics(t *testing.T) {
	exec := newTestExecutor(t, nil)
	require.True(t, metrics.Enabled())
	ok := metrics.Count(MetricTxOK)
	fail := metrics.Count(MetricTxFail)
	inits := metrics.Count(MetricAction(pty.LotteryX, "init"))

	fund(t, exec, types.Coin, authority)
	_, err := exec.ExecTx(context.Background(), mustTx(t)(pty.NewInitTx(authority, 1)))
	require.NoError(t, err)
	_, err = exec.ExecTx(context.Background(), mustTx(t)(pty.NewInitTx(authority, 1)))
	require.Error(t, err)

	assert.True(t, metrics.Count(MetricTxOK)-ok >= 3)
	assert.True(t, metrics.Count(MetricTxFail)-fail >= 1)
	assert.True(t, metrics.Count(MetricAction(pty.LotteryX, "init"))-inits >= 1)
	assert.True(t, metrics.TimerCount(MetricTxTime) >= 4)
}

func TestExecutorCloseStopsMetrics(t *testing.T) {
	exec := newTestExecutor(t, func(cfg *types.Config, sub *types.ConfigSubModule) {
		cfg.Exec.MetricsInterval = 1
	})
	require.True(t, metrics.Reporting())
	exec.Close()
	assert.False(t, metrics.Reporting())
}
