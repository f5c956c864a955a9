// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行器
//
// 交易一笔一笔串行执行, 每次调用 ExecTxs 相当于打包一个区块:
// 所有交易使用同一个高度和时间, 执行成功后高度加一.
// 失败的交易不会留下任何状态修改.
package executor

import (
	"context"
	"time"

	dbm "github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/common/db/local"
	clog "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/metrics"
	"github.com/33cn/lottery/pluginmgr"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

//Executor 执行器, 同一时间只有一个调用者可以执行交易或者查询
type Executor struct {
	cfg          *types.Config
	sub          *types.ConfigSubModule
	maindb       dbm.DB
	stateDB      *local.DB
	localDB      *local.DB
	height       int64
	clock        func() int64
	plugins      map[string]plugin
	pluginEnable map[string]bool
	sem          chan struct{}
	closed       bool
}

//New 打开数据库, 初始化所有的执行器驱动. cfg 为 nil 时使用默认配置
func New(cfg *types.Config, sub *types.ConfigSubModule) (*Executor, error) {
	if cfg == nil {
		cfg, sub = types.DefaultConfig()
	}
	if sub == nil {
		sub = &types.ConfigSubModule{}
	}
	if !dbm.HasBackend(cfg.Store.Driver) {
		return nil, errors.Wrapf(dbm.ErrUnknownBackend, "store driver %s", cfg.Store.Driver)
	}
	clog.SetFileLog(cfg.Log)
	pluginmgr.InitExec(sub.Exec)
	metrics.StartMetrics(cfg.Exec)

	maindb := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	exec := &Executor{
		cfg:     cfg,
		sub:     sub,
		maindb:  maindb,
		stateDB: local.NewLocalDB(maindb, false),
		localDB: local.NewLocalDB(maindb, false),
		clock: func() int64 {
			return types.Now().Unix()
		},
		plugins: newPlugins(),
		pluginEnable: map[string]bool{
			"txindex":   true,
			"addrindex": cfg.Exec.EnableAddrIndex,
		},
		sem: make(chan struct{}, 1),
	}
	height, err := loadHeight(exec.localDB)
	if err != nil {
		maindb.Close()
		return nil, err
	}
	exec.height = height
	//数据库已经有数据时, 需要从高度 0 开启的插件必须已经开启
	env := newExecutor(exec, height, 0)
	for _, name := range pluginNames {
		if _, _, err := exec.plugins[name].CheckEnable(env, exec.pluginEnable[name]); err != nil {
			maindb.Close()
			return nil, errors.Wrapf(err, "plugin %s", name)
		}
	}
	elog.Info("executor open", "driver", cfg.Store.Driver, "dbPath", cfg.Store.DbPath, "height", height, "drivers", drivers.ListDriver())
	return exec, nil
}

//SetClock 设置交易时间的来源, 单位秒
func (exec *Executor) SetClock(clock func() int64) {
	exec.clock = clock
}

//Height 下一笔交易的高度
func (exec *Executor) Height() int64 {
	exec.sem <- struct{}{}
	defer exec.release()
	return exec.height
}

//acquire 获取执行器, ctx 取消时返回 ctx.Err()
func (exec *Executor) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case exec.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		exec.release()
		return err
	}
	if exec.closed {
		exec.release()
		return types.ErrCloseDB
	}
	return nil
}

func (exec *Executor) release() {
	<-exec.sem
}

//ExecTx 执行一笔交易. 交易失败时状态没有任何修改, 返回的错误可以用 errors.Cause 取得原始错误
func (exec *Executor) ExecTx(ctx context.Context, tx *types.Transaction) (*types.ReceiptData, error) {
	receipts, errs, err := exec.execTxs(ctx, []*types.Transaction{tx})
	if err != nil {
		return nil, err
	}
	if errs[0] != nil {
		return nil, errors.Wrapf(errs[0], "exec %s.%s", string(tx.Execer), tx.ActionName())
	}
	return receipts[0], nil
}

//ExecTxs 在同一个高度执行一组交易, 每笔交易独立成功或者失败.
//失败的交易返回 Ty 为 ExecErr 的回执, 日志中是错误信息
func (exec *Executor) ExecTxs(ctx context.Context, txs []*types.Transaction) ([]*types.ReceiptData, error) {
	receipts, errs, err := exec.execTxs(ctx, txs)
	if err != nil {
		return nil, err
	}
	for i, e := range errs {
		if e != nil {
			receipts[i] = &types.ReceiptData{
				Ty:   types.ExecErr,
				Logs: []*types.ReceiptLog{{Ty: types.TyLogErr, Log: []byte(e.Error())}},
			}
		}
	}
	return receipts, nil
}

func (exec *Executor) execTxs(ctx context.Context, txs []*types.Transaction) ([]*types.ReceiptData, []error, error) {
	if err := exec.acquire(ctx); err != nil {
		return nil, nil, err
	}
	defer exec.release()

	e := newExecutor(exec, exec.height, exec.clock())
	receipts := make([]*types.ReceiptData, len(txs))
	errs := make([]error, len(txs))
	ok := 0
	for i, tx := range txs {
		if tx == nil {
			errs[i] = types.ErrInvalidParam
			continue
		}
		start := time.Now()
		receipts[i], errs[i] = e.execTxOne(tx, i)
		countTx(tx, start, errs[i])
		if errs[i] != nil {
			elog.Debug("execTxs", "height", e.height, "index", i, "execer", string(tx.Execer), "err", errs[i])
			continue
		}
		ok++
	}
	if ok == 0 {
		return receipts, errs, nil
	}
	exec.height++
	if err := exec.localDB.Set(types.FlagHeight, types.Encode(&types.Int64{Data: exec.height})); err != nil {
		return nil, nil, err
	}
	if err := exec.flush(); err != nil {
		return nil, nil, err
	}
	return receipts, errs, nil
}

//flush 状态数据和本地索引在同一个 batch 中写入
func (exec *Executor) flush() error {
	batch := exec.maindb.NewBatch(true)
	if err := exec.stateDB.WriteTo(batch); err != nil {
		return errors.Wrap(err, "flush statedb")
	}
	if err := exec.localDB.WriteTo(batch); err != nil {
		return errors.Wrap(err, "flush localdb")
	}
	if err := batch.Write(); err != nil {
		elog.Error("flush", "height", exec.height, "err", err)
		return errors.Wrap(err, "flush")
	}
	exec.stateDB.ResetCache()
	exec.localDB.ResetCache()
	return nil
}

//RevertTx 回滚一笔交易写入的本地索引, 状态数据库不回滚
func (exec *Executor) RevertTx(ctx context.Context, hash []byte) error {
	if err := exec.acquire(ctx); err != nil {
		return err
	}
	defer exec.release()

	result, err := exec.getTxResult(hash)
	if err != nil {
		return err
	}
	e := newExecutor(exec, result.Height, result.Blocktime)
	driver, err := e.loadDriver(result.Tx, int(result.Index))
	if err != nil {
		return err
	}
	set, err := e.execDelLocal(driver, result.Tx, result.Receipt, int(result.Index))
	if err != nil {
		return errors.Wrap(err, "RevertTx")
	}
	exec.localDB.Begin()
	for _, kv := range set.KV {
		if err := exec.localDB.Set(kv.Key, kv.Value); err != nil {
			exec.localDB.Rollback()
			return err
		}
	}
	if err := exec.localDB.Commit(); err != nil {
		return err
	}
	return exec.localDB.Flush()
}

//GetTx 查询交易和执行结果
func (exec *Executor) GetTx(ctx context.Context, hash []byte) (*types.TxResult, error) {
	if err := exec.acquire(ctx); err != nil {
		return nil, err
	}
	defer exec.release()
	return exec.getTxResult(hash)
}

func (exec *Executor) getTxResult(hash []byte) (*types.TxResult, error) {
	value, err := exec.localDB.Get(types.CalcTxKey(hash))
	if err == types.ErrNotFound {
		return nil, types.ErrTxNotExist
	}
	if err != nil {
		return nil, err
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

//GetTxsByAddr 地址相关的交易, 需要开启 enableAddrIndex
func (exec *Executor) GetTxsByAddr(ctx context.Context, addr string, count, direction int32) (*types.ReplyTxInfos, error) {
	if !exec.pluginEnable["addrindex"] {
		return nil, errors.Wrap(types.ErrNotAllow, "addr index disabled")
	}
	if err := exec.acquire(ctx); err != nil {
		return nil, err
	}
	defer exec.release()
	values, err := exec.localDB.List(types.CalcTxAddrHashPrefix(addr), nil, count, direction)
	if err != nil {
		return nil, err
	}
	reply := &types.ReplyTxInfos{}
	for _, value := range values {
		info := &types.ReplyTxInfo{}
		if err := types.Decode(value, info); err != nil {
			return nil, err
		}
		reply.TxInfos = append(reply.TxInfos, info)
	}
	return reply, nil
}

//GetAddrTxsCount 地址相关的交易数量
func (exec *Executor) GetAddrTxsCount(ctx context.Context, addr string) (int64, error) {
	if err := exec.acquire(ctx); err != nil {
		return 0, err
	}
	defer exec.release()
	return getAddrTxsCount(exec.localDB, addr)
}

//Query 调用执行器的 Query_<funcName> 方法
func (exec *Executor) Query(ctx context.Context, execer, funcName string, param types.Message) (types.Message, error) {
	if err := exec.acquire(ctx); err != nil {
		return nil, err
	}
	defer exec.release()
	driver, err := drivers.LoadDriver(execer, exec.height)
	if err != nil {
		return nil, err
	}
	e := newExecutor(exec, exec.height, exec.clock())
	e.setEnv(driver)
	return driver.Query(funcName, types.Encode(param))
}

//GetBalance 查询 coins 账户或者执行器账户的余额, execer 为空时查询 coins 账户
func (exec *Executor) GetBalance(ctx context.Context, addr, execer string) (*types.Account, error) {
	reply, err := exec.Query(ctx, "coins", "GetBalance", &types.ReqBalance{Addresses: []string{addr}, Execer: execer})
	if err != nil {
		return nil, err
	}
	accs := reply.(*types.Accounts).Acc
	if len(accs) != 1 {
		return nil, types.ErrNotFound
	}
	return accs[0], nil
}

//Close 关闭数据库, 停止指标的定时输出
func (exec *Executor) Close() {
	exec.sem <- struct{}{}
	defer exec.release()
	if exec.closed {
		return
	}
	exec.closed = true
	metrics.StopMetrics()
	exec.maindb.Close()
	elog.Info("executor closed", "height", exec.height)
}

func loadHeight(db dbm.KV) (int64, error) {
	value, err := db.Get(types.FlagHeight)
	if err == types.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	height := &types.Int64{}
	if err := types.Decode(value, height); err != nil {
		return 0, err
	}
	return height.Data, nil
}
