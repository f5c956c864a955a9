// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/common/db/local"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
)

//执行器 -> db 环境, 同一个高度的交易共用一个环境
type executor struct {
	stateDB   *local.DB
	localDB   *local.DB
	height    int64
	blocktime int64
	sub       map[string][]byte
	plugins   map[string]plugin
	enable    map[string]bool
	execCache map[string]drivers.Driver
}

func newExecutor(exec *Executor, height, blocktime int64) *executor {
	return &executor{
		stateDB:   exec.stateDB,
		localDB:   exec.localDB,
		height:    height,
		blocktime: blocktime,
		sub:       exec.sub.Exec,
		plugins:   exec.plugins,
		enable:    exec.pluginEnable,
		execCache: make(map[string]drivers.Driver),
	}
}

func (e *executor) setEnv(exec drivers.Driver) {
	exec.SetStateDB(e.stateDB)
	exec.SetLocalDB(e.localDB)
	exec.SetEnv(e.height, e.blocktime)
	exec.SetSubConfig(e.sub[exec.GetDriverName()])
}

func (e *executor) loadDriver(tx *types.Transaction, index int) (drivers.Driver, error) {
	ename := string(tx.Execer)
	exec, ok := e.execCache[ename]
	if !ok {
		var err error
		exec, err = drivers.LoadDriverAllow(tx, index, e.height)
		if err != nil {
			elog.Error("loadDriver", "execer", ename, "err", err)
			return nil, err
		}
		e.execCache[ename] = exec
	}
	e.setEnv(exec)
	return exec, nil
}

//execTxOne 执行一笔交易, 状态数据库和本地数据库的修改要么全部提交, 要么全部回滚
func (e *executor) execTxOne(tx *types.Transaction, index int) (*types.ReceiptData, error) {
	if err := tx.Check(); err != nil {
		return nil, err
	}
	exec, err := e.loadDriver(tx, index)
	if err != nil {
		return nil, err
	}
	e.stateDB.Begin()
	e.localDB.Begin()
	receipt, err := e.exec(exec, tx, index)
	if err != nil {
		e.stateDB.Rollback()
		e.localDB.Rollback()
		return nil, err
	}
	if err := e.stateDB.Commit(); err != nil {
		e.localDB.Rollback()
		return nil, err
	}
	if err := e.localDB.Commit(); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (e *executor) exec(exec drivers.Driver, tx *types.Transaction, index int) (*types.ReceiptData, error) {
	if err := exec.CheckTx(tx, index); err != nil {
		return nil, err
	}
	receipt, err := exec.Exec(tx, index)
	if err != nil {
		elog.Error("exec tx error", "err", err, "exec", string(tx.Execer), "action", tx.ActionName())
		return nil, err
	}
	if receipt == nil || receipt.Ty != types.ExecOk {
		return nil, types.ErrActionNotSupport
	}
	for _, kv := range receipt.KV {
		if !isAllowKeyWrite(kv.Key, tx) {
			elog.Error("exec key not allow", "key", string(kv.Key), "exec", string(tx.Execer))
			return nil, types.ErrNotAllowMemSetKey
		}
		if err := e.stateDB.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	data := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := e.execLocal(exec, tx, data, index)
	if err != nil {
		elog.Error("execLocal", "err", err, "exec", string(tx.Execer))
		return nil, err
	}
	for _, kv := range set.KV {
		if err := e.localDB.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func (e *executor) execLocal(exec drivers.Driver, tx *types.Transaction, r *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := exec.ExecLocal(tx, r, index)
	if err != nil {
		return nil, err
	}
	if err := checkLocalKeys(tx.Execer, set); err != nil {
		return nil, err
	}
	for _, name := range pluginNames {
		kvs, ok, err := e.plugins[name].CheckEnable(e, e.enable[name])
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		set.KV = append(set.KV, kvs...)
		kvs, err = e.plugins[name].ExecLocal(e, tx, r, index)
		if err != nil {
			return nil, err
		}
		set.KV = append(set.KV, kvs...)
	}
	return set, nil
}

func (e *executor) execDelLocal(exec drivers.Driver, tx *types.Transaction, r *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := exec.ExecDelLocal(tx, r, index)
	if err != nil {
		return nil, err
	}
	if err := checkLocalKeys(tx.Execer, set); err != nil {
		return nil, err
	}
	for _, name := range pluginNames {
		if !e.enable[name] {
			continue
		}
		kvs, err := e.plugins[name].ExecDelLocal(e, tx, r, index)
		if err != nil {
			return nil, err
		}
		set.KV = append(set.KV, kvs...)
	}
	return set, nil
}

//插件写的 key 不检查
func checkLocalKeys(execer []byte, set *types.LocalDBSet) error {
	for _, kv := range set.KV {
		if err := isAllowLocalKey(execer, kv.Key); err != nil {
			return err
		}
	}
	return nil
}
