// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的基础实现: 通过反射把交易分发到 Exec_/ExecLocal_/ExecDelLocal_/Query_ 方法
package dapp

import (
	"reflect"

	"github.com/33cn/lottery/account"
	"github.com/33cn/lottery/common/address"
	dbm "github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetCoinsAccount() *account.DB
	SetLocalDB(dbm.KVDB)
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	//执行器的名称
	GetName() string
	SetName(string)
	Allow(tx *types.Transaction, index int) error
	GetActionName(tx *types.Transaction) string
	SetEnv(height, blocktime int64)
	//执行器的子配置, [exec.sub.<name>]
	SetSubConfig(sub []byte)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetPayloadValue() types.Message
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

//DriverBase 驱动的公共部分, 具体的执行器嵌入后调用 SetChild
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
	subcfg       []byte
	child        Driver
	childValue   reflect.Value
	ety          types.ExecutorType
}

//GetPayloadValue 执行器的 action 结构
func (d *DriverBase) GetPayloadValue() types.Message {
	if d.ety == nil {
		return nil
	}
	return d.ety.GetPayload()
}

//GetExecutorType get executor type
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

//GetFuncMap 驱动的方法列表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	if d.ety == nil {
		return nil
	}
	return d.ety.GetExecFuncMap()
}

//SetEnv 设置执行环境: 高度和时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

//SetSubConfig set sub config
func (d *DriverBase) SetSubConfig(sub []byte) {
	d.subcfg = sub
}

//GetSubConfig get sub config
func (d *DriverBase) GetSubConfig() []byte {
	return d.subcfg
}

//SetExecutorType set executor type
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

//SetChild set child
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
}

//ExecLocal 写本地数据库, 出错时只记录日志, 返回空的修改
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	lset, err := d.callLocal("ExecLocal_", tx, receipt, index)
	if err != nil {
		blog.Debug("call ExecLocal", "tx.Execer", string(tx.Execer), "err", err)
		return &set, nil
	}
	//merge
	if lset != nil && lset.KV != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return &set, nil
}

//ExecDelLocal 回滚本地数据库
func (d *DriverBase) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	lset, err := d.callLocal("ExecDelLocal_", tx, receipt, index)
	if err != nil {
		blog.Error("call ExecDelLocal", "execer", string(tx.Execer), "err", err)
		return &set, nil
	}
	//merge
	if lset != nil && lset.KV != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return &set, nil
}

func (d *DriverBase) callLocal(prefix string, tx *types.Transaction, receipt *types.ReceiptData, index int) (set *types.LocalDBSet, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call localexec error", "prefix", prefix, "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrActionNotSupport
			set = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	//call action
	funcname := prefix + name
	funcmap := d.child.GetFuncMap()
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.LocalDBSet); ok {
			set = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return set, err
}

//CheckAddress 执行器地址或者普通地址
func CheckAddress(addr string, height int64) error {
	if IsDriverAddress(addr, height) {
		return nil
	}
	return address.CheckAddress(addr)
}

//Exec 调用子类的 Exec_ 方法
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrActionNotSupport
			receipt = nil
		}
	}()
	if d.child.GetPayloadValue() == nil {
		return nil, nil
	}
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcmap := d.child.GetFuncMap()
	funcname := "Exec_" + name
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.Receipt); ok {
			receipt = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return receipt, err
}

//CheckTx 默认情况下，tx.To 地址指向合约地址
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	execer := string(tx.Execer)
	if ExecAddress(execer) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

//SetStateDB set statedb
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

//GetStateDB get statedb
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//SetLocalDB set localdb
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

//GetLocalDB get localdb
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

//GetHeight 当前交易的高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

//GetBlockTime 当前交易的时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//GetName get name
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

//SetName set name
func (d *DriverBase) SetName(name string) {
	d.name = name
}

//GetActionName get action name
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	return tx.ActionName()
}

//GetCoinsAccount get coins account
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}
