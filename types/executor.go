// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/33cn/lottery/common/address"
	"github.com/pkg/errors"
)

//ExecutorType 执行器的类型信息: payload 结构, action 列表, log 列表
type ExecutorType interface {
	GetName() string
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	//GetFuncMap payload 的 GetXXX 方法
	GetFuncMap() map[string]reflect.Method
	//GetExecFuncMap 执行器驱动的 Exec_/ExecLocal_/Query_ 方法
	GetExecFuncMap() map[string]reflect.Method
	InitFuncList(list map[string]reflect.Method)
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
	Amount(tx *Transaction) (int64, error)
	CreateTransaction(action string, data Message) (*Transaction, error)
}

//oneofPayload payload 声明 oneof 分支的类型
type oneofPayload interface {
	OneofWrappers() []interface{}
}

type execTypeGet interface {
	GetTy() int32
}

var (
	executorMu  sync.RWMutex
	executorMap = map[string]ExecutorType{}
)

//RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	executorMu.Lock()
	defer executorMu.Unlock()
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType")
	}
	executorMap[exec] = util
}

//LoadExecutorType 加载执行器类型
func LoadExecutorType(execstr string) ExecutorType {
	executorMu.RLock()
	defer executorMu.RUnlock()
	if exec, exist := executorMap[execstr]; exist {
		return exec
	}
	return nil
}

//ListExecutorType 已经注册的执行器名称
func ListExecutorType() []string {
	executorMu.RLock()
	defer executorMu.RUnlock()
	names := make([]string, 0, len(executorMap))
	for name := range executorMap {
		names = append(names, name)
	}
	return names
}

//ExecTypeBase 执行器类型的基础实现, 具体执行器嵌入后调用 SetChild
type ExecTypeBase struct {
	child               ExecutorType
	actionFunList       map[string]reflect.Method
	execFuncList        map[string]reflect.Method
	actionListValueType map[string]reflect.Type
}

//SetChild 设置子类, 根据 payload 建立 action 的反射信息
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.actionListValueType = make(map[string]reflect.Type)
	action := child.GetPayload()
	if action == nil {
		return
	}
	var wrappers []interface{}
	if oneof, ok := action.(oneofPayload); ok {
		wrappers = oneof.OneofWrappers()
	}
	base.actionFunList = ListActionMethod(action, wrappers)
	for name, ty := range ListType(wrappers) {
		datas := strings.Split(name, "_")
		if len(datas) != 2 {
			continue
		}
		base.actionListValueType[datas[1]] = ty
	}
}

//GetName 默认没有名字, 子类覆盖
func (base *ExecTypeBase) GetName() string {
	return ""
}

//GetLogMap 默认没有执行器自己的 log
func (base *ExecTypeBase) GetLogMap() map[int64]*LogInfo {
	return nil
}

//GetFuncMap payload 的 action 方法
func (base *ExecTypeBase) GetFuncMap() map[string]reflect.Method {
	return base.actionFunList
}

//GetExecFuncMap 驱动的方法
func (base *ExecTypeBase) GetExecFuncMap() map[string]reflect.Method {
	return base.execFuncList
}

//InitFuncList 由执行器驱动在初始化时注册自己的方法列表
func (base *ExecTypeBase) InitFuncList(list map[string]reflect.Method) {
	base.execFuncList = list
}

//DecodePayload 解码 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	if base.child == nil {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	err := Decode(tx.Payload, payload)
	if err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	return payload, nil
}

//DecodePayloadValue 解码 payload 并取出 action 名称和 action 的值
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	action, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	name, ty, val := GetActionValue(action, base.actionFunList)
	if IsNilVal(val) {
		tlog.Error("GetActionValue", "action", name, "ty", ty, "execer", string(tx.Execer))
		return "", nilValue, ErrActionNotSupport
	}
	if tyid, ok := base.child.GetTypeMap()[name]; !ok || tyid != ty {
		tlog.Error("DecodePayloadValue action type not match", "action", name, "ty", ty)
		return "", nilValue, ErrActionNotSupport
	}
	return name, val, nil
}

//ActionName action 名称, 首字母小写
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "unknown-err"
	}
	get, ok := payload.(execTypeGet)
	if !ok {
		return "unknown"
	}
	ty := get.GetTy()
	for name, id := range base.child.GetTypeMap() {
		if id == ty {
			return lowerFirst(name)
		}
	}
	return "unknown"
}

//Amount 默认交易不涉及金额
func (base *ExecTypeBase) Amount(tx *Transaction) (int64, error) {
	return 0, nil
}

//CreateTransaction 根据 action 名称和 action 内容构造交易, 发起人由调用者填写
func (base *ExecTypeBase) CreateTransaction(action string, data Message) (tx *Transaction, err error) {
	defer func() {
		if r := recover(); r != nil {
			tlog.Error("CreateTransaction", "action", action, "info", r)
			tx = nil
			err = ErrActionNotSupport
		}
	}()
	tyid, ok := base.child.GetTypeMap()[action]
	if !ok {
		return nil, ErrActionNotSupport
	}
	valuety, ok := base.actionListValueType[action]
	if !ok {
		return nil, ErrActionNotSupport
	}
	v := reflect.New(valuety)
	field := v.Elem().FieldByName(action)
	if !field.IsValid() || !field.CanSet() {
		return nil, ErrActionNotSupport
	}
	field.Set(reflect.ValueOf(data))
	payload := base.child.GetPayload()
	pv := reflect.Indirect(reflect.ValueOf(payload))
	pv.FieldByName("Value").Set(v)
	pv.FieldByName("Ty").Set(reflect.ValueOf(tyid))
	name := base.child.GetName()
	tx = &Transaction{
		Execer:  []byte(name),
		Payload: Encode(payload),
		To:      address.ExecAddress(name),
	}
	return tx, nil
}

//DecodeLog 根据执行器和 log 类型解码日志
func DecodeLog(execer []byte, ty int64, data []byte) (string, interface{}, error) {
	if ty == TyLogErr {
		return "LogErr", string(data), nil
	}
	info, ok := systemLog[ty]
	if !ok {
		if exec := LoadExecutorType(string(execer)); exec != nil {
			info, ok = exec.GetLogMap()[ty]
		}
	}
	if !ok || info == nil {
		return "", nil, ErrLogType
	}
	msg, ok := reflect.New(info.Ty).Interface().(Message)
	if !ok {
		return "", nil, ErrLogType
	}
	if err := Decode(data, msg); err != nil {
		return "", nil, err
	}
	return info.Name, msg, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
