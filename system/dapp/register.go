// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sync"

	"github.com/33cn/lottery/common/address"
	"github.com/33cn/lottery/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	mu                 sync.RWMutex
	execDrivers        = make(map[string]*driverWithHeight)
	execAddressNameMap = make(map[string]string)
	registedExecDriver = make(map[string]*driverWithHeight)
)

// Register register dcriver height in name
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	driverHeight := &driverWithHeight{
		create: create,
		height: height,
	}
	registedExecDriver[name] = driverHeight
	addr := registerAddress(name)
	execDrivers[addr] = driverHeight
}

// LoadDriver load driver, height 为 -1 时不检查启用高度
func LoadDriver(name string, height int64) (driver Driver, err error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrUnknowDriver
}

// LoadDriverAllow 载入交易对应的驱动并检查是否允许执行
func LoadDriverAllow(tx *types.Transaction, index int, height int64) (driver Driver, err error) {
	exec, err := LoadDriver(string(tx.Execer), height)
	if err != nil {
		return nil, err
	}
	exec.SetEnv(height, 0)
	if err := exec.Allow(tx, index); err != nil {
		return nil, err
	}
	exec.SetName(string(tx.Execer))
	return exec, nil
}

// ListDriver 已经注册的驱动名称
func ListDriver() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	return names
}

// IsDriverAddress whether or not execdrivers by address
func IsDriverAddress(addr string, height int64) bool {
	mu.RLock()
	c, ok := execDrivers[addr]
	mu.RUnlock()
	if !ok {
		return false
	}
	if height >= c.height || height == -1 {
		return true
	}
	return false
}

func registerAddress(name string) string {
	if len(name) == 0 {
		panic("empty name string")
	}
	addr := address.ExecAddress(name)
	execAddressNameMap[name] = addr
	return addr
}

// ExecAddress return exec address
func ExecAddress(name string) string {
	mu.RLock()
	addr, ok := execAddressNameMap[name]
	mu.RUnlock()
	if ok {
		return addr
	}
	return address.ExecAddress(name)
}
