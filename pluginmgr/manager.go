// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr dapp 插件的注册和初始化
package pluginmgr

import (
	"sort"
	"sync"

	log "github.com/inconshreveable/log15"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	pluginItems = make(map[string]Plugin)
	mu          sync.Mutex
	once        = &sync.Once{}
)

//InitExec 初始化所有插件的执行器, 只执行一次
func InitExec(sub map[string][]byte) {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		for _, name := range sortedNames() {
			mgrlog.Debug("InitExec", "plugin", name)
			pluginItems[name].InitExec(sub)
		}
	})
}

//HasExec 是否存在这个执行器
func HasExec(name string) bool {
	mu.Lock()
	defer mu.Unlock()
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

//Register 注册插件, 一般在插件包的 init 中调用
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

func sortedNames() []string {
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
