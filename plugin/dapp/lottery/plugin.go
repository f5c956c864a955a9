// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lottery 彩票 dapp 插件
package lottery

import (
	"github.com/33cn/lottery/plugin/dapp/lottery/executor"
	// init lottery types
	_ "github.com/33cn/lottery/plugin/dapp/lottery/types"
	"github.com/33cn/lottery/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "lottery",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
	})
}
