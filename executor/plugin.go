// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/types"
)

//plugin 主要用于处理 execlocal 和 execdellocal 时候的全局kv的处理
//每个插件都有插件是否开启这个插件的判断，如果不开启，执行的时候会被忽略

type plugin interface {
	CheckEnable(executor *executor, enable bool) (kvs []*types.KeyValue, ok bool, err error)
	ExecLocal(executor *executor, tx *types.Transaction, receipt *types.ReceiptData, index int) ([]*types.KeyValue, error)
	ExecDelLocal(executor *executor, tx *types.Transaction, receipt *types.ReceiptData, index int) ([]*types.KeyValue, error)
}

//每个 Executor 都有自己的插件实例, 插件的状态和数据库对应
var (
	pluginCreators = make(map[string]func() plugin)
	pluginNames    []string
)

// RegisterPlugin register plugin
func RegisterPlugin(name string, create func() plugin) {
	if _, ok := pluginCreators[name]; ok {
		panic("plugin exist " + name)
	}
	pluginCreators[name] = create
	pluginNames = append(pluginNames, name)
	sort.Strings(pluginNames)
}

func newPlugins() map[string]plugin {
	plugins := make(map[string]plugin, len(pluginCreators))
	for name, create := range pluginCreators {
		plugins[name] = create()
	}
	return plugins
}

type pluginBase struct {
	flag int64
}

//checkFlag 需要从高度 0 开始的插件, 在高度 0 写入开启标记
func (base *pluginBase) checkFlag(executor *executor, flagKey []byte, enable bool) (kvset []*types.KeyValue, ok bool, err error) {
	if !enable {
		return nil, false, nil
	}
	if base.flag == 0 {
		flag, err := loadFlag(executor.localDB, flagKey)
		if err != nil {
			return nil, false, err
		}
		base.flag = flag
	}
	if executor.height != 0 && base.flag == 0 {
		return nil, false, types.ErrDBFlag
	}
	if executor.height == 0 && base.flag == 0 {
		kvset = append(kvset, types.FlagKV(flagKey, 1))
	}
	return kvset, true, nil
}

func loadFlag(localDB dbm.KVDB, key []byte) (int64, error) {
	flag := &types.Int64{}
	flagBytes, err := localDB.Get(key)
	if err == nil {
		err = types.Decode(flagBytes, flag)
		if err != nil {
			return 0, err
		}
		return flag.Data, nil
	} else if err == types.ErrNotFound {
		return 0, nil
	}
	return 0, err
}
