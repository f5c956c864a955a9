// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

//PluginBase 插件的基础实现
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, sub []byte)
}

//GetName get name
func (p *PluginBase) GetName() string {
	return p.Name
}

//GetExecutorName get executor name
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

//InitExec 用执行器的子配置初始化
func (p *PluginBase) InitExec(sub map[string][]byte) {
	subcfg, ok := sub[p.ExecName]
	if !ok {
		subcfg = nil
	}
	p.Exec(p.ExecName, subcfg)
}
