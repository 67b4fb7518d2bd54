// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/spf13/cobra"
)

// PluginBase 插件的公共实现
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, sub []byte)
	Cmd      func() *cobra.Command
}

// GetName 插件名
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName 执行器名
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec 用子模块配置初始化执行器
func (p *PluginBase) InitExec(sub map[string][]byte) {
	if p.Exec == nil {
		return
	}
	// 没有 [exec.sub.<name>] 时传 nil, 由执行器使用默认值
	p.Exec(p.ExecName, sub[p.ExecName])
}

// AddCmd 注册命令行
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd == nil {
		return
	}
	if cmd := p.Cmd(); cmd != nil {
		rootCmd.AddCommand(cmd)
	}
}
