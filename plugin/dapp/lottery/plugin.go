// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lottery 投资开奖 dapp
package lottery

import (
	"github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/commands"
	"github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/executor"
	"github.com/zemyblue/finschia-lottery/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "lottery",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.LotteryCmd,
	})
}
