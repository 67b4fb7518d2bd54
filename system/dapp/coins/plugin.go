// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 系统级 coins dapp
package coins

import (
	"github.com/zemyblue/finschia-lottery/pluginmgr"
	"github.com/zemyblue/finschia-lottery/system/dapp/coins/commands"
	"github.com/zemyblue/finschia-lottery/system/dapp/coins/executor"
	ty "github.com/zemyblue/finschia-lottery/system/dapp/coins/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "system.coins",
		ExecName: ty.CoinsX,
		Exec:     executor.Init,
		Cmd:      commands.CoinsCmd,
	})
}
