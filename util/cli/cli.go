// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 命令行入口，所有命令在本地节点上直接执行
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zemyblue/finschia-lottery/common/log"
	"github.com/zemyblue/finschia-lottery/pluginmgr"
	"github.com/zemyblue/finschia-lottery/system/dapp/commands"
)

var rootCmd = &cobra.Command{
	Use:   "lottery-cli",
	Short: "lottery client tools",
}

func init() {
	rootCmd.AddCommand(
		commands.ExecCmd(),
	)
}

//Run 注册插件命令并执行
func Run(confPath string) {
	pluginmgr.AddCmd(rootCmd)
	log.SetLogLevel("error")
	rootCmd.PersistentFlags().String("conf", confPath, "config file, empty for in-memory node")
	rootCmd.PersistentFlags().String("from", "", "sender address")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
