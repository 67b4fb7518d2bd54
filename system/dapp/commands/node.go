// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统级dapp相关命令包，命令直接在本地节点上执行
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zemyblue/finschia-lottery/common/log"
	"github.com/zemyblue/finschia-lottery/executor"
	commandtypes "github.com/zemyblue/finschia-lottery/system/dapp/commands/types"
	"github.com/zemyblue/finschia-lottery/types"
)

// LoadConfig 读取 --conf，为空时使用内存数据库的默认配置
func LoadConfig(cmd *cobra.Command) (*types.Config, *types.ConfigSubModule, error) {
	confPath, _ := cmd.Flags().GetString("conf")
	if confPath == "" {
		return types.InitCfgString(types.DefaultCfgString())
	}
	return types.InitCfg(confPath)
}

// OpenNode 按 --conf 打开本地节点，调用者负责 Close
func OpenNode(cmd *cobra.Command) (*executor.Executor, *types.ConfigSubModule, error) {
	cfg, sub, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log.SetFileLog(cfg.Log)
	exec, err := executor.New(cfg, sub)
	if err != nil {
		return nil, nil, err
	}
	return exec, sub, nil
}

// SendTx 以 --from 的身份执行一笔交易并打印结果
func SendTx(cmd *cobra.Command, execer string, action interface{}, funds ...*types.Coin) {
	from, _ := cmd.Flags().GetString("from")
	tx, err := types.NewTransaction(execer, action, from, funds...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	exec, _, err := OpenNode(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer exec.Close()

	result, err := exec.ExecTx(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	name := "unknown"
	if ety := types.LoadExecutorType(execer); ety != nil {
		name = ety.ActionName(tx)
	}
	out := commandtypes.DecodeTransaction(tx, name, result.Height, result.Receipt)
	out.Settlement = commandtypes.DecodeReceipt(execer, result.Settlement)
	if result.SettleErr != nil {
		out.SettleErr = result.SettleErr.Error()
	}
	PrintJSON(out)
}

// Query 只读查询，reply 为空时打印原始结果
func Query(cmd *cobra.Command, execer, funcName string, req interface{}) (interface{}, error) {
	params, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, err.Error())
	}
	exec, _, err := OpenNode(cmd)
	if err != nil {
		return nil, err
	}
	defer exec.Close()
	return exec.Query(execer, funcName, params)
}

// PrintJSON 缩进打印
func PrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}
