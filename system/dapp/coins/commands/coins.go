// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coins 命令行
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zemyblue/finschia-lottery/system/dapp/commands"
	commandtypes "github.com/zemyblue/finschia-lottery/system/dapp/commands/types"
	cty "github.com/zemyblue/finschia-lottery/system/dapp/coins/types"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Base asset transfer, genesis and balance",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateTransferCmd(),
		CreateGenesisCmd(),
		GetBalanceCmd(),
	)
	return cmd
}

// CreateTransferCmd transfer
func CreateTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer base asset",
		Run:   createTransfer,
	}
	addTransferFlags(cmd)
	return cmd
}

func addTransferFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "transaction amount in base units")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("denom", "d", "cony", "asset denom")
}

func createTransfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amountStr, _ := cmd.Flags().GetString("amount")
	denom, _ := cmd.Flags().GetString("denom")
	amount, err := commandtypes.ParseAmount(amountStr, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &cty.CoinsAction{Transfer: &cty.CoinsTransfer{Denom: denom, To: to, Amount: amount}}
	commands.SendTx(cmd, cty.CoinsX, action)
}

// CreateGenesisCmd genesis
func CreateGenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Issue base asset to an address, only genesisAddr can do it when configured",
		Run:   createGenesis,
	}
	addTransferFlags(cmd)
	return cmd
}

func createGenesis(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amountStr, _ := cmd.Flags().GetString("amount")
	denom, _ := cmd.Flags().GetString("denom")
	amount, err := commandtypes.ParseAmount(amountStr, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &cty.CoinsAction{Genesis: &cty.CoinsGenesis{Denom: denom, To: to, Amount: amount}}
	commands.SendTx(cmd, cty.CoinsX, action)
}

// GetBalanceCmd balance
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get base asset balance of addresses or an executor",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "addresses, separated by ','")
	cmd.Flags().StringP("exec", "e", "", "executor name, query the executor address")
	cmd.Flags().StringP("denom", "d", "cony", "asset denom")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addrs, _ := cmd.Flags().GetString("addr")
	execer, _ := cmd.Flags().GetString("exec")
	denom, _ := cmd.Flags().GetString("denom")
	req := &cty.ReqBalance{Denom: denom, Execer: execer}
	if addrs != "" {
		req.Addresses = strings.Split(addrs, ",")
	}
	reply, err := commands.Query(cmd, cty.CoinsX, "GetBalance", req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var result []*commandtypes.AccountResult
	for _, acc := range reply.(*cty.ReplyBalance).Accounts {
		result = append(result, commandtypes.DecodeAccount(acc, 0))
	}
	commands.PrintJSON(result)
}
