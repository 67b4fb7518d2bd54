// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands lottery 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/executor"
	ty "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/types"
	"github.com/zemyblue/finschia-lottery/system/dapp/commands"
	commandtypes "github.com/zemyblue/finschia-lottery/system/dapp/commands/types"
	"github.com/zemyblue/finschia-lottery/types"
)

// LotteryCmd lottery 命令
func LotteryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lottery",
		Short: "Invest and draw lottery",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InstantiateCmd(),
		DepositCmd(),
		CloseRoundCmd(),
		TransferTokenCmd(),
		ContractInfoCmd(),
		TokenInfoCmd(),
		CurrentRoundCmd(),
		CurrentInvestmentCmd(),
		ListInvestorsCmd(),
		SettlementResultCmd(),
		TotalSupplyCmd(),
		BalanceOfCmd(),
	)
	return cmd
}

// InstantiateCmd 创世
func InstantiateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instantiate",
		Short: "Instantiate the lottery, the sender becomes owner. Unset flags use [exec.sub.lottery]",
		Run:   instantiate,
	}
	cmd.Flags().StringP("denom", "d", "", "accepted asset denom")
	cmd.Flags().Uint64P("ratio", "r", 0, "exchange ratio, tokens per asset unit")
	cmd.Flags().Uint32("min", 0, "min exchange amount, advisory")
	cmd.Flags().Uint32("first", 0, "first winner ratio in percent")
	cmd.Flags().Uint32("second", 0, "second winner ratio in percent")
	cmd.Flags().Uint32("owner", 0, "owner ratio in percent")
	cmd.Flags().String("name", "", "token name")
	cmd.Flags().String("symbol", "", "token symbol")
	cmd.Flags().Uint32("decimals", 0, "token decimals")
	return cmd
}

func instantiate(cmd *cobra.Command, args []string) {
	_, sub, err := commands.LoadConfig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	subcfg, err := executor.ParseSubConfig(sub.Exec[ty.LotteryX])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	msg := subcfg.Instantiate()
	flags := cmd.Flags()
	if flags.Changed("denom") {
		msg.UseDenom, _ = flags.GetString("denom")
	}
	if flags.Changed("ratio") {
		ratio, _ := flags.GetUint64("ratio")
		msg.ExchangeRatio = types.NewAmount(ratio)
	}
	if flags.Changed("min") {
		msg.MinExchangeAmount, _ = flags.GetUint32("min")
	}
	if flags.Changed("first") {
		msg.FirstWinnerRatio, _ = flags.GetUint32("first")
	}
	if flags.Changed("second") {
		msg.SecondWinnerRatio, _ = flags.GetUint32("second")
	}
	if flags.Changed("owner") {
		msg.OwnerRatio, _ = flags.GetUint32("owner")
	}
	if flags.Changed("name") {
		msg.TokenName, _ = flags.GetString("name")
	}
	if flags.Changed("symbol") {
		msg.TokenSymbol, _ = flags.GetString("symbol")
	}
	if flags.Changed("decimals") {
		msg.TokenDecimals, _ = flags.GetUint32("decimals")
	}
	commands.SendTx(cmd, ty.LotteryX, &ty.LotteryAction{Instantiate: msg})
}

// DepositCmd 投资
func DepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Invest in the current round with attached funds",
		Run:   deposit,
	}
	cmd.Flags().StringP("amount", "a", "", "attached amount in base units")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("denom", "d", "", "attached denom, default the contract use_denom")
	return cmd
}

func deposit(cmd *cobra.Command, args []string) {
	amountStr, _ := cmd.Flags().GetString("amount")
	denom, _ := cmd.Flags().GetString("denom")
	amount, err := commandtypes.ParseAmount(amountStr, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if denom == "" {
		reply, err := commands.Query(cmd, ty.LotteryX, "ContractInfo", &ty.ReqNil{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		denom = reply.(*ty.ContractInfo).UseDenom
	}
	commands.SendTx(cmd, ty.LotteryX, &ty.LotteryAction{Deposit: &ty.Deposit{}}, &types.Coin{Denom: denom, Amount: amount})
}

// CloseRoundCmd 开奖
func CloseRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Close the current round and pay the winners, owner only",
		Run: func(cmd *cobra.Command, args []string) {
			commands.SendTx(cmd, ty.LotteryX, &ty.LotteryAction{CloseRound: &ty.CloseRound{}})
		},
	}
}

// TransferTokenCmd token 转账
func TransferTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer lottery token",
		Run:   transferToken,
	}
	cmd.Flags().StringP("to", "t", "", "receiver")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "token amount, decimals allowed")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func tokenDecimals(cmd *cobra.Command) (int32, error) {
	reply, err := commands.Query(cmd, ty.LotteryX, "TokenInfo", &ty.ReqNil{})
	if err != nil {
		return 0, err
	}
	return int32(reply.(*ty.TokenInfo).Decimals), nil
}

func transferToken(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amountStr, _ := cmd.Flags().GetString("amount")
	decimals, err := tokenDecimals(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	amount, err := commandtypes.ParseAmount(amountStr, decimals)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commands.SendTx(cmd, ty.LotteryX, &ty.LotteryAction{TransferToken: &ty.TransferToken{To: to, Amount: amount}})
}
