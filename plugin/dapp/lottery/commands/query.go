// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	ty "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/types"
	"github.com/zemyblue/finschia-lottery/system/dapp/commands"
	commandtypes "github.com/zemyblue/finschia-lottery/system/dapp/commands/types"
)

func query(cmd *cobra.Command, funcName string, req interface{}) {
	reply, err := commands.Query(cmd, ty.LotteryX, funcName, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commands.PrintJSON(reply)
}

func addRoundFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().Uint64P("round", "r", 0, usage)
}

// ContractInfoCmd 合约配置
func ContractInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Get contract info",
		Run: func(cmd *cobra.Command, args []string) {
			query(cmd, "ContractInfo", &ty.ReqNil{})
		},
	}
}

// TokenInfoCmd token 描述
func TokenInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Get token info",
		Run: func(cmd *cobra.Command, args []string) {
			query(cmd, "TokenInfo", &ty.ReqNil{})
		},
	}
}

// CurrentRoundCmd 当前轮次
func CurrentRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Get current round number",
		Run: func(cmd *cobra.Command, args []string) {
			query(cmd, "CurrentRound", &ty.ReqNil{})
		},
	}
}

// CurrentInvestmentCmd 轮次记录
func CurrentInvestmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "investment",
		Short: "Get the pot of a round",
		Run: func(cmd *cobra.Command, args []string) {
			round, _ := cmd.Flags().GetUint64("round")
			query(cmd, "CurrentInvestment", &ty.ReqRound{Round: round})
		},
	}
	addRoundFlag(cmd, "round number, 0 for current")
	return cmd
}

// ListInvestorsCmd 投资人列表
func ListInvestorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "investors",
		Short: "List investors of a round",
		Run: func(cmd *cobra.Command, args []string) {
			round, _ := cmd.Flags().GetUint64("round")
			startAfter, _ := cmd.Flags().GetString("start")
			limit, _ := cmd.Flags().GetUint32("limit")
			query(cmd, "ListInvestors", &ty.ReqListInvestors{Round: round, StartAfter: startAfter, Limit: limit})
		},
	}
	addRoundFlag(cmd, "round number, 0 for current")
	cmd.Flags().StringP("start", "s", "", "list after this investor")
	cmd.Flags().Uint32P("limit", "l", 0, "page size, default 20, max 100")
	return cmd
}

// SettlementResultCmd 结算结果
func SettlementResultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlement",
		Short: "Get winners of a closed round",
		Run: func(cmd *cobra.Command, args []string) {
			round, _ := cmd.Flags().GetUint64("round")
			query(cmd, "SettlementResult", &ty.ReqRound{Round: round})
		},
	}
	addRoundFlag(cmd, "round number, 0 for the last closed round")
	return cmd
}

// TotalSupplyCmd token 总量
func TotalSupplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "supply",
		Short: "Get token total supply",
		Run: func(cmd *cobra.Command, args []string) {
			decimals, err := tokenDecimals(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			reply, err := commands.Query(cmd, ty.LotteryX, "TotalSupply", &ty.ReqNil{})
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			supply := reply.(*ty.ReplyTotalSupply).TotalSupply
			commands.PrintJSON(map[string]string{
				"total_supply": supply.String(),
				"display":      commandtypes.FormatAmount(supply, decimals),
			})
		},
	}
}

// BalanceOfCmd token 余额
func BalanceOfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get token balance",
		Run: func(cmd *cobra.Command, args []string) {
			who, _ := cmd.Flags().GetString("who")
			decimals, err := tokenDecimals(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			reply, err := commands.Query(cmd, ty.LotteryX, "BalanceOf", &ty.ReqBalanceOf{Who: who})
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			balance := reply.(*ty.ReplyBalance)
			commands.PrintJSON(map[string]string{
				"who":     balance.Who,
				"balance": balance.Balance.String(),
				"display": commandtypes.FormatAmount(balance.Balance, decimals),
			})
		},
	}
	cmd.Flags().StringP("who", "w", "", "holder address")
	cmd.MarkFlagRequired("who")
	return cmd
}
