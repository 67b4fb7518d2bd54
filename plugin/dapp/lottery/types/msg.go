// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/zemyblue/finschia-lottery/types"
)

// LotteryAction 交易 payload，只能设置一个 action
type LotteryAction struct {
	Instantiate   *Instantiate   `json:"instantiate,omitempty"`
	Deposit       *Deposit       `json:"deposit,omitempty"`
	CloseRound    *CloseRound    `json:"close_round,omitempty"`
	TransferToken *TransferToken `json:"transfer_token,omitempty"`
}

// GetValue 当前设置的 action
func (a *LotteryAction) GetValue() (string, interface{}, error) {
	var name string
	var value interface{}
	n := 0
	if a.Instantiate != nil {
		name, value = "Instantiate", a.Instantiate
		n++
	}
	if a.Deposit != nil {
		name, value = "Deposit", a.Deposit
		n++
	}
	if a.CloseRound != nil {
		name, value = "CloseRound", a.CloseRound
		n++
	}
	if a.TransferToken != nil {
		name, value = "TransferToken", a.TransferToken
		n++
	}
	if n != 1 {
		return "", nil, errors.Wrapf(types.ErrActionNotSupport, "lottery action sets %d fields", n)
	}
	return name, value, nil
}

// Instantiate 创世参数，发送者成为 owner
type Instantiate struct {
	UseDenom          string       `json:"use_denom"`
	ExchangeRatio     types.Amount `json:"exchange_ratio"`
	MinExchangeAmount uint32       `json:"min_exchange_amount"`
	FirstWinnerRatio  uint32       `json:"first_winner_ratio"`
	SecondWinnerRatio uint32       `json:"second_winner_ratio"`
	OwnerRatio        uint32       `json:"owner_ratio"`
	TokenName         string       `json:"token_name"`
	TokenSymbol       string       `json:"token_symbol"`
	TokenDecimals     uint32       `json:"token_decimals"`
}

// Deposit 投资，数量为附带的资产
type Deposit struct{}

// CloseRound 关闭当前轮次并开奖
type CloseRound struct{}

// TransferToken token 转账
type TransferToken struct {
	To     string       `json:"to"`
	Amount types.Amount `json:"amount"`
}

// ReqNil 没有参数的查询
type ReqNil struct{}

// ReqRound 按轮次查询，0 表示当前轮次
type ReqRound struct {
	Round uint64 `json:"round,omitempty"`
}

// ReqListInvestors 分页查询投资人，StartAfter 不包含在结果中
type ReqListInvestors struct {
	Round      uint64 `json:"round,omitempty"`
	StartAfter string `json:"start_after,omitempty"`
	Limit      uint32 `json:"limit,omitempty"`
}

// ReqBalanceOf 查询 token 余额
type ReqBalanceOf struct {
	Who string `json:"who"`
}

// ReplyCurrentRound 当前轮次
type ReplyCurrentRound struct {
	Round uint64 `json:"round"`
}

// ReplyInvestors 投资人列表
type ReplyInvestors struct {
	Round     uint64      `json:"round"`
	Investors []*Investor `json:"investors"`
}

// ReplySettlement 已关闭轮次的结算结果
type ReplySettlement struct {
	Round               uint64       `json:"round"`
	FirstWinner         *Payout      `json:"first_winner"`
	SecondWinner        *Payout      `json:"second_winner"`
	OwnerPayout         *Payout      `json:"owner_payout"`
	UnassignedRemainder types.Amount `json:"unassigned_remainder"`
	SelectionProof      string       `json:"selection_proof"`
}

// ReplyTotalSupply token 总量
type ReplyTotalSupply struct {
	TotalSupply types.Amount `json:"total_supply"`
}

// ReplyBalance token 余额
type ReplyBalance struct {
	Who     string       `json:"who"`
	Balance types.Amount `json:"balance"`
}
