// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/pkg/errors"
	ty "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/types"
	"github.com/zemyblue/finschia-lottery/types"
)

// Query_ContractInfo 合约配置
func (l *Lottery) Query_ContractInfo(in *ty.ReqNil) (*ty.ContractInfo, error) {
	return loadContractInfo(l.GetStateDB())
}

// Query_TokenInfo token 描述以及总量
func (l *Lottery) Query_TokenInfo(in *ty.ReqNil) (*ty.TokenInfo, error) {
	return NewLedger(l.GetStateDB()).TokenInfo()
}

// Query_CurrentRound 当前轮次
func (l *Lottery) Query_CurrentRound(in *ty.ReqNil) (*ty.ReplyCurrentRound, error) {
	round, err := NewRoundBook(l.GetStateDB()).CurrentRound()
	if err != nil {
		return nil, err
	}
	return &ty.ReplyCurrentRound{Round: round}, nil
}

// Query_CurrentInvestment 轮次记录，round 为 0 时是当前轮次
func (l *Lottery) Query_CurrentInvestment(in *ty.ReqRound) (*ty.Round, error) {
	book := NewRoundBook(l.GetStateDB())
	round, err := resolveRound(book, in.Round)
	if err != nil {
		return nil, err
	}
	return book.Round(round)
}

// Query_ListInvestors 分页列出投资人
func (l *Lottery) Query_ListInvestors(in *ty.ReqListInvestors) (*ty.ReplyInvestors, error) {
	book := NewRoundBook(l.GetStateDB())
	round, err := resolveRound(book, in.Round)
	if err != nil {
		return nil, err
	}
	investors, err := book.ListInvestors(round, in.StartAfter, in.Limit)
	if err != nil {
		return nil, err
	}
	return &ty.ReplyInvestors{Round: round, Investors: investors}, nil
}

// Query_SettlementResult 结算结果，round 为 0 时是最近关闭的一轮
func (l *Lottery) Query_SettlementResult(in *ty.ReqRound) (*ty.ReplySettlement, error) {
	book := NewRoundBook(l.GetStateDB())
	round := in.Round
	if round == 0 {
		current, err := book.CurrentRound()
		if err != nil {
			return nil, err
		}
		if current <= 1 {
			return nil, errors.Wrapf(ty.ErrRoundStillOpen, "round %d", current)
		}
		round = current - 1
	}
	r, err := book.SettlementResult(round)
	if err != nil {
		return nil, err
	}
	return &ty.ReplySettlement{
		Round:               r.Round,
		FirstWinner:         r.FirstWinner,
		SecondWinner:        r.SecondWinner,
		OwnerPayout:         r.OwnerPayout,
		UnassignedRemainder: r.Remainder,
		SelectionProof:      r.SelectionProof,
	}, nil
}

// Query_TotalSupply token 总量
func (l *Lottery) Query_TotalSupply(in *ty.ReqNil) (*ty.ReplyTotalSupply, error) {
	supply, err := NewLedger(l.GetStateDB()).TotalSupply()
	if err != nil {
		return nil, err
	}
	return &ty.ReplyTotalSupply{TotalSupply: supply}, nil
}

// Query_BalanceOf token 余额
func (l *Lottery) Query_BalanceOf(in *ty.ReqBalanceOf) (*ty.ReplyBalance, error) {
	if in.Who == "" {
		return nil, errors.Wrap(types.ErrInvalidParam, "empty who")
	}
	balance, err := NewLedger(l.GetStateDB()).BalanceOf(in.Who)
	if err != nil {
		return nil, err
	}
	return &ty.ReplyBalance{Who: in.Who, Balance: balance}, nil
}

func resolveRound(book *RoundBook, round uint64) (uint64, error) {
	if round != 0 {
		return round, nil
	}
	return book.CurrentRound()
}
