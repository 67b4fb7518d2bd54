// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strconv"

	"github.com/zemyblue/finschia-lottery/types"
)

// 事件的 action 属性
const (
	EventInstantiate      = "instantiate"
	EventInvested         = "Invested"
	EventTokenTransferred = "TokenTransferred"
	EventTokenMinted      = "TokenMinted"
	EventRoundClosed      = "RoundClosed"
	EventRoundOpened      = "RoundOpened"
)

func roundStr(round uint64) string {
	return strconv.FormatUint(round, 10)
}

func payoutAttrs(prefix string, p *Payout) []types.Attribute {
	if p == nil {
		return []types.Attribute{
			types.NewAttribute(prefix+"_winner", ""),
			types.NewAttribute(prefix+"_amount", "0"),
		}
	}
	return []types.Attribute{
		types.NewAttribute(prefix+"_winner", p.Addr),
		types.NewAttribute(prefix+"_amount", p.Amount.String()),
	}
}

// InstantiateAttrs 创世事件
func InstantiateAttrs(owner string) []types.Attribute {
	return []types.Attribute{
		types.NewAttribute("action", EventInstantiate),
		types.NewAttribute("owner", owner),
	}
}

// InvestedAttrs 投资事件
func InvestedAttrs(round uint64, who string, amount, minted types.Amount) []types.Attribute {
	return []types.Attribute{
		types.NewAttribute("action", EventInvested),
		types.NewAttribute("round", roundStr(round)),
		types.NewAttribute("who", who),
		types.NewAttribute("amount", amount.String()),
		types.NewAttribute("minted", minted.String()),
	}
}

// TokenMintedAttrs token 增发
func TokenMintedAttrs(to string, amount, supply types.Amount) []types.Attribute {
	return []types.Attribute{
		types.NewAttribute("action", EventTokenMinted),
		types.NewAttribute("to", to),
		types.NewAttribute("amount", amount.String()),
		types.NewAttribute("total_supply", supply.String()),
	}
}

// TokenTransferredAttrs token 转账事件
func TokenTransferredAttrs(from, to string, amount types.Amount) []types.Attribute {
	return []types.Attribute{
		types.NewAttribute("action", EventTokenTransferred),
		types.NewAttribute("from", from),
		types.NewAttribute("to", to),
		types.NewAttribute("amount", amount.String()),
	}
}

// RoundClosedAttrs 开奖事件，owner 只记录数量
func RoundClosedAttrs(r *Round) []types.Attribute {
	attrs := []types.Attribute{
		types.NewAttribute("action", EventRoundClosed),
		types.NewAttribute("round", roundStr(r.Round)),
	}
	attrs = append(attrs, payoutAttrs("first", r.FirstWinner)...)
	attrs = append(attrs, payoutAttrs("second", r.SecondWinner)...)
	owner := types.Amount{}
	if r.OwnerPayout != nil {
		owner = r.OwnerPayout.Amount
	}
	return append(attrs,
		types.NewAttribute("owner_amount", owner.String()),
		types.NewAttribute("unassigned_remainder", r.Remainder.String()),
		types.NewAttribute("selection_proof", r.SelectionProof),
	)
}

// RoundOpenedAttrs 新一轮开始
func RoundOpenedAttrs(round uint64) []types.Attribute {
	return []types.Attribute{
		types.NewAttribute("action", EventRoundOpened),
		types.NewAttribute("round", roundStr(round)),
	}
}

// NewLog 生成回执日志
func NewLog(ty int32, attrs []types.Attribute) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Attributes: attrs}
}
