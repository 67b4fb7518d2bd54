// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/zemyblue/finschia-lottery/types"
)

// ContractInfo 创世时写入，之后不再修改
type ContractInfo struct {
	Owner             string       `json:"owner"`
	UseDenom          string       `json:"use_denom"`
	ExchangeRatio     types.Amount `json:"exchange_ratio"`
	MinExchangeAmount uint32       `json:"min_exchange_amount"`
	FirstWinnerRatio  uint32       `json:"first_winner_ratio"`
	SecondWinnerRatio uint32       `json:"second_winner_ratio"`
	OwnerRatio        uint32       `json:"owner_ratio"`
}

// Marshal wire 编码
func (c *ContractInfo) Marshal() []byte {
	return types.NewEncoder().
		String(1, c.Owner).
		String(2, c.UseDenom).
		Amount(3, c.ExchangeRatio).
		Uint64(4, uint64(c.MinExchangeAmount)).
		Uint64(5, uint64(c.FirstWinnerRatio)).
		Uint64(6, uint64(c.SecondWinnerRatio)).
		Uint64(7, uint64(c.OwnerRatio)).
		Data()
}

// Unmarshal wire 解码
func (c *ContractInfo) Unmarshal(data []byte) error {
	return types.Walk(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			c.Owner = f.String()
		case 2:
			c.UseDenom = f.String()
		case 3:
			c.ExchangeRatio, err = f.Amount()
		case 4:
			c.MinExchangeAmount = uint32(f.Uint64())
		case 5:
			c.FirstWinnerRatio = uint32(f.Uint64())
		case 6:
			c.SecondWinnerRatio = uint32(f.Uint64())
		case 7:
			c.OwnerRatio = uint32(f.Uint64())
		}
		return err
	})
}

// TokenInfo 奖励 token 的描述以及总量
type TokenInfo struct {
	Name        string       `json:"name"`
	Symbol      string       `json:"symbol"`
	Decimals    uint32       `json:"decimals"`
	TotalSupply types.Amount `json:"total_supply"`
}

// Marshal wire 编码
func (t *TokenInfo) Marshal() []byte {
	return types.NewEncoder().
		String(1, t.Name).
		String(2, t.Symbol).
		Uint64(3, uint64(t.Decimals)).
		Amount(4, t.TotalSupply).
		Data()
}

// Unmarshal wire 解码
func (t *TokenInfo) Unmarshal(data []byte) error {
	return types.Walk(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			t.Name = f.String()
		case 2:
			t.Symbol = f.String()
		case 3:
			t.Decimals = uint32(f.Uint64())
		case 4:
			t.TotalSupply, err = f.Amount()
		}
		return err
	})
}

// Current 当前轮次号
type Current struct {
	Round uint64 `json:"round"`
}

// Marshal wire 编码
func (c *Current) Marshal() []byte {
	return types.NewEncoder().Uint64(1, c.Round).Data()
}

// Unmarshal wire 解码
func (c *Current) Unmarshal(data []byte) error {
	return types.Walk(data, func(f types.Field) error {
		if f.Num == 1 {
			c.Round = f.Uint64()
		}
		return nil
	})
}

// Payout 一笔奖金
type Payout struct {
	Addr   string       `json:"addr"`
	Amount types.Amount `json:"amount"`
}

// Marshal wire 编码
func (p *Payout) Marshal() []byte {
	return types.NewEncoder().String(1, p.Addr).Amount(2, p.Amount).Data()
}

// Unmarshal wire 解码
func (p *Payout) Unmarshal(data []byte) error {
	return types.Walk(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			p.Addr = f.String()
		case 2:
			p.Amount, err = f.Amount()
		}
		return err
	})
}

// Investor 一个地址在某一轮的累计投资
type Investor struct {
	Addr   string       `json:"addr"`
	Amount types.Amount `json:"amount"`
}

// Marshal wire 编码
func (i *Investor) Marshal() []byte {
	return types.NewEncoder().String(1, i.Addr).Amount(2, i.Amount).Data()
}

// Unmarshal wire 解码
func (i *Investor) Unmarshal(data []byte) error {
	return types.Walk(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			i.Addr = f.String()
		case 2:
			i.Amount, err = f.Amount()
		}
		return err
	})
}

// Round 一轮的奖池，关闭之后记录结算结果
type Round struct {
	Round          uint64       `json:"round"`
	TotalAmount    types.Amount `json:"total_amount"`
	IsOpen         bool         `json:"in_progress"`
	FirstWinner    *Payout      `json:"first_winner,omitempty"`
	SecondWinner   *Payout      `json:"second_winner,omitempty"`
	OwnerPayout    *Payout      `json:"owner_payout,omitempty"`
	Remainder      types.Amount `json:"unassigned_remainder"`
	SelectionProof string       `json:"selection_proof,omitempty"`
}

// Marshal wire 编码
func (r *Round) Marshal() []byte {
	enc := types.NewEncoder().
		Uint64(1, r.Round).
		Amount(2, r.TotalAmount).
		Bool(3, r.IsOpen)
	if r.FirstWinner != nil {
		enc.Message(4, r.FirstWinner)
	}
	if r.SecondWinner != nil {
		enc.Message(5, r.SecondWinner)
	}
	if r.OwnerPayout != nil {
		enc.Message(6, r.OwnerPayout)
	}
	return enc.Amount(7, r.Remainder).String(8, r.SelectionProof).Data()
}

// Unmarshal wire 解码
func (r *Round) Unmarshal(data []byte) error {
	return types.Walk(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			r.Round = f.Uint64()
		case 2:
			r.TotalAmount, err = f.Amount()
		case 3:
			r.IsOpen = f.Bool()
		case 4:
			r.FirstWinner = &Payout{}
			err = r.FirstWinner.Unmarshal(f.Raw)
		case 5:
			r.SecondWinner = &Payout{}
			err = r.SecondWinner.Unmarshal(f.Raw)
		case 6:
			r.OwnerPayout = &Payout{}
			err = r.OwnerPayout.Unmarshal(f.Raw)
		case 7:
			r.Remainder, err = f.Amount()
		case 8:
			r.SelectionProof = f.String()
		}
		return err
	})
}
