// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/pkg/errors"
	dbm "github.com/zemyblue/finschia-lottery/common/db"
	ty "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/types"
	drivers "github.com/zemyblue/finschia-lottery/system/dapp"
	"github.com/zemyblue/finschia-lottery/types"
)

// RoundBook 轮次、每一轮的投资记录以及当前轮次指针
//
// 任何时候只有一个轮次是开放的，并且就是 current 指向的轮次
type RoundBook struct {
	db dbm.KVDB
}

// Settlement 关闭轮次时写入的结算结果
type Settlement struct {
	First     *ty.Payout
	Second    *ty.Payout
	Owner     *ty.Payout
	Remainder types.Amount
	Proof     string
}

// NewRoundBook new
func NewRoundBook(db dbm.KVDB) *RoundBook {
	return &RoundBook{db: db}
}

// CurrentRound 当前接受投资的轮次
func (b *RoundBook) CurrentRound() (uint64, error) {
	value, err := b.db.Get(calcCurrentKey())
	if err != nil {
		return 0, ty.ErrNotInstantiated
	}
	var cur ty.Current
	if err := types.Decode(value, &cur); err != nil {
		return 0, err
	}
	return cur.Round, nil
}

// Round 读取一轮的完整记录
func (b *RoundBook) Round(round uint64) (*ty.Round, error) {
	value, err := b.db.Get(calcRoundKey(round))
	if err == types.ErrNotFound {
		return nil, errors.Wrapf(ty.ErrInvalidRound, "round %d", round)
	}
	if err != nil {
		return nil, err
	}
	var r ty.Round
	if err := types.Decode(value, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Contribution 某个地址在某一轮的累计投资
func (b *RoundBook) Contribution(round uint64, investor string) (types.Amount, error) {
	value, err := b.db.Get(calcInvestKey(round, investor))
	if err == types.ErrNotFound {
		return types.Amount{}, nil
	}
	if err != nil {
		return types.Amount{}, err
	}
	var inv ty.Investor
	if err := types.Decode(value, &inv); err != nil {
		return types.Amount{}, err
	}
	return inv.Amount, nil
}

// RecordContribution 累加奖池和投资人的投资额
func (b *RoundBook) RecordContribution(round uint64, investor string, amount types.Amount) (*types.Receipt, error) {
	r, err := b.Round(round)
	if err != nil {
		return nil, err
	}
	if !r.IsOpen {
		return nil, errors.Wrapf(ty.ErrInvalidRound, "round %d is closed", round)
	}
	total, err := r.TotalAmount.Add(amount)
	if err != nil {
		return nil, errors.Wrapf(ty.ErrArithmeticOverflow, "pot of round %d", round)
	}
	prev, err := b.Contribution(round, investor)
	if err != nil {
		return nil, err
	}
	sum, err := prev.Add(amount)
	if err != nil {
		return nil, errors.Wrapf(ty.ErrArithmeticOverflow, "contribution of %s", investor)
	}
	r.TotalAmount = total

	kv := drivers.NewKVCreator(b.db)
	kv.AddEncode(calcRoundKey(round), r)
	kv.AddEncode(calcInvestKey(round, investor), &ty.Investor{Addr: investor, Amount: sum})
	if err := kv.Error(); err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv.KVList()}, nil
}

// ListInvestors 按地址升序分页，startAfter 不包含在结果中。limit 为 0 时取默认值，超过上限时截断
func (b *RoundBook) ListInvestors(round uint64, startAfter string, limit uint32) ([]*ty.Investor, error) {
	if limit == 0 {
		limit = ty.DefaultCount
	}
	if limit > ty.MaxCount {
		limit = ty.MaxCount
	}
	return b.listInvestors(round, startAfter, int32(limit))
}

// listAll 不分页，开奖时使用
func (b *RoundBook) listAll(round uint64) ([]*ty.Investor, error) {
	return b.listInvestors(round, "", 0)
}

func (b *RoundBook) listInvestors(round uint64, startAfter string, count int32) ([]*ty.Investor, error) {
	if _, err := b.Round(round); err != nil {
		return nil, err
	}
	var cursor []byte
	if startAfter != "" {
		cursor = calcInvestKey(round, startAfter)
	}
	values, err := b.db.List(calcInvestPrefix(round), cursor, count, dbm.ListASC)
	if err != nil {
		return nil, err
	}
	investors := make([]*ty.Investor, 0, len(values))
	for _, value := range values {
		var inv ty.Investor
		if err := types.Decode(value, &inv); err != nil {
			return nil, err
		}
		investors = append(investors, &inv)
	}
	return investors, nil
}

// OpenNewRound 新建一个开放的轮次，并把 current 指向它
func (b *RoundBook) OpenNewRound(round uint64) (*types.Receipt, error) {
	if _, err := b.db.Get(calcRoundKey(round)); err == nil {
		return nil, errors.Wrapf(ty.ErrAlreadyExists, "round %d", round)
	}
	kv := drivers.NewKVCreator(b.db)
	kv.AddEncode(calcRoundKey(round), &ty.Round{Round: round, IsOpen: true})
	kv.AddEncode(calcCurrentKey(), &ty.Current{Round: round})
	if err := kv.Error(); err != nil {
		return nil, err
	}
	log := ty.NewLog(ty.TyLogLotteryRoundOpened, ty.RoundOpenedAttrs(round))
	return &types.Receipt{Ty: types.ExecOk, KV: kv.KVList(), Logs: []*types.ReceiptLog{log}}, nil
}

// CloseRound 关闭轮次并记录结算结果，关闭之后不再修改
func (b *RoundBook) CloseRound(round uint64, s *Settlement) (*types.Receipt, error) {
	r, err := b.Round(round)
	if err != nil {
		return nil, err
	}
	if !r.IsOpen {
		return nil, errors.Wrapf(ty.ErrAlreadyClosed, "round %d", round)
	}
	r.IsOpen = false
	r.FirstWinner = s.First
	r.SecondWinner = s.Second
	r.OwnerPayout = s.Owner
	r.Remainder = s.Remainder
	r.SelectionProof = s.Proof

	kv := drivers.NewKVCreator(b.db)
	kv.AddEncode(calcRoundKey(round), r)
	if err := kv.Error(); err != nil {
		return nil, err
	}
	log := ty.NewLog(ty.TyLogLotteryRoundClosed, ty.RoundClosedAttrs(r))
	return &types.Receipt{Ty: types.ExecOk, KV: kv.KVList(), Logs: []*types.ReceiptLog{log}}, nil
}

// SettlementResult 已经关闭的轮次的结算结果，还没有关闭时返回 ErrRoundStillOpen
func (b *RoundBook) SettlementResult(round uint64) (*ty.Round, error) {
	r, err := b.Round(round)
	if err != nil {
		return nil, err
	}
	if r.IsOpen {
		return nil, errors.Wrapf(ty.ErrRoundStillOpen, "round %d", round)
	}
	return r, nil
}
