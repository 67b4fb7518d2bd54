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

// Ledger 奖励 token 的总量与余额，total_supply 始终等于所有余额之和
type Ledger struct {
	db dbm.KV
}

// NewLedger new
func NewLedger(db dbm.KV) *Ledger {
	return &Ledger{db: db}
}

// TokenInfo 创世之前返回 ErrNotInstantiated
func (l *Ledger) TokenInfo() (*ty.TokenInfo, error) {
	value, err := l.db.Get(calcTokenKey())
	if err != nil {
		return nil, ty.ErrNotInstantiated
	}
	var info ty.TokenInfo
	if err := types.Decode(value, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// TotalSupply 总量
func (l *Ledger) TotalSupply() (types.Amount, error) {
	info, err := l.TokenInfo()
	if err != nil {
		return types.Amount{}, err
	}
	return info.TotalSupply, nil
}

// BalanceOf 没有记录的地址余额为 0
func (l *Ledger) BalanceOf(holder string) (types.Amount, error) {
	acc, err := l.loadAccount(holder)
	if err != nil {
		return types.Amount{}, err
	}
	return acc.Balance, nil
}

func (l *Ledger) loadAccount(holder string) (*types.Account, error) {
	value, err := l.db.Get(calcBalanceKey(holder))
	if err == types.ErrNotFound {
		return &types.Account{Addr: holder}, nil
	}
	if err != nil {
		return nil, err
	}
	var acc types.Account
	if err := types.Decode(value, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// Init 创世时写入 token 描述，总量为 0
func (l *Ledger) Init(info *ty.TokenInfo) (*types.Receipt, error) {
	if _, err := l.db.Get(calcTokenKey()); err == nil {
		return nil, errors.Wrap(ty.ErrAlreadyExists, "token info")
	}
	kv := drivers.NewKVCreator(l.db)
	kv.AddEncode(calcTokenKey(), &ty.TokenInfo{Name: info.Name, Symbol: info.Symbol, Decimals: info.Decimals})
	if err := kv.Error(); err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv.KVList()}, nil
}

// Mint 增发，余额和总量都使用溢出检查
func (l *Ledger) Mint(holder string, amount types.Amount) (*types.Receipt, error) {
	info, err := l.TokenInfo()
	if err != nil {
		return nil, err
	}
	acc, err := l.loadAccount(holder)
	if err != nil {
		return nil, err
	}
	balance, err := acc.Balance.Add(amount)
	if err != nil {
		return nil, errors.Wrapf(ty.ErrArithmeticOverflow, "mint balance of %s", holder)
	}
	supply, err := info.TotalSupply.Add(amount)
	if err != nil {
		return nil, errors.Wrap(ty.ErrArithmeticOverflow, "mint total supply")
	}
	acc.Currency = info.Symbol
	acc.Balance = balance
	info.TotalSupply = supply

	kv := drivers.NewKVCreator(l.db)
	kv.AddEncode(calcBalanceKey(holder), acc)
	kv.AddEncode(calcTokenKey(), info)
	if err := kv.Error(); err != nil {
		return nil, err
	}
	log := ty.NewLog(ty.TyLogLotteryTokenMint, ty.TokenMintedAttrs(holder, amount, supply))
	return &types.Receipt{Ty: types.ExecOk, KV: kv.KVList(), Logs: []*types.ReceiptLog{log}}, nil
}

// Transfer 转账，总量不变。from == to 时只做检查
func (l *Ledger) Transfer(from, to string, amount types.Amount) (*types.Receipt, error) {
	if amount.IsZero() {
		return nil, ty.ErrInvalidAmount
	}
	info, err := l.TokenInfo()
	if err != nil {
		return nil, err
	}
	accFrom, err := l.loadAccount(from)
	if err != nil {
		return nil, err
	}
	remain, err := accFrom.Balance.Sub(amount)
	if err != nil {
		return nil, errors.Wrapf(ty.ErrInsufficientBalance, "%s has %s, need %s", from, accFrom.Balance, amount)
	}
	log := ty.NewLog(ty.TyLogLotteryTokenTransfer, ty.TokenTransferredAttrs(from, to, amount))
	if from == to {
		return &types.Receipt{Ty: types.ExecOk, Logs: []*types.ReceiptLog{log}}, nil
	}
	accTo, err := l.loadAccount(to)
	if err != nil {
		return nil, err
	}
	received, err := accTo.Balance.Add(amount)
	if err != nil {
		return nil, errors.Wrapf(ty.ErrArithmeticOverflow, "balance of %s", to)
	}
	accFrom.Balance = remain
	accFrom.Currency = info.Symbol
	accTo.Balance = received
	accTo.Currency = info.Symbol

	kv := drivers.NewKVCreator(l.db)
	kv.AddEncode(calcBalanceKey(from), accFrom)
	kv.AddEncode(calcBalanceKey(to), accTo)
	if err := kv.Error(); err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv.KVList(), Logs: []*types.ReceiptLog{log}}, nil
}
