// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"

	"github.com/pkg/errors"
	dbm "github.com/zemyblue/finschia-lottery/common/db"
	ty "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/types"
	drivers "github.com/zemyblue/finschia-lottery/system/dapp"
	"github.com/zemyblue/finschia-lottery/types"
)

// Action 一笔交易的执行环境，合约的单例状态都从 db 中读取
type Action struct {
	db       dbm.KVDB
	fromaddr string
	execaddr string
	height   int64
	ledger   *Ledger
	book     *RoundBook
	selector WinnerSelector
}

// NewLotteryAction new
func NewLotteryAction(l *Lottery, tx *types.Transaction) *Action {
	action := newAction(l.GetStateDB(), tx.From, drivers.ExecAddress(l.GetName()), l.selector)
	action.height = l.GetHeight()
	return action
}

func newAction(db dbm.KVDB, from, execaddr string, selector WinnerSelector) *Action {
	if selector == nil {
		selector = DefaultSelector()
	}
	return &Action{
		db:       db,
		fromaddr: from,
		execaddr: execaddr,
		ledger:   NewLedger(db),
		book:     NewRoundBook(db),
		selector: selector,
	}
}

func loadContractInfo(db dbm.KV) (*ty.ContractInfo, error) {
	value, err := db.Get(calcInfoKey())
	if err != nil {
		return nil, ty.ErrNotInstantiated
	}
	var info ty.ContractInfo
	if err := types.Decode(value, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func checkInstantiate(msg *ty.Instantiate) error {
	if msg.UseDenom == "" || strings.ContainsRune(msg.UseDenom, '-') {
		return errors.Wrapf(ty.ErrInvalidParams, "use_denom %q", msg.UseDenom)
	}
	if msg.ExchangeRatio.IsZero() {
		return errors.Wrap(ty.ErrInvalidParams, "exchange_ratio is zero")
	}
	if msg.FirstWinnerRatio > ty.RatioBase || msg.SecondWinnerRatio > ty.RatioBase || msg.OwnerRatio > ty.RatioBase {
		return errors.Wrap(ty.ErrInvalidParams, "ratio above 100")
	}
	if msg.FirstWinnerRatio+msg.SecondWinnerRatio+msg.OwnerRatio > ty.RatioBase {
		return errors.Wrap(ty.ErrInvalidParams, "ratios sum above 100")
	}
	if msg.TokenName == "" || msg.TokenSymbol == "" {
		return errors.Wrap(ty.ErrInvalidParams, "empty token name or symbol")
	}
	return nil
}

// Instantiate 创世：发送者成为 owner，并开启第一轮
func (action *Action) Instantiate(msg *ty.Instantiate) (*types.Receipt, error) {
	if _, err := action.db.Get(calcInfoKey()); err == nil {
		return nil, errors.Wrap(ty.ErrAlreadyExists, "contract info")
	}
	if err := checkInstantiate(msg); err != nil {
		return nil, err
	}
	info := &ty.ContractInfo{
		Owner:             action.fromaddr,
		UseDenom:          msg.UseDenom,
		ExchangeRatio:     msg.ExchangeRatio,
		MinExchangeAmount: msg.MinExchangeAmount,
		FirstWinnerRatio:  msg.FirstWinnerRatio,
		SecondWinnerRatio: msg.SecondWinnerRatio,
		OwnerRatio:        msg.OwnerRatio,
	}
	kv := drivers.NewKVCreator(action.db)
	kv.AddEncode(calcInfoKey(), info)
	if err := kv.Error(); err != nil {
		return nil, err
	}
	receipt := &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv.KVList(),
		Logs: []*types.ReceiptLog{ty.NewLog(ty.TyLogLotteryInstantiate, ty.InstantiateAttrs(action.fromaddr))},
	}
	r, err := action.ledger.Init(&ty.TokenInfo{Name: msg.TokenName, Symbol: msg.TokenSymbol, Decimals: msg.TokenDecimals})
	if err != nil {
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	r, err = action.book.OpenNewRound(1)
	if err != nil {
		return nil, err
	}
	llog.Info("Instantiate", "owner", action.fromaddr, "denom", msg.UseDenom, "ratio", msg.ExchangeRatio)
	return types.MergeReceipt(receipt, r), nil
}

// Deposit 记录投资并按兑换比例增发 token，amount 为已经校验过的附带资产
func (action *Action) Deposit(amount types.Amount) (*types.Receipt, error) {
	info, err := loadContractInfo(action.db)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, ty.ErrNoFunds
	}
	round, err := action.book.CurrentRound()
	if err != nil {
		return nil, err
	}
	receipt, err := action.book.RecordContribution(round, action.fromaddr, amount)
	if err != nil {
		return nil, err
	}
	minted, err := amount.Mul(info.ExchangeRatio)
	if err != nil {
		return nil, errors.Wrapf(ty.ErrArithmeticOverflow, "%s * %s", amount, info.ExchangeRatio)
	}
	r, err := action.ledger.Mint(action.fromaddr, minted)
	if err != nil {
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	receipt.Logs = append(receipt.Logs, ty.NewLog(ty.TyLogLotteryInvest, ty.InvestedAttrs(round, action.fromaddr, amount, minted)))
	if small, ok := amount.Uint64(); ok && small < uint64(info.MinExchangeAmount) {
		llog.Debug("Deposit below min exchange amount", "who", action.fromaddr, "amount", amount, "min", info.MinExchangeAmount)
	}
	return receipt, nil
}

// SplitPot 按百分比向下取整分配奖池，剩余部分不分配
func SplitPot(total types.Amount, info *ty.ContractInfo) (first, second, owner, remainder types.Amount, err error) {
	first = total.MulDiv(uint64(info.FirstWinnerRatio), ty.RatioBase)
	second = total.MulDiv(uint64(info.SecondWinnerRatio), ty.RatioBase)
	owner = total.MulDiv(uint64(info.OwnerRatio), ty.RatioBase)
	remainder = total
	for _, part := range []types.Amount{first, second, owner} {
		remainder, err = remainder.Sub(part)
		if err != nil {
			return first, second, owner, types.Amount{}, errors.Wrap(ty.ErrArithmeticOverflow, "payouts exceed pot")
		}
	}
	return first, second, owner, remainder, nil
}

// CloseRound 只有 owner 可以开奖：选出中奖人，记录结算结果，开启下一轮，并返回转账指令
func (action *Action) CloseRound() (*types.Receipt, error) {
	info, err := loadContractInfo(action.db)
	if err != nil {
		return nil, err
	}
	if action.fromaddr != info.Owner {
		return nil, errors.Wrapf(ty.ErrUnauthorized, "%s is not owner", action.fromaddr)
	}
	round, err := action.book.CurrentRound()
	if err != nil {
		return nil, err
	}
	current, err := action.book.Round(round)
	if err != nil {
		return nil, err
	}
	investors, err := action.book.listAll(round)
	if err != nil {
		return nil, err
	}
	if len(investors) == 0 {
		return nil, errors.Wrapf(ty.ErrNoInvestors, "round %d", round)
	}
	i, j, proof, err := action.selector.Select(round, investors)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(investors) || j < 0 || j >= len(investors) {
		return nil, errors.Wrapf(types.ErrInvalidParam, "selector index %d %d of %d", i, j, len(investors))
	}
	first, second, owner, remainder, err := SplitPot(current.TotalAmount, info)
	if err != nil {
		return nil, err
	}
	s := &Settlement{
		First:     &ty.Payout{Addr: investors[i].Addr, Amount: first},
		Second:    &ty.Payout{Addr: investors[j].Addr, Amount: second},
		Owner:     &ty.Payout{Addr: info.Owner, Amount: owner},
		Remainder: remainder,
		Proof:     proof,
	}
	receipt, err := action.book.CloseRound(round, s)
	if err != nil {
		return nil, err
	}
	r, err := action.book.OpenNewRound(round + 1)
	if err != nil {
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	for _, p := range []*ty.Payout{s.First, s.Second, s.Owner} {
		receipt.Transfers = append(receipt.Transfers, &types.Transfer{
			Denom:  info.UseDenom,
			From:   action.execaddr,
			To:     p.Addr,
			Amount: p.Amount,
		})
	}
	llog.Info("CloseRound", "round", round, "investors", len(investors), "first", s.First.Addr, "second", s.Second.Addr,
		"pot", current.TotalAmount, "remainder", remainder)
	return receipt, nil
}

// TransferToken 调用者向 to 转 token
func (action *Action) TransferToken(msg *ty.TransferToken) (*types.Receipt, error) {
	if msg.To == "" {
		return nil, errors.Wrap(types.ErrInvalidParam, "empty to")
	}
	return action.ledger.Transfer(action.fromaddr, msg.To, msg.Amount)
}
