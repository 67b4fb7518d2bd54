// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现原生资产的账户操作

每种 denom 一个 DB，账户按地址保存在 mavl-coins-<denom>-<addr> 下
*/
package account

import (
	"fmt"
	"strings"

	dbm "github.com/zemyblue/finschia-lottery/common/db"
	"github.com/zemyblue/finschia-lottery/common/log"
	"github.com/zemyblue/finschia-lottery/types"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	symbol           string
}

// NewCoinsAccount 某个 denom 的原生资产账户
func NewCoinsAccount(symbol string, db dbm.KV) (*DB, error) {
	//如果 symbol 中存在 "-" 或者为空, 那么创建失败
	if symbol == "" || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	acc := &DB{
		accountKeyPerfix: []byte(SymbolPrefix("coins", symbol)),
		symbol:           symbol,
	}
	return acc.SetDB(db), nil
}

// SetDB set db
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// Symbol denom
func (acc *DB) Symbol() string {
	return acc.symbol
}

// LoadAccount 不存在的账户余额为 0
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Currency: acc.symbol, Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// CheckTransfer 检查 from 余额是否足够
func (acc *DB) CheckTransfer(from, to string, amount types.Amount) error {
	if amount.IsZero() {
		return types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.GetBalance().Cmp(amount) < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer 转账
func (acc *DB) Transfer(from, to string, amount types.Amount) (*types.Receipt, error) {
	if amount.IsZero() {
		return nil, types.ErrAmount
	}
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	fromBalance, err := accFrom.GetBalance().Sub(amount)
	if err != nil {
		return nil, types.ErrNoBalance
	}
	toBalance, err := accTo.GetBalance().Add(amount)
	if err != nil {
		return nil, err
	}
	accFrom.Balance = fromBalance
	accTo.Balance = toBalance
	if err := acc.SaveAccount(accFrom); err != nil {
		return nil, err
	}
	if err := acc.SaveAccount(accTo); err != nil {
		return nil, err
	}
	alog.Debug("Transfer", "denom", acc.symbol, "from", from, "to", to, "amount", amount)
	return acc.transferReceipt(accFrom, accTo, amount), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, amount types.Amount) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty: types.TyLogTransfer,
		Attributes: []types.Attribute{
			types.NewAttribute("denom", acc.symbol),
			types.NewAttribute("from", accFrom.Addr),
			types.NewAttribute("to", accTo.Addr),
			types.NewAttribute("amount", amount.String()),
		},
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1},
	}
}

// SaveAccount 写入账户
func (acc *DB) SaveAccount(acc1 *types.Account) error {
	acc1.Currency = acc.symbol
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		if err := acc.db.Set(set[i].Key, set[i].Value); err != nil {
			return err
		}
	}
	return nil
}

// GetKVSet 将账户数据转为数据库存储kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// LoadAccounts 批量读取
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for i := 0; i < len(addrs); i++ {
		accs = append(accs, acc.LoadAccount(addrs[i]))
	}
	return accs
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix 账户 key 的前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}
