// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/pkg/errors"
	"github.com/zemyblue/finschia-lottery/account"
	dbm "github.com/zemyblue/finschia-lottery/common/db"
	"github.com/zemyblue/finschia-lottery/types"
)

// PayoutSink 执行交易提交之后的资产转移指令
type PayoutSink interface {
	Settle(kv dbm.KV, transfers []*types.Transfer) (*types.Receipt, error)
}

// SinkFunc 函数形式的 PayoutSink
type SinkFunc func(kv dbm.KV, transfers []*types.Transfer) (*types.Receipt, error)

// Settle 调用自身
func (f SinkFunc) Settle(kv dbm.KV, transfers []*types.Transfer) (*types.Receipt, error) {
	return f(kv, transfers)
}

// CoinsSink 在 coins 账户之间按顺序转账，数量为 0 的指令跳过
type CoinsSink struct{}

// Settle 任意一笔失败都返回错误，由调用者回滚
func (CoinsSink) Settle(kv dbm.KV, transfers []*types.Transfer) (*types.Receipt, error) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	for i, t := range transfers {
		if t.Amount.IsZero() {
			continue
		}
		acc, err := account.NewCoinsAccount(t.Denom, kv)
		if err != nil {
			return nil, err
		}
		r, err := acc.Transfer(t.From, t.To, t.Amount)
		if err != nil {
			return nil, errors.Wrapf(err, "settle transfer %d to %s", i, t.To)
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	return receipt, nil
}
