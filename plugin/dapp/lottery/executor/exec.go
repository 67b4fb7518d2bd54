// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ty "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/types"
	"github.com/zemyblue/finschia-lottery/types"
)

// Exec_Instantiate 创世
func (l *Lottery) Exec_Instantiate(payload *ty.Instantiate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewLotteryAction(l, tx)
	return action.Instantiate(payload)
}

// Exec_Deposit 投资
func (l *Lottery) Exec_Deposit(payload *ty.Deposit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewLotteryAction(l, tx)
	info, err := loadContractInfo(action.db)
	if err != nil {
		return nil, err
	}
	amount, err := ty.OneCoin(tx.Funds, info.UseDenom)
	if err != nil {
		return nil, err
	}
	return action.Deposit(amount)
}

// Exec_CloseRound 开奖
func (l *Lottery) Exec_CloseRound(payload *ty.CloseRound, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewLotteryAction(l, tx)
	return action.CloseRound()
}

// Exec_TransferToken token 转账
func (l *Lottery) Exec_TransferToken(payload *ty.TransferToken, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewLotteryAction(l, tx)
	return action.TransferToken(payload)
}
