// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/zemyblue/finschia-lottery/types"
)

// GenesisInit 给地址增发资产，生成创世收据
func (acc *DB) GenesisInit(addr string, amount types.Amount) (receipt *types.Receipt, err error) {
	if amount.IsZero() {
		return nil, types.ErrAmount
	}
	accTo := acc.LoadAccount(addr)
	accTo.Balance, err = accTo.GetBalance().Add(amount)
	if err != nil {
		return nil, err
	}
	if err := acc.SaveAccount(accTo); err != nil {
		return nil, err
	}
	return acc.genesisReceipt(accTo, amount), nil
}

func (acc *DB) genesisReceipt(accTo *types.Account, amount types.Amount) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty: types.TyLogGenesis,
		Attributes: []types.Attribute{
			types.NewAttribute("denom", acc.symbol),
			types.NewAttribute("to", accTo.Addr),
			types.NewAttribute("amount", amount.String()),
		},
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(accTo),
		Logs: []*types.ReceiptLog{log1},
	}
}
