// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/pkg/errors"
	cty "github.com/zemyblue/finschia-lottery/system/dapp/coins/types"
	"github.com/zemyblue/finschia-lottery/types"
)

// Exec_Transfer 转账
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if transfer.To == "" {
		return nil, errors.Wrap(types.ErrInvalidParam, "empty to")
	}
	acc, err := c.GetCoinsAccount(transfer.Denom)
	if err != nil {
		return nil, err
	}
	return acc.Transfer(tx.From, transfer.To, transfer.Amount)
}

// Exec_Genesis 增发
func (c *Coins) Exec_Genesis(genesis *cty.CoinsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if cfg.GenesisAddr != "" && tx.From != cfg.GenesisAddr {
		return nil, errors.Wrapf(types.ErrNoPrivilege, "genesis from %s", tx.From)
	}
	if genesis.To == "" {
		return nil, errors.Wrap(types.ErrInvalidParam, "empty to")
	}
	acc, err := c.GetCoinsAccount(genesis.Denom)
	if err != nil {
		return nil, err
	}
	clog.Info("Exec_Genesis", "denom", genesis.Denom, "to", genesis.To, "amount", genesis.Amount)
	return acc.GenesisInit(genesis.To, genesis.Amount)
}
