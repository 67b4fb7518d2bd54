// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	drivers "github.com/zemyblue/finschia-lottery/system/dapp"
	cty "github.com/zemyblue/finschia-lottery/system/dapp/coins/types"
)

// Query_GetBalance 查询余额
func (c *Coins) Query_GetBalance(in *cty.ReqBalance) (*cty.ReplyBalance, error) {
	acc, err := c.GetCoinsAccount(in.Denom)
	if err != nil {
		return nil, err
	}
	addrs := in.Addresses
	if in.Execer != "" {
		addrs = []string{drivers.ExecAddress(in.Execer)}
	}
	return &cty.ReplyBalance{Accounts: acc.LoadAccounts(addrs)}, nil
}
