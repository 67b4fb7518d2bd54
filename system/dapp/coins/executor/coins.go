// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是内置货币的执行器。
主要提供两种操作：
Transfer -> 转移资产
Genesis  -> 创世地址增发资产
*/

import (
	"encoding/json"

	"github.com/zemyblue/finschia-lottery/common/log"
	drivers "github.com/zemyblue/finschia-lottery/system/dapp"
	cty "github.com/zemyblue/finschia-lottery/system/dapp/coins/types"
	"github.com/zemyblue/finschia-lottery/types"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

// subConfig [exec.sub.coins]
type subConfig struct {
	// 为空时任何地址都可以增发，仅用于本地开发节点
	GenesisAddr string `json:"genesisAddr"`
}

var cfg subConfig

// Init 注册 coins 驱动
func Init(name string, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, &cfg); err != nil {
			panic(err)
		}
	}
	drivers.Register(driverName, newCoins, 0)
}

// Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

// GetDriverName 驱动名
func (c *Coins) GetDriverName() string {
	return driverName
}

// CheckTx coins 交易不接受附带资产
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	if len(tx.Funds) > 0 {
		return types.ErrInvalidParam
	}
	return nil
}
