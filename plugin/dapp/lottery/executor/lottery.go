// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
lottery 执行器：投资，开奖。

Instantiate   -> 创世，发送者成为 owner，开启第一轮
Deposit       -> 附带 use_denom 资产投资当前轮次，按兑换比例获得 token
CloseRound    -> owner 开奖，奖池按比例分给两个中奖人和 owner，开启下一轮
TransferToken -> token 转账

中奖人由 WinnerSelector 选出，默认的 FixedIndexSelector 可以被预测，不能当作随机数使用。
*/

import (
	"encoding/json"

	"github.com/zemyblue/finschia-lottery/common/log"
	ty "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/types"
	drivers "github.com/zemyblue/finschia-lottery/system/dapp"
	"github.com/zemyblue/finschia-lottery/types"
)

var llog = log.New("module", "execs.lottery")

var driverName = ty.LotteryX

// SubConfig [exec.sub.lottery]，其余字段是命令行 instantiate 使用的默认创世参数
type SubConfig struct {
	SelectIndices     []uint64 `json:"selectIndices"`
	UseDenom          string   `json:"useDenom"`
	ExchangeRatio     uint64   `json:"exchangeRatio"`
	MinExchangeAmount uint32   `json:"minExchangeAmount"`
	FirstWinnerRatio  uint32   `json:"firstWinnerRatio"`
	SecondWinnerRatio uint32   `json:"secondWinnerRatio"`
	OwnerRatio        uint32   `json:"ownerRatio"`
	TokenName         string   `json:"tokenName"`
	TokenSymbol       string   `json:"tokenSymbol"`
	TokenDecimals     uint32   `json:"tokenDecimals"`
}

// Instantiate 默认创世参数
func (c *SubConfig) Instantiate() *ty.Instantiate {
	return &ty.Instantiate{
		UseDenom:          c.UseDenom,
		ExchangeRatio:     types.NewAmount(c.ExchangeRatio),
		MinExchangeAmount: c.MinExchangeAmount,
		FirstWinnerRatio:  c.FirstWinnerRatio,
		SecondWinnerRatio: c.SecondWinnerRatio,
		OwnerRatio:        c.OwnerRatio,
		TokenName:         c.TokenName,
		TokenSymbol:       c.TokenSymbol,
		TokenDecimals:     c.TokenDecimals,
	}
}

// ParseSubConfig 解析 [exec.sub.lottery]
func ParseSubConfig(sub []byte) (*SubConfig, error) {
	var cfg SubConfig
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, &cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Init 注册 lottery 驱动，selectIndices 解析出的 selector 随构造函数传给每个驱动实例
func Init(name string, sub []byte) {
	cfg, err := ParseSubConfig(sub)
	if err != nil {
		panic(err)
	}
	sel, err := NewSelector(cfg.SelectIndices)
	if err != nil {
		panic(err)
	}
	drivers.Register(GetName(), func() drivers.Driver { return newLottery(sel) }, 0)
}

// GetName 执行器名
func GetName() string {
	return newLottery(nil).GetName()
}

// Lottery 执行器
type Lottery struct {
	drivers.DriverBase
	selector WinnerSelector
}

// selector 为 nil 时 newAction 使用 DefaultSelector
func newLottery(selector WinnerSelector) drivers.Driver {
	l := &Lottery{selector: selector}
	l.SetChild(l)
	l.SetExecutorType(types.LoadExecutorType(driverName))
	return l
}

// GetDriverName 驱动名
func (l *Lottery) GetDriverName() string {
	return driverName
}

// CheckTx 投资必须附带且只附带 use_denom 一种资产，其他 action 不接受附带资产
func (l *Lottery) CheckTx(tx *types.Transaction, index int) error {
	name := l.GetActionName(tx)
	if name != "Deposit" {
		if len(tx.Funds) > 0 {
			return types.ErrInvalidParam
		}
		return nil
	}
	info, err := loadContractInfo(l.GetStateDB())
	if err != nil {
		return err
	}
	_, err = ty.OneCoin(tx.Funds, info.UseDenom)
	return err
}
