// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的交易类型
package types

import (
	"github.com/pkg/errors"
	"github.com/zemyblue/finschia-lottery/types"
)

// action 类型
const (
	CoinsActionTransfer = 1
	CoinsActionGenesis  = 2
)

var (
	// CoinsX 执行器名字
	CoinsX = "coins"
	// ExecerCoins execer
	ExecerCoins = []byte(CoinsX)
	actionName  = map[string]int32{
		"Transfer": CoinsActionTransfer,
		"Genesis":  CoinsActionGenesis,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsAction 只能设置一个 action
type CoinsAction struct {
	Transfer *CoinsTransfer `json:"transfer,omitempty"`
	Genesis  *CoinsGenesis  `json:"genesis,omitempty"`
}

// GetValue 当前设置的 action
func (a *CoinsAction) GetValue() (string, interface{}, error) {
	switch {
	case a.Transfer != nil && a.Genesis == nil:
		return "Transfer", a.Transfer, nil
	case a.Genesis != nil && a.Transfer == nil:
		return "Genesis", a.Genesis, nil
	}
	return "", nil, errors.Wrap(types.ErrActionNotSupport, "coins action must set exactly one field")
}

// CoinsTransfer 转账
type CoinsTransfer struct {
	Denom  string       `json:"denom"`
	To     string       `json:"to"`
	Amount types.Amount `json:"amount"`
}

// CoinsGenesis 增发
type CoinsGenesis struct {
	Denom  string       `json:"denom"`
	To     string       `json:"to"`
	Amount types.Amount `json:"amount"`
}

// ReqBalance 查询余额，Execer 不为空时查询执行器地址
type ReqBalance struct {
	Denom     string   `json:"denom"`
	Addresses []string `json:"addresses"`
	Execer    string   `json:"execer,omitempty"`
}

// ReplyBalance 余额
type ReplyBalance struct {
	Accounts []*types.Account `json:"accounts"`
}

// CoinsType 交易类型
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName 名字
func (coins *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload 空的 payload
func (coins *CoinsType) GetPayload() types.ActionValue {
	return &CoinsAction{}
}

// GetLogMap 使用框架的日志类型
func (coins *CoinsType) GetLogMap() map[int32]string {
	return nil
}

// GetTypeMap action 名字
func (coins *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}
